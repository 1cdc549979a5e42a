package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/middleware"
	"github.com/rightscard/core/internal/models"
	"github.com/rightscard/core/internal/modules/cards"
	"github.com/rightscard/core/internal/modules/contacts"
	"github.com/rightscard/core/internal/modules/generate"
	"github.com/rightscard/core/internal/modules/recording"
	"github.com/rightscard/core/internal/modules/rights"
	"github.com/rightscard/core/internal/modules/system/health"
	pkgredis "github.com/rightscard/core/internal/pkg/redis"
	"github.com/rightscard/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "rightscard-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/rightscard/core",
	}

	// Rate limiting runs on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))

	apiPrefix := "/api/v1"

	// Versioned API
	api := r.Group(apiPrefix)
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:             15 * time.Second,
		EnableCDNHeader: true,
		Disable:         a.cfg.IsDev(),
		SkipPaths:       httpCacheSkipPaths(apiPrefix),
	}))

	// Shared services
	rightsSvc := rights.NewService()

	var caller generate.Caller
	if provider := a.cfg.AI.ActiveProvider(); provider != nil {
		caller = generate.NewCaller(provider)
	}
	gen := generate.NewGenerator(caller, rightsSvc, a.logger)

	mediaStore := recording.NewMediaStore(a.cfg.S3)
	recordingSvc := recording.NewService(db, mediaStore)
	cardSvc := cards.NewService(db)

	// App info endpoints
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(a.startTime()).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	health.RegisterRoutes(api, health.Options{
		DB:               db,
		AIAvailable:      gen.Available,
		StorageAvailable: recordingSvc.StorageAvailable(),
	})

	rights.NewHandler(rightsSvc).RegisterRoutes(api)
	generate.NewHandler(gen).RegisterRoutes(api)
	recording.NewHandler(recordingSvc, gen).RegisterRoutes(api)
	cards.NewHandler(cardSvc).RegisterRoutes(api)
	contacts.NewHandler(contacts.NewService(db)).RegisterRoutes(api)

	// Anonymous share counter. One count per IP per day.
	api.GET("/share_count", func(c *gin.Context) {
		var opt models.OptionModel
		if err := db.Where("name = ?", "share_count").First(&opt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, 0)
				return
			}
			response.InternalError(c, err)
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(opt.Value), 10, 64)
		if err != nil {
			c.JSON(http.StatusOK, 0)
			return
		}
		c.JSON(http.StatusOK, n)
	})
	api.POST("/share_count", func(c *gin.Context) {
		ip := c.ClientIP()
		date := time.Now().Format("2006-01-02")
		key := fmt.Sprintf("rc:share_count:%s:%s", date, ip)
		set, err := rc.Raw().SetNX(c.Request.Context(), key, 1, 24*time.Hour).Result()
		if err == nil && !set {
			response.BadRequest(c, "already counted today")
			return
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value": gorm.Expr("CAST(value AS UNSIGNED) + 1"),
			}),
		}).Create(&models.OptionModel{
			Name:  "share_count",
			Value: "1",
		}).Error
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	api.GET("/clean_cache", func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})
}

func httpCacheSkipPaths(apiPrefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(apiPrefix), "/")
	if p == "" {
		p = "/api/v1"
	}
	return []string{
		p + "/uptime",
		p + "/health",
		p + "/recordings",
		p + "/recordings/*",
		p + "/share_count",
		p + "/clean_cache",
	}
}

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return d.Truncate(time.Second).String()
	}
	if d < time.Hour {
		return d.Truncate(time.Minute).String()
	}
	if d < 24*time.Hour {
		return d.Truncate(time.Hour).String()
	}
	return d.Truncate(24 * time.Hour).String()
}
