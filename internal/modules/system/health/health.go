// Package health exposes the service health endpoint.
package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const version = "1.0.0"

// Options captures the collaborator availability checks the endpoint
// reports on.
type Options struct {
	DB               *gorm.DB
	AIAvailable      func() bool
	StorageAvailable bool
}

func RegisterRoutes(rg *gin.RouterGroup, opts Options) {
	rg.GET("/health", func(c *gin.Context) {
		dbOK := true
		if opts.DB != nil {
			sqlDB, err := opts.DB.DB()
			dbOK = err == nil && sqlDB.Ping() == nil
		}

		status := "healthy"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		ai := "unavailable"
		if opts.AIAvailable != nil && opts.AIAvailable() {
			ai = "operational"
		}
		api := "operational"
		if !dbOK {
			api = "degraded"
		}
		storage := "unavailable"
		if opts.StorageAvailable {
			storage = "operational"
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
			"services": gin.H{
				"api":     api,
				"ai":      ai,
				"storage": storage,
			},
			"features": gin.H{
				"recording":           "enabled",
				"aiSummary":           "enabled",
				"stateSpecificRights": "enabled",
				"multiLanguage":       "enabled",
				"sharing":             "enabled",
			},
		})
	})
}
