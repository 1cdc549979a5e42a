package recording

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/models"
	"github.com/rightscard/core/internal/modules/generate"
	"github.com/rightscard/core/internal/modules/rights"
	"github.com/rightscard/core/internal/pkg/pagination"
	"github.com/rightscard/core/internal/pkg/response"
)

type uploadDTO struct {
	DataBase64 string `json:"dataBase64" binding:"required"`
}

type summarizeDTO struct {
	Language string `json:"language"`
	State    string `json:"state"`
}

type recordingResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId,omitempty"`
	InteractionType string     `json:"interactionType"`
	Timestamp       time.Time  `json:"timestamp"`
	Duration        int        `json:"duration"`
	Medium          string     `json:"medium"`
	Location        string     `json:"location,omitempty"`
	AISummary       string     `json:"aiSummary,omitempty"`
	FilePath        string     `json:"filePath,omitempty"`
	IsUploaded      bool       `json:"isUploaded"`
	UploadedAt      *time.Time `json:"uploadedAt,omitempty"`
	Created         time.Time  `json:"created"`
}

func toResponse(rec *models.RecordingModel) recordingResponse {
	return recordingResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		InteractionType: rec.InteractionType,
		Timestamp:       rec.Timestamp,
		Duration:        rec.Duration,
		Medium:          rec.Medium,
		Location:        rec.Location,
		AISummary:       rec.AISummary,
		FilePath:        rec.FilePath,
		IsUploaded:      rec.IsUploaded,
		UploadedAt:      rec.UploadedAt,
		Created:         rec.CreatedAt,
	}
}

type Handler struct {
	svc *Service
	gen *generate.Generator
}

func NewHandler(svc *Service, gen *generate.Generator) *Handler {
	return &Handler{svc: svc, gen: gen}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/recordings")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/summary", h.summarize)
	g.PATCH("/:id/summary", h.summarize)
	g.POST("/:id/upload", h.upload)
}

func (h *Handler) list(c *gin.Context) {
	items, pag, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]recordingResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.Paged(c, out, pag)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateRecordingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !rights.KnownInteractionType(dto.InteractionType) {
		response.BadRequest(c, "Invalid interaction type")
		return
	}
	if dto.Medium != "" && dto.Medium != MediumAudio && dto.Medium != MediumVideo {
		response.BadRequest(c, "medium must be audio or video")
		return
	}

	rec, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(rec))
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "recording not found")
		return
	}
	response.OK(c, toResponse(rec))
}

func (h *Handler) delete(c *gin.Context) {
	rec, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "recording not found")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), rec.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// summarize generates a documentation summary for the recording and stores
// it. Generation degrades to fallback text, so this never returns 5xx for
// provider faults.
func (h *Handler) summarize(c *gin.Context) {
	rec, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "recording not found")
		return
	}

	var dto summarizeDTO
	_ = c.ShouldBindJSON(&dto)

	summary := h.gen.Summary(c.Request.Context(), rec.InteractionType, rec.Duration, rec.Location, dto.State, dto.Language)
	if err := h.svc.AttachSummary(rec.ID, summary); err != nil {
		response.InternalError(c, err)
		return
	}
	rec.AISummary = summary
	response.OK(c, toResponse(rec))
}

func (h *Handler) upload(c *gin.Context) {
	if !h.svc.StorageAvailable() {
		response.ServiceUnavailable(c, "Media storage is not configured")
		return
	}

	var dto uploadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	data, err := base64.StdEncoding.DecodeString(dto.DataBase64)
	if err != nil {
		response.BadRequest(c, "dataBase64 is not valid base64")
		return
	}

	rec, err := h.svc.Upload(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		if errors.Is(err, ErrServiceUnavailable) {
			response.ServiceUnavailable(c, "Media storage is not configured")
			return
		}
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "recording not found")
		return
	}

	updated, err := h.svc.GetByID(rec.ID)
	if err != nil || updated == nil {
		response.InternalError(c, errors.New("recording vanished during upload"))
		return
	}
	response.OK(c, toResponse(updated))
}
