package generate

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/modules/rights"
	"github.com/rightscard/core/internal/pkg/response"
)

type GenerateSummaryDTO struct {
	InteractionType string `json:"interactionType" binding:"required"`
	DurationSeconds int    `json:"durationSeconds"`
	Duration        int    `json:"duration"` // legacy alias for durationSeconds
	Location        string `json:"location"`
	State           string `json:"state"`
	Language        string `json:"language"`
}

type GenerateCardDTO struct {
	InteractionType string `json:"interactionType" binding:"required"`
	State           string `json:"state"`
	Jurisdiction    string `json:"jurisdiction"`
	Context         string `json:"context"`
}

type ShareableCardDTO struct {
	InteractionType string   `json:"interactionType" binding:"required"`
	Summary         string   `json:"summary"`
	KeyRights       []string `json:"keyRights"`
	State           string   `json:"state"`
	Language        string   `json:"language"`
}

type CustomCardDTO struct {
	InteractionType string `json:"interactionType" binding:"required"`
	State           string `json:"state"`
	Language        string `json:"language"`
}

type Handler struct{ gen *Generator }

func NewHandler(gen *Generator) *Handler { return &Handler{gen: gen} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-summary", h.generateSummary)
	rg.POST("/generate-card", h.generateCard)
	rg.POST("/generate-card/shareable", h.generateShareable)
	rg.POST("/generate-card/custom", h.generateCustomCard)
}

func (h *Handler) generateSummary(c *gin.Context) {
	var dto GenerateSummaryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !rights.KnownInteractionType(dto.InteractionType) {
		response.BadRequest(c, "Invalid interaction type")
		return
	}
	seconds := dto.DurationSeconds
	if seconds == 0 {
		seconds = dto.Duration
	}
	if seconds < 0 {
		response.BadRequest(c, "durationSeconds must be >= 0")
		return
	}

	summary := h.gen.Summary(c.Request.Context(), dto.InteractionType, seconds, dto.Location, dto.State, dto.Language)
	response.OK(c, gin.H{"summary": summary})
}

func (h *Handler) generateCard(c *gin.Context) {
	var dto GenerateCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !rights.KnownInteractionType(dto.InteractionType) {
		response.BadRequest(c, "Invalid interaction type")
		return
	}
	jurisdiction := dto.State
	if jurisdiction == "" {
		jurisdiction = dto.Jurisdiction
	}
	if jurisdiction == "" {
		jurisdiction = rights.GeneralJurisdiction
	}

	card := h.gen.Card(c.Request.Context(), dto.InteractionType, jurisdiction, dto.Context)
	response.OK(c, card)
}

func (h *Handler) generateShareable(c *gin.Context) {
	var dto ShareableCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !rights.KnownInteractionType(dto.InteractionType) {
		response.BadRequest(c, "Invalid interaction type")
		return
	}

	text := h.gen.ShareableCard(c.Request.Context(), dto.InteractionType, dto.Summary, dto.KeyRights, dto.Language, dto.State)
	response.OK(c, gin.H{"shareableText": text})
}

func (h *Handler) generateCustomCard(c *gin.Context) {
	var dto CustomCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.State == "" {
		dto.State = rights.GeneralJurisdiction
	}

	card, err := h.gen.CustomCard(c.Request.Context(), dto.InteractionType, dto.State, strings.TrimSpace(dto.Language))
	if err != nil {
		if errors.Is(err, rights.ErrUnknownInteractionType) {
			response.BadRequest(c, "Invalid interaction type")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, card)
}
