package rights

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/pkg/response"
)

type CustomCardDTO struct {
	InteractionType string `json:"interactionType" binding:"required"`
	State           string `json:"state"`
	Context         string `json:"context"`
}

type cardEnvelope struct {
	Card Card `json:"card"`
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/rights")
	g.GET("", h.get)
	g.POST("", h.custom)
}

func (h *Handler) get(c *gin.Context) {
	state := c.DefaultQuery("state", GeneralJurisdiction)
	interactionType := c.DefaultQuery("interactionType", TypeTrafficStop)
	language := c.DefaultQuery("language", LanguageEnglish)

	card, err := h.svc.Resolve(interactionType, state, language, "")
	if err != nil {
		if errors.Is(err, ErrUnknownInteractionType) {
			response.BadRequest(c, "Invalid interaction type")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, cardEnvelope{Card: card})
}

// custom resolves a card for a caller-described situation. The context text
// rides along as metadata; lookup itself stays catalog-driven.
func (h *Handler) custom(c *gin.Context) {
	var dto CustomCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.State == "" {
		dto.State = GeneralJurisdiction
	}

	card, err := h.svc.Resolve(dto.InteractionType, dto.State, LanguageEnglish, dto.Context)
	if err != nil {
		if errors.Is(err, ErrUnknownInteractionType) {
			response.BadRequest(c, "Invalid interaction type")
			return
		}
		response.InternalError(c, err)
		return
	}
	card.CardID = card.InteractionType + "-" + card.State + "-custom"
	response.OK(c, cardEnvelope{Card: card})
}
