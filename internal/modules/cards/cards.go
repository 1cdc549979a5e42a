// Package cards persists generated shareable cards and serves a rendered
// HTML share page for each one.
package cards

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rightscard/core/internal/models"
	"github.com/rightscard/core/internal/pkg/response"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

// keepLimit caps the stored card history, newest first.
const keepLimit = 50

type CreateCardDTO struct {
	Title           string   `json:"title"           binding:"required"`
	Content         string   `json:"content"`
	KeyPoints       []string `json:"keyPoints"`
	ShareableText   string   `json:"shareableText"`
	InteractionType string   `json:"interactionType"`
	State           string   `json:"state"`
	Language        string   `json:"language"`
}

type cardResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content,omitempty"`
	KeyPoints       []string  `json:"keyPoints"`
	ShareableText   string    `json:"shareableText,omitempty"`
	InteractionType string    `json:"interactionType,omitempty"`
	State           string    `json:"state,omitempty"`
	Language        string    `json:"language,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	Created         time.Time `json:"created"`
}

func toResponse(m *models.ShareableCardModel) cardResponse {
	points := []string(m.KeyPoints)
	if points == nil {
		points = []string{}
	}
	return cardResponse{
		ID:              m.ID,
		Title:           m.Title,
		Content:         m.Content,
		KeyPoints:       points,
		ShareableText:   m.ShareableText,
		InteractionType: m.InteractionType,
		State:           m.State,
		Language:        m.Language,
		Timestamp:       m.Timestamp,
		Created:         m.CreatedAt,
	}
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns up to keepLimit cards, newest first.
func (s *Service) List() ([]models.ShareableCardModel, error) {
	var items []models.ShareableCardModel
	err := s.db.Order("timestamp DESC").Limit(keepLimit).Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.ShareableCardModel, error) {
	var card models.ShareableCardModel
	if err := s.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (s *Service) Create(dto *CreateCardDTO) (*models.ShareableCardModel, error) {
	card := models.ShareableCardModel{
		Title:           dto.Title,
		Content:         dto.Content,
		KeyPoints:       models.StringArray(dto.KeyPoints),
		ShareableText:   dto.ShareableText,
		InteractionType: dto.InteractionType,
		State:           dto.State,
		Language:        dto.Language,
		Timestamp:       time.Now(),
	}
	return &card, s.db.Create(&card).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ShareableCardModel{}, "id = ?", id).Error
}

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// renderShareHTML builds the share-page body: the card as markdown, through
// goldmark.
func renderShareHTML(card *models.ShareableCardModel) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", card.Title)
	if card.Content != "" {
		fmt.Fprintf(&md, "%s\n\n", card.Content)
	}
	if len(card.KeyPoints) > 0 {
		md.WriteString("## Key Points\n\n")
		for _, point := range card.KeyPoints {
			fmt.Fprintf(&md, "- %s\n", point)
		}
		md.WriteString("\n")
	}
	if card.ShareableText != "" {
		fmt.Fprintf(&md, "> %s\n", card.ShareableText)
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(md.String()), &buf); err != nil {
		return "", err
	}
	// Title and language are caller-supplied; only goldmark's output is
	// trusted as markup.
	return fmt.Sprintf(
		"<!DOCTYPE html>\n<html lang=%q>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(languageOrDefault(card.Language)),
		html.EscapeString(card.Title),
		buf.String(),
	), nil
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/cards")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.GET("/:id/render", h.render)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]cardResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCardDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(dto.ShareableText) > 512 {
		response.UnprocessableEntity(c, "shareableText exceeds 512 characters")
		return
	}
	card, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(card))
}

func (h *Handler) get(c *gin.Context) {
	card, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if card == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(card))
}

func (h *Handler) render(c *gin.Context) {
	card, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if card == nil {
		response.NotFound(c)
		return
	}
	html, err := renderShareHTML(card)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) delete(c *gin.Context) {
	card, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if card == nil {
		response.NotFound(c)
		return
	}
	if err := h.svc.Delete(card.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
