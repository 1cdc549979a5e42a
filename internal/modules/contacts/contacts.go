package contacts

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/rightscard/core/internal/models"
	"github.com/rightscard/core/internal/pkg/response"
	"gorm.io/gorm"
)

// CreateContactDTO is the payload for saving a trusted contact.
type CreateContactDTO struct {
	UserID       string `json:"userId"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Relationship string `json:"relationship"`
	IsLawyer     bool   `json:"isLawyer"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(userID string) ([]models.EmergencyContactModel, error) {
	tx := s.db.Order("created_at ASC")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	var items []models.EmergencyContactModel
	err := tx.Find(&items).Error
	return items, err
}

func (s *Service) Create(dto *CreateContactDTO) (*models.EmergencyContactModel, error) {
	contact := models.EmergencyContactModel{
		UserID:       strings.TrimSpace(dto.UserID),
		Name:         strings.TrimSpace(dto.Name),
		Phone:        strings.TrimSpace(dto.Phone),
		Relationship: strings.TrimSpace(dto.Relationship),
		IsLawyer:     dto.IsLawyer,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.EmergencyContactModel{}, "id = ?", id).Error
}

// isDuplicateContactError matches the unique (user_id, phone) index so a
// re-synced contact maps to 409 instead of 500.
func isDuplicateContactError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry")
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/contacts")
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Query("userId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	contact, err := h.svc.Create(&dto)
	if err != nil {
		if isDuplicateContactError(err) {
			response.Conflict(c, "contact already saved")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, contact)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
