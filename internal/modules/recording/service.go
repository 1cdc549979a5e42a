package recording

import (
	"context"
	"errors"
	"time"

	"github.com/rightscard/core/internal/models"
	"github.com/rightscard/core/internal/pkg/pagination"
	"github.com/rightscard/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateRecordingDTO struct {
	InteractionType string `json:"interactionType" binding:"required"`
	Duration        int    `json:"duration"`
	Medium          string `json:"medium"`
	Location        string `json:"location"`
	UserID          string `json:"userId"`
	Timestamp       *int64 `json:"timestamp"` // unix millis, defaults to now
}

type Service struct {
	db    *gorm.DB
	media *MediaStore
}

func NewService(db *gorm.DB, media *MediaStore) *Service {
	return &Service{db: db, media: media}
}

// StorageAvailable reports whether durable media storage is configured.
func (s *Service) StorageAvailable() bool { return s.media != nil }

// List returns one page of recordings, most-recent-first.
func (s *Service) List(q pagination.Query) ([]models.RecordingModel, response.Pagination, error) {
	tx := s.db.Model(&models.RecordingModel{}).Order("timestamp DESC")
	var items []models.RecordingModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.RecordingModel, error) {
	var rec models.RecordingModel
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *Service) Create(dto *CreateRecordingDTO) (*models.RecordingModel, error) {
	ts := time.Now()
	if dto.Timestamp != nil {
		ts = time.UnixMilli(*dto.Timestamp)
	}
	medium := dto.Medium
	if medium == "" {
		medium = MediumAudio
	}
	if dto.Duration < 0 {
		dto.Duration = 0
	}

	rec := models.RecordingModel{
		UserID:          dto.UserID,
		InteractionType: dto.InteractionType,
		Timestamp:       ts,
		Duration:        dto.Duration,
		Medium:          medium,
		Location:        dto.Location,
	}
	return &rec, s.db.Create(&rec).Error
}

// CreateFromCapture persists a finished capture session's result.
func (s *Service) CreateFromCapture(capture *Capture, interactionType, location, userID string) (*models.RecordingModel, error) {
	rec := models.RecordingModel{
		UserID:          userID,
		InteractionType: interactionType,
		Timestamp:       capture.StoppedAt,
		Duration:        capture.DurationSeconds,
		Medium:          capture.Medium,
		Location:        location,
	}
	return &rec, s.db.Create(&rec).Error
}

// AttachSummary records the generated summary text on the recording.
func (s *Service) AttachSummary(id, summary string) error {
	return s.db.Model(&models.RecordingModel{}).
		Where("id = ?", id).
		Update("ai_summary", summary).Error
}

// Upload pushes the media blob to the configured store and marks the row
// uploaded. Fails with ErrServiceUnavailable when storage is not configured.
func (s *Service) Upload(ctx context.Context, id string, data []byte) (*models.RecordingModel, error) {
	rec, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	key, url, err := s.media.Upload(ctx, data, rec.Medium)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"object_key":  key,
		"file_path":   url,
		"is_uploaded": true,
		"uploaded_at": &now,
	}
	if err := s.db.Model(rec).Updates(updates).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the row and, when uploaded, its stored media object.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.GetByID(id)
	if err != nil || rec == nil {
		return err
	}
	if rec.IsUploaded && rec.ObjectKey != "" && s.media != nil {
		if err := s.media.Delete(ctx, rec.ObjectKey); err != nil {
			return err
		}
	}
	return s.db.Delete(&models.RecordingModel{}, "id = ?", id).Error
}
