package models

import "time"

// RecordingModel is a locally captured interaction recording whose metadata
// the client has chosen to sync to the server.
type RecordingModel struct {
	Base
	UserID          string     `json:"user_id"          gorm:"type:char(36);index"`
	InteractionType string     `json:"interaction_type" gorm:"type:varchar(32);index;not null"`
	Timestamp       time.Time  `json:"timestamp"`
	Duration        int        `json:"duration"` // whole seconds
	Medium          string     `json:"medium"    gorm:"type:varchar(8)"` // audio | video
	FilePath        string     `json:"file_path"`
	Location        string     `json:"location,omitempty"`
	AISummary       string     `json:"ai_summary,omitempty" gorm:"type:longtext"`
	ObjectKey       string     `json:"object_key,omitempty"`
	UploadedAt      *time.Time `json:"uploaded_at,omitempty"`
	IsUploaded      bool       `json:"is_uploaded" gorm:"default:false"`
}

func (RecordingModel) TableName() string { return "recordings" }
