package models

import "time"

// ShareableCardModel is a generated rights card a user chose to keep for
// link sharing.
type ShareableCardModel struct {
	Base
	Title           string      `json:"title"            gorm:"not null"`
	Content         string      `json:"content"          gorm:"type:longtext"`
	KeyPoints       StringArray `json:"key_points"       gorm:"type:longtext"`
	ShareableText   string      `json:"shareable_text"   gorm:"type:varchar(512)"`
	InteractionType string      `json:"interaction_type" gorm:"type:varchar(32);index"`
	State           string      `json:"state"            gorm:"type:varchar(8)"`
	Language        string      `json:"language"         gorm:"type:varchar(8)"`
	Timestamp       time.Time   `json:"timestamp"`
}

func (ShareableCardModel) TableName() string { return "shareable_cards" }
