package models

// OptionModel is a simple key-value row for server-side settings.
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;size:64;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (OptionModel) TableName() string { return "options" }
