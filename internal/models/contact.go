package models

// EmergencyContactModel is a trusted contact the client can sync for
// cross-device access.
type EmergencyContactModel struct {
	Base
	UserID       string `json:"user_id"      gorm:"type:char(36);uniqueIndex:idx_contacts_user_phone"`
	Name         string `json:"name"         gorm:"not null"`
	Phone        string `json:"phone"        gorm:"type:varchar(32);uniqueIndex:idx_contacts_user_phone"`
	Relationship string `json:"relationship" gorm:"type:varchar(64)"`
	IsLawyer     bool   `json:"is_lawyer"`
}

func (EmergencyContactModel) TableName() string { return "emergency_contacts" }
