package models

import "time"

// SystemStateID is the primary key of the single SystemState row.
const SystemStateID uint = 1

// AccessGrant holds the capabilities granted to one address.
type AccessGrant struct {
	Address        string    `gorm:"primaryKey" json:"address"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
	IsFundsManager bool      `gorm:"not null;default:false" json:"is_funds_manager"`
	KYCApproved    bool      `gorm:"column:kyc_approved;not null;default:false" json:"kyc_approved"`
	Blacklisted    bool      `gorm:"not null;default:false" json:"blacklisted"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SystemState carries the global pause switch.
type SystemState struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Paused    bool      `gorm:"not null;default:false" json:"paused"`
	UpdatedAt time.Time `json:"updated_at"`
}
