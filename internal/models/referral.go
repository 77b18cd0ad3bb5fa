package models

import "time"

// Referrer is a registered referral partner and its running totals.
type Referrer struct {
	Address       string    `gorm:"primaryKey" json:"address"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	ReferralCount int64     `gorm:"type:bigint;not null;default:0" json:"referral_count"`
	Revenue       int64     `gorm:"type:bigint;not null;default:0" json:"revenue"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReferralReward records one credited referral fee.
type ReferralReward struct {
	Base
	Referrer    string `gorm:"not null;index" json:"referrer"`
	Beneficiary string `gorm:"not null;index" json:"beneficiary"`
	PropertyID  uint   `gorm:"not null;index" json:"property_id"`
	Amount      int64  `gorm:"type:bigint;not null" json:"amount"`
}
