package models

import "time"

// GlobalConfigID is the primary key of the single GlobalConfig row.
const GlobalConfigID uint = 1

// GlobalConfig holds the admin-mutable, process-wide platform settings.
type GlobalConfig struct {
	ID                            uint      `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Initialized                   bool      `gorm:"not null;default:false" json:"initialized"`
	MinInvestmentValue            int64     `gorm:"type:bigint;not null;default:0" json:"min_investment_value"`
	MaxReferralsPerReferrer       int64     `gorm:"type:bigint;not null;default:0" json:"max_referrals_per_referrer"`
	MaxReferralRevenuePerReferrer int64     `gorm:"type:bigint;not null;default:0" json:"max_referral_revenue_per_referrer"`
	PlatformFeeBasisPoints        int64     `gorm:"type:bigint;not null;default:0" json:"platform_fee_basis_points"`
	ReferralFeeBasisPoints        int64     `gorm:"type:bigint;not null;default:0" json:"referral_fee_basis_points"`
	FeeCapBasisPoints             int64     `gorm:"type:bigint;not null;default:10000" json:"fee_cap_basis_points"`
	MinRevenueDeposit             int64     `gorm:"type:bigint;not null;default:1000" json:"min_revenue_deposit"`
	TreasuryAddress               string    `json:"treasury_address"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// WhitelistedAsset marks an asset as eligible for payment or revenue.
type WhitelistedAsset struct {
	AssetID   string    `gorm:"primaryKey" json:"asset_id"`
	CreatedAt time.Time `json:"created_at"`
}
