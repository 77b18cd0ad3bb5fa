package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DividendPool is the revenue accrual state of one share asset.
// CumulativeRevenuePerShare is scaled by accrual.RevenueScale and never decreases.
type DividendPool struct {
	ShareAssetID              string          `gorm:"primaryKey" json:"share_asset_id"`
	PropertyID                uint            `gorm:"not null;uniqueIndex" json:"property_id"`
	RevenueAssetID            string          `gorm:"not null" json:"revenue_asset_id"`
	CumulativeRevenuePerShare decimal.Decimal `gorm:"type:varchar(80);not null" json:"cumulative_revenue_per_share"`
	TotalDeposited            int64           `gorm:"type:bigint;not null;default:0" json:"total_deposited"`
	TotalClaimed              int64           `gorm:"type:bigint;not null;default:0" json:"total_claimed"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

// DividendSnapshot is the per-holder settlement point in a DividendPool.
type DividendSnapshot struct {
	ShareAssetID           string          `gorm:"primaryKey" json:"share_asset_id"`
	Holder                 string          `gorm:"primaryKey" json:"holder"`
	SettledRevenuePerShare decimal.Decimal `gorm:"type:varchar(80);not null" json:"settled_revenue_per_share"`
	TotalClaimed           int64           `gorm:"type:bigint;not null;default:0" json:"total_claimed"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
