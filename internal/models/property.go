package models

import "time"

// PropertyStatus is the derived lifecycle phase of a property raise.
type PropertyStatus string

const (
	PropertyStatusCreated   PropertyStatus = "created"
	PropertyStatusApproved  PropertyStatus = "approved"
	PropertyStatusCompleted PropertyStatus = "completed"
	PropertyStatusExpired   PropertyStatus = "expired"
	PropertyStatusCanceled  PropertyStatus = "canceled"
)

// Property is one funding campaign for a tokenized real-estate asset.
// All monetary values are in minor units of the payment asset.
type Property struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	PricePerShare      int64     `gorm:"type:bigint;not null" json:"price_per_share"`
	SharesForSale      int64     `gorm:"type:bigint;not null" json:"shares_for_sale"`
	RaisedShares       int64     `gorm:"type:bigint;not null;default:0" json:"raised_shares"`
	ThresholdValue     int64     `gorm:"type:bigint;not null" json:"threshold_value"`
	RaiseDeadline      time.Time `json:"raise_deadline"`
	IsCompleted        bool      `gorm:"not null;default:false" json:"is_completed"`
	IsApproved         bool      `gorm:"not null;default:false" json:"is_approved"`
	WasExtended        bool      `gorm:"not null;default:false" json:"was_extended"`
	IsDead             bool      `gorm:"not null;default:false" json:"is_dead"`
	Creator            string    `gorm:"not null;index" json:"creator"`
	OwnerPayoutAddress string    `gorm:"not null" json:"owner_payout_address"`
	PaymentAssetID     string    `gorm:"not null" json:"payment_asset_id"`
	RevenueAssetID     string    `gorm:"not null" json:"revenue_asset_id"`
	ShareAssetID       string    `gorm:"uniqueIndex" json:"share_asset_id"`
	Metadata           string    `gorm:"type:text" json:"metadata,omitempty"`
}

// RaisedValue returns the monetary value of all shares reserved so far.
func (p *Property) RaisedValue() int64 {
	return p.RaisedShares * p.PricePerShare
}

// ThresholdMet reports whether the raised value reached the success threshold.
func (p *Property) ThresholdMet() bool {
	return p.RaisedValue() >= p.ThresholdValue
}

// RemainingShares returns the shares still available for sale.
func (p *Property) RemainingShares() int64 {
	return p.SharesForSale - p.RaisedShares
}

// DeadlinePassed reports whether now is strictly after the raise deadline.
// A canceled property has a zero deadline and is always past it.
func (p *Property) DeadlinePassed(now time.Time) bool {
	return now.After(p.RaiseDeadline)
}

// Status derives the lifecycle phase. Expired is never stored.
func (p *Property) Status(now time.Time) PropertyStatus {
	switch {
	case p.IsDead:
		return PropertyStatusCanceled
	case p.IsCompleted:
		return PropertyStatusCompleted
	case !p.IsApproved:
		return PropertyStatusCreated
	case p.DeadlinePassed(now) && !p.ThresholdMet():
		return PropertyStatusExpired
	default:
		return PropertyStatusApproved
	}
}
