package models

import "time"

// FeeAccumulator holds the per-property running fee totals. They are only
// released by a successful raise completion and are zeroed as they are paid.
type FeeAccumulator struct {
	PropertyID              uint      `gorm:"primaryKey;autoIncrement:false" json:"property_id"`
	PlatformFeeAccrued      int64     `gorm:"type:bigint;not null;default:0" json:"platform_fee_accrued"`
	OwnerPlatformFeeAccrued int64     `gorm:"type:bigint;not null;default:0" json:"owner_platform_fee_accrued"`
	OwnerShareAccrued       int64     `gorm:"type:bigint;not null;default:0" json:"owner_share_accrued"`
	ReferralFeeAccrued      int64     `gorm:"type:bigint;not null;default:0" json:"referral_fee_accrued"`
	OwnerFeeBasisPoints     int64     `gorm:"type:bigint;not null;default:0" json:"owner_fee_basis_points"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Total returns the collected value the accumulators currently represent.
// The referral fee is a carve-out of the platform fee and is not added again.
func (f *FeeAccumulator) Total() int64 {
	return f.PlatformFeeAccrued + f.OwnerPlatformFeeAccrued + f.OwnerShareAccrued
}

// InvestorLedger is one investor's position in one property raise.
// AmountInvestedValue excludes the platform fee; OffLedgerValue is the part of
// it that was reconciled from fiat and never passed through the escrow.
type InvestorLedger struct {
	PropertyID          uint      `gorm:"primaryKey;autoIncrement:false" json:"property_id"`
	Investor            string    `gorm:"primaryKey" json:"investor"`
	AmountInvestedValue int64     `gorm:"type:bigint;not null;default:0" json:"amount_invested_value"`
	OffLedgerValue      int64     `gorm:"type:bigint;not null;default:0" json:"off_ledger_value"`
	PlatformFeePaid     int64     `gorm:"type:bigint;not null;default:0" json:"platform_fee_paid"`
	OwnerFeeValue       int64     `gorm:"type:bigint;not null;default:0" json:"owner_fee_value"`
	ReferralFeeValue    int64     `gorm:"type:bigint;not null;default:0" json:"referral_fee_value"`
	SharesOwed          int64     `gorm:"type:bigint;not null;default:0" json:"shares_owed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// OnLedgerValue returns the principal that was paid into escrow.
func (l *InvestorLedger) OnLedgerValue() int64 {
	return l.AmountInvestedValue - l.OffLedgerValue
}

// RefundValue returns everything this investor paid into escrow.
func (l *InvestorLedger) RefundValue() int64 {
	return l.OnLedgerValue() + l.PlatformFeePaid
}

// IsEmpty reports whether the entry holds no position.
func (l *InvestorLedger) IsEmpty() bool {
	return l.AmountInvestedValue == 0 && l.SharesOwed == 0
}
