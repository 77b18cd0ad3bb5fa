// Package accrual holds the integer fixed-point arithmetic of the ledger:
// basis-point fee splits, the capped referral carve-out and cumulative
// per-share revenue accrual. All divisions truncate toward zero.
package accrual

import (
	"errors"

	"github.com/shopspring/decimal"
)

// BasisPoints is the denominator of every fee rate.
const BasisPoints int64 = 10000

var (
	// ErrNegativeAmount indicates a negative value was passed to a split.
	ErrNegativeAmount = errors.New("accrual: negative amount")

	// ErrRateOutOfRange indicates a basis-point rate outside [0, BasisPoints].
	ErrRateOutOfRange = errors.New("accrual: rate out of range")
)

// MulDiv returns a*b/c truncated, computed without intermediate overflow.
func MulDiv(a, b, c int64) int64 {
	q, _ := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b)).QuoRem(decimal.NewFromInt(c), 0)
	return q.IntPart()
}

// FeeOf returns value * bps / BasisPoints.
func FeeOf(value, bps int64) int64 {
	return MulDiv(value, bps, BasisPoints)
}

// Split is the fee breakdown of a single on-ledger investment.
type Split struct {
	// PlatformFee is charged on top of the value.
	PlatformFee int64
	// OwnerFee is the platform's cut of the value owed to the owner.
	OwnerFee int64
	// OwnerShare is the value the owner receives, value - OwnerFee.
	OwnerShare int64
}

// SplitInvestment computes the platform fee and the owner split of value.
func SplitInvestment(value, platformBps, ownerBps int64) (Split, error) {
	if value < 0 {
		return Split{}, ErrNegativeAmount
	}
	if platformBps < 0 || platformBps > BasisPoints || ownerBps < 0 || ownerBps > BasisPoints {
		return Split{}, ErrRateOutOfRange
	}
	ownerFee := FeeOf(value, ownerBps)
	return Split{
		PlatformFee: FeeOf(value, platformBps),
		OwnerFee:    ownerFee,
		OwnerShare:  value - ownerFee,
	}, nil
}

// ReferralPolicy is the global referral configuration.
type ReferralPolicy struct {
	FeeBps       int64
	MaxReferrals int64
	MaxRevenue   int64
}

// ReferrerStanding is a referrer's cumulative count and credited revenue.
type ReferrerStanding struct {
	Count   int64
	Revenue int64
}

// ReferralFee returns the fee to credit a referrer for an investment of value
// whose platform fee is platformFee. A referrer already above the global cap
// keeps its personal ceiling, so the headroom is max(cap, revenue) - revenue.
// The result never exceeds the platform fee it is carved out of.
func ReferralFee(value, platformFee int64, policy ReferralPolicy, standing ReferrerStanding) int64 {
	if standing.Count >= policy.MaxReferrals {
		return 0
	}
	ceiling := max(policy.MaxRevenue, standing.Revenue)
	fee := min(FeeOf(value, policy.FeeBps), ceiling-standing.Revenue, platformFee)
	if fee < 0 {
		return 0
	}
	return fee
}
