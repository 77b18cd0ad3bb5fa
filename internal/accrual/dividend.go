package accrual

import (
	"errors"

	"github.com/shopspring/decimal"
)

// RevenueScaleExp is the base-10 exponent of the per-share accrual scale.
const RevenueScaleExp = 18

// RevenueScale is the fixed-point multiplier of cumulative revenue per share.
var RevenueScale = decimal.New(1, RevenueScaleExp)

var (
	// ErrZeroSupply indicates a deposit with no shares to accrue against.
	ErrZeroSupply = errors.New("accrual: zero share supply")

	// ErrZeroIncrement indicates a deposit too small to move the accumulator.
	ErrZeroIncrement = errors.New("accrual: deposit rounds to zero per share")

	// ErrSnapshotAhead indicates a snapshot above the cumulative value.
	ErrSnapshotAhead = errors.New("accrual: settled snapshot exceeds cumulative")
)

// PerShareIncrement returns amount * RevenueScale / supply, truncated.
func PerShareIncrement(amount, supply int64) (decimal.Decimal, error) {
	if amount < 0 {
		return decimal.Zero, ErrNegativeAmount
	}
	if supply <= 0 {
		return decimal.Zero, ErrZeroSupply
	}
	q, _ := decimal.NewFromInt(amount).Mul(RevenueScale).QuoRem(decimal.NewFromInt(supply), 0)
	if !q.IsPositive() {
		return decimal.Zero, ErrZeroIncrement
	}
	return q, nil
}

// Owed returns (cumulative - settled) * balance / RevenueScale, truncated.
func Owed(cumulative, settled decimal.Decimal, balance int64) (int64, error) {
	if balance < 0 {
		return 0, ErrNegativeAmount
	}
	delta := cumulative.Sub(settled)
	if delta.IsNegative() {
		return 0, ErrSnapshotAhead
	}
	q, _ := delta.Mul(decimal.NewFromInt(balance)).QuoRem(RevenueScale, 0)
	return q.IntPart(), nil
}

// Dust returns the part of deposited revenue the accumulator cannot pay out
// to a supply of shares: deposited - cumulative * supply / RevenueScale.
func Dust(cumulative decimal.Decimal, supply, deposited int64) int64 {
	q, _ := cumulative.Mul(decimal.NewFromInt(supply)).QuoRem(RevenueScale, 0)
	return deposited - q.IntPart()
}
