package services

import (
	"context"

	"gorm.io/gorm"

	"propfund/internal/accrual"
	apperrors "propfund/internal/errors"
	"propfund/internal/events"
	"propfund/internal/logger"
	"propfund/internal/models"
)

// BuyTokens reserves shareAmount shares for beneficiary, charging the caller
// value plus the platform fee. Nothing is recorded unless the payment pull
// succeeds; a referral credit failure never fails the purchase.
func (s *propertyService) BuyTokens(ctx context.Context, caller, beneficiary string, id uint, shareAmount int64, referrer string) (*models.InvestorLedger, error) {
	if shareAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "share amount must be positive")
	}
	if beneficiary == "" {
		beneficiary = caller
	}
	if err := rejectReserved(s.access, beneficiary); err != nil {
		return nil, err
	}

	var entry *models.InvestorLedger
	err := s.run(ctx, "buyTokens", caller, func(o *opScope) error {
		tx := o.tx
		if err := requireNotPaused(s.access, tx); err != nil {
			return err
		}
		cfg, err := requireInitialized(s.platform, tx)
		if err != nil {
			return err
		}
		if err := requireInvestor(s.access, tx, caller); err != nil {
			return err
		}
		if err := requireNotBlacklisted(s.access, tx, beneficiary); err != nil {
			return err
		}
		p, err := loadProperty(tx, id)
		if err != nil {
			return err
		}
		if err := checkOpen(p, o.now); err != nil {
			return err
		}
		if shareAmount > p.RemainingShares() {
			return apperrors.ErrCapacityExceeded
		}
		value := shareAmount * p.PricePerShare
		if value < cfg.MinInvestmentValue {
			return apperrors.ErrBelowMinInvestment
		}

		fees, err := loadFees(tx, id)
		if err != nil {
			return err
		}
		split, err := accrual.SplitInvestment(value, cfg.PlatformFeeBasisPoints, fees.OwnerFeeBasisPoints)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrFeeOutOfBounds, err)
		}
		if err := s.assets.TransferFrom(tx, p.PaymentAssetID, s.escrow, caller, s.escrow, value+split.PlatformFee); err != nil {
			return err
		}

		l, err := loadLedger(tx, id, beneficiary)
		if err != nil {
			return err
		}
		if l == nil {
			l = &models.InvestorLedger{PropertyID: id, Investor: beneficiary}
		}
		l.AmountInvestedValue += value
		l.SharesOwed += shareAmount
		l.PlatformFeePaid += split.PlatformFee
		l.OwnerFeeValue += split.OwnerFee

		fees.PlatformFeeAccrued += split.PlatformFee
		fees.OwnerPlatformFeeAccrued += split.OwnerFee
		fees.OwnerShareAccrued += split.OwnerShare

		var refFee int64
		if referrer != "" && referrer != caller && referrer != beneficiary {
			refFee = s.creditReferral(ctx, tx, cfg, referrer, beneficiary, id, value, split.PlatformFee)
		}
		fees.ReferralFeeAccrued += refFee
		l.ReferralFeeValue += refFee

		p.RaisedShares += shareAmount
		if err := save(tx, p, fees, l); err != nil {
			return err
		}

		o.emit(events.Invested, id, map[string]any{
			"beneficiary":  beneficiary,
			"shares":       shareAmount,
			"value":        value,
			"platform_fee": split.PlatformFee,
			"referrer":     referrer,
			"referral_fee": refFee,
		})
		entry = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// creditReferral attempts the referral carve-out inside a savepoint and
// returns the credited fee. Any failure is logged and yields zero.
func (s *propertyService) creditReferral(ctx context.Context, tx *gorm.DB, cfg *models.GlobalConfig, referrer, beneficiary string, id uint, value, platformFee int64) int64 {
	var fee int64
	err := tx.Transaction(func(sp *gorm.DB) error {
		details, err := s.referrals.GetReferrerDetails(sp, referrer)
		if err != nil {
			return err
		}
		fee = accrual.ReferralFee(value, platformFee,
			accrual.ReferralPolicy{
				FeeBps:       cfg.ReferralFeeBasisPoints,
				MaxReferrals: cfg.MaxReferralsPerReferrer,
				MaxRevenue:   cfg.MaxReferralRevenuePerReferrer,
			},
			accrual.ReferrerStanding{Count: details.ReferralCount, Revenue: details.Revenue},
		)
		if fee <= 0 {
			return nil
		}
		return s.referrals.AddRewards(sp, referrer, beneficiary, id, fee)
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("referral credit skipped",
			"error", err,
			"property_id", id,
			"referrer", referrer,
			"beneficiary", beneficiary,
		)
		return 0
	}
	return fee
}

// AdminBuyTokens records shares bought off-ledger. No payment is pulled and
// no fee is accrued; the value is tracked as off-ledger on the entry.
func (s *propertyService) AdminBuyTokens(ctx context.Context, caller string, id uint, buyer string, shareAmount int64) (*models.InvestorLedger, error) {
	if shareAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "share amount must be positive")
	}
	if buyer == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "buyer address is required")
	}

	var entry *models.InvestorLedger
	err := s.run(ctx, "adminBuyTokens", caller, func(o *opScope) error {
		tx := o.tx
		if err := requireFundsManager(s.access, tx, caller); err != nil {
			return err
		}
		if _, err := requireInitialized(s.platform, tx); err != nil {
			return err
		}
		if err := requireNotBlacklisted(s.access, tx, buyer); err != nil {
			return err
		}
		p, err := loadProperty(tx, id)
		if err != nil {
			return err
		}
		if err := checkOpen(p, o.now); err != nil {
			return err
		}
		if shareAmount > p.RemainingShares() {
			return apperrors.ErrCapacityExceeded
		}
		value := shareAmount * p.PricePerShare

		l, err := loadLedger(tx, id, buyer)
		if err != nil {
			return err
		}
		if l == nil {
			l = &models.InvestorLedger{PropertyID: id, Investor: buyer}
		}
		l.AmountInvestedValue += value
		l.OffLedgerValue += value
		l.SharesOwed += shareAmount

		p.RaisedShares += shareAmount
		if err := save(tx, p, l); err != nil {
			return err
		}

		o.emit(events.AdminInvested, id, map[string]any{"buyer": buyer, "shares": shareAmount, "value": value})
		entry = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RevertInvestment nulls one investor's entry before completion and returns
// its capacity to the raise. It is the manual correction for an
// oversubscribed raise: the last on-ledger entry to arrive is reverted.
// The on-ledger payment and its platform fee are refunded; returns the refund.
func (s *propertyService) RevertInvestment(ctx context.Context, caller, buyer string, id uint) (int64, error) {
	var refund int64
	err := s.run(ctx, "revertInvestment", caller, func(o *opScope) error {
		if err := requireAdmin(s.access, o.tx, caller); err != nil {
			return err
		}
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if p.IsCompleted {
			return apperrors.ErrRaiseCompleted
		}
		l, err := loadLedger(o.tx, id, buyer)
		if err != nil {
			return err
		}
		if l == nil || l.IsEmpty() {
			return apperrors.ErrLedgerNotFound
		}

		shares := l.SharesOwed
		refund, err = s.unwind(o.tx, p, l)
		if err != nil {
			return err
		}
		o.emit(events.InvestmentReverted, id, map[string]any{"buyer": buyer, "shares": shares, "refund": refund})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

// unwind removes an entry's contributions from the accumulators and the
// raised shares, refunds its on-ledger payment and zeroes it.
func (s *propertyService) unwind(tx *gorm.DB, p *models.Property, l *models.InvestorLedger) (int64, error) {
	fees, err := loadFees(tx, p.ID)
	if err != nil {
		return 0, err
	}

	if l.ReferralFeeValue > 0 {
		reversed, err := s.referrals.ReverseRewards(tx, l.Investor, p.ID)
		if err != nil {
			return 0, err
		}
		if reversed != l.ReferralFeeValue {
			logger.Get().Warnw("reversed referral rewards differ from the entry's referral fee",
				"property_id", p.ID,
				"investor", l.Investor,
				"reversed", reversed,
				"referral_fee", l.ReferralFeeValue,
			)
		}
	}

	refund := l.RefundValue()
	if refund > 0 {
		if err := s.assets.Transfer(tx, p.PaymentAssetID, s.escrow, l.Investor, refund); err != nil {
			return 0, err
		}
	}

	fees.PlatformFeeAccrued -= l.PlatformFeePaid
	fees.ReferralFeeAccrued -= l.ReferralFeeValue
	fees.OwnerPlatformFeeAccrued -= l.OwnerFeeValue
	fees.OwnerShareAccrued -= l.OnLedgerValue() - l.OwnerFeeValue
	p.RaisedShares -= l.SharesOwed

	l.AmountInvestedValue = 0
	l.OffLedgerValue = 0
	l.PlatformFeePaid = 0
	l.OwnerFeeValue = 0
	l.ReferralFeeValue = 0
	l.SharesOwed = 0

	if err := save(tx, fees, p, l); err != nil {
		return 0, err
	}
	return refund, nil
}
