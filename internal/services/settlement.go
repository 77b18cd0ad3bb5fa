package services

import (
	"context"

	apperrors "propfund/internal/errors"
	"propfund/internal/events"
)

// CompleteRaise finalizes a raise that met its threshold and releases the
// accumulated funds: platform fee net of the referral carve-out and the
// owner fee to the treasury, the owner share to the owner, the referral
// fee to the referral vault. Each accumulator is zeroed as it is paid.
func (s *propertyService) CompleteRaise(ctx context.Context, caller string, id uint) (*Disbursement, error) {
	var out *Disbursement
	err := s.run(ctx, "completeRaise", caller, func(o *opScope) error {
		tx := o.tx
		if err := requireAdmin(s.access, tx, caller); err != nil {
			return err
		}
		cfg, err := requireInitialized(s.platform, tx)
		if err != nil {
			return err
		}
		p, err := loadProperty(tx, id)
		if err != nil {
			return err
		}
		switch {
		case p.IsDead:
			return apperrors.ErrPropertyDead
		case !p.IsApproved:
			return apperrors.ErrNotApproved
		case p.IsCompleted:
			return apperrors.WithMessage(apperrors.ErrAlreadyDone, "raise is already completed")
		case !p.ThresholdMet():
			return apperrors.ErrThresholdNotMet
		}
		fees, err := loadFees(tx, id)
		if err != nil {
			return err
		}

		p.IsCompleted = true
		d := &Disbursement{PropertyID: id}

		pay := func(to string, amount int64) error {
			if amount <= 0 {
				return nil
			}
			return s.assets.Transfer(tx, p.PaymentAssetID, s.escrow, to, amount)
		}

		d.TreasuryPlatform = fees.PlatformFeeAccrued - fees.ReferralFeeAccrued
		if err := pay(cfg.TreasuryAddress, d.TreasuryPlatform); err != nil {
			return err
		}
		fees.PlatformFeeAccrued = fees.ReferralFeeAccrued

		d.TreasuryOwnerFee = fees.OwnerPlatformFeeAccrued
		if err := pay(cfg.TreasuryAddress, d.TreasuryOwnerFee); err != nil {
			return err
		}
		fees.OwnerPlatformFeeAccrued = 0

		d.Owner = fees.OwnerShareAccrued
		if err := pay(p.OwnerPayoutAddress, d.Owner); err != nil {
			return err
		}
		fees.OwnerShareAccrued = 0

		d.Referral = fees.ReferralFeeAccrued
		if err := pay(s.referrals.HoldingAddress(), d.Referral); err != nil {
			return err
		}
		fees.ReferralFeeAccrued = 0
		fees.PlatformFeeAccrued = 0

		if err := save(tx, p, fees); err != nil {
			return err
		}
		o.emit(events.RaiseCompleted, id, map[string]any{
			"treasury_platform":  d.TreasuryPlatform,
			"treasury_owner_fee": d.TreasuryOwnerFee,
			"owner":              d.Owner,
			"referral":           d.Referral,
		})
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecoverFundsInvested refunds an investor of a failed raise: the deadline
// has passed below threshold, or the property was canceled. The refund is
// the on-ledger principal plus the platform fee paid on it. A second call
// fails with ErrNothingToRecover.
func (s *propertyService) RecoverFundsInvested(ctx context.Context, user string, id uint) (int64, error) {
	var refund int64
	err := s.run(ctx, "recoverFundsInvested", user, func(o *opScope) error {
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if p.IsCompleted {
			return apperrors.ErrRaiseCompleted
		}
		// A canceled raise can never complete, so it refunds whatever it raised.
		if !p.IsDead {
			if !p.DeadlinePassed(o.now) {
				return apperrors.ErrRaiseActive
			}
			if p.ThresholdMet() {
				return apperrors.ErrThresholdMet
			}
		}
		l, err := loadLedger(o.tx, id, user)
		if err != nil {
			return err
		}
		if l == nil || l.IsEmpty() {
			return apperrors.ErrNothingToRecover
		}

		shares := l.SharesOwed
		refund, err = s.unwind(o.tx, p, l)
		if err != nil {
			return err
		}
		o.emit(events.FundsRecovered, id, map[string]any{"investor": user, "shares": shares, "refund": refund})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

// GetInvestmentTokens delivers the shares owed to user after completion.
// With nothing owed it is a no-op and returns zero.
func (s *propertyService) GetInvestmentTokens(ctx context.Context, user string, id uint) (int64, error) {
	var delivered int64
	err := s.run(ctx, "getInvestmentTokens", user, func(o *opScope) error {
		p, err := loadProperty(o.tx, id)
		if err != nil {
			return err
		}
		if !p.IsCompleted {
			return apperrors.ErrRaiseNotCompleted
		}
		l, err := loadLedger(o.tx, id, user)
		if err != nil {
			return err
		}
		if l == nil || l.SharesOwed == 0 {
			return nil
		}

		owed := l.SharesOwed
		if err := s.dividends.MoveShares(o.tx, p, s.escrow, user, owed); err != nil {
			return err
		}
		l.SharesOwed = 0
		if err := save(o.tx, l); err != nil {
			return err
		}
		o.emit(events.TokensClaimed, id, map[string]any{"investor": user, "shares": owed})
		delivered = owed
		return nil
	})
	if err != nil {
		return 0, err
	}
	return delivered, nil
}
