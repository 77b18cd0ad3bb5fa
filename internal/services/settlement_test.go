package services

import (
	"testing"
	"time"

	"propfund/internal/models"
	"propfund/internal/testutil"
)

func TestCompleteRaise(t *testing.T) {
	t.Run("pays_treasury_and_owner", func(t *testing.T) {
		h := newLedgerHarness(t)
		cfg := h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.buy(h.fundedInvestor(10000), p.ID, 400)
		h.buy(h.fundedInvestor(10000), p.ID, 200)

		d := h.complete(p.ID)

		if d.TreasuryPlatform != 180 || d.TreasuryOwnerFee != 0 || d.Owner != 6000 || d.Referral != 0 {
			t.Errorf("unexpected disbursement: %+v", d)
		}
		if got := h.balance(h.payment.ID, cfg.TreasuryAddress); got != 180 {
			t.Errorf("expected treasury 180, got %d", got)
		}
		if got := h.balance(h.payment.ID, p.OwnerPayoutAddress); got != 6000 {
			t.Errorf("expected owner 6000, got %d", got)
		}
		if got := h.balance(h.payment.ID, h.escrow); got != 0 {
			t.Errorf("expected escrow drained, holds %d", got)
		}
		if f := h.fees(p.ID); f.Total() != 0 {
			t.Errorf("expected zeroed accumulators, got %+v", f)
		}
		if !h.property(p.ID).IsCompleted {
			t.Error("expected property to be completed")
		}
	})

	t.Run("owner_fee_goes_to_treasury", func(t *testing.T) {
		h := newLedgerHarness(t)
		cfg := h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 500)
		h.buy(h.fundedInvestor(10000), p.ID, 400)
		h.buy(h.fundedInvestor(10000), p.ID, 200)

		d := h.complete(p.ID)

		if d.TreasuryOwnerFee != 300 || d.Owner != 5700 {
			t.Errorf("unexpected disbursement: %+v", d)
		}
		if got := h.balance(h.payment.ID, cfg.TreasuryAddress); got != 480 {
			t.Errorf("expected treasury 480, got %d", got)
		}
		if got := h.balance(h.payment.ID, p.OwnerPayoutAddress); got != 5700 {
			t.Errorf("expected owner 5700, got %d", got)
		}
	})

	t.Run("referral_carve_out", func(t *testing.T) {
		h := newLedgerHarness(t)
		cfg := h.initPlatform(300, 100)
		p := h.openProperty(1000, 10, 5000, 0)
		ref := testutil.CreateTestReferrer(t, h.db)
		_, err := h.properties.BuyTokens(h.ctx, h.fundedInvestor(10000), "", p.ID, 400, ref.Address)
		testutil.AssertNoError(t, err)
		h.buy(h.fundedInvestor(10000), p.ID, 200)

		d := h.complete(p.ID)

		if d.TreasuryPlatform != 140 || d.Referral != 40 {
			t.Errorf("unexpected disbursement: %+v", d)
		}
		if got := h.balance(h.payment.ID, cfg.TreasuryAddress); got != 140 {
			t.Errorf("expected treasury 140, got %d", got)
		}
		if got := h.balance(h.payment.ID, h.vault); got != 40 {
			t.Errorf("expected vault 40, got %d", got)
		}
	})

	t.Run("off_ledger_counts_toward_threshold", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		_, err := h.properties.AdminBuyTokens(h.ctx, h.admin, p.ID, testutil.NewAddress("wire"), 500)
		testutil.AssertNoError(t, err)

		d := h.complete(p.ID)
		if d.TreasuryPlatform != 0 || d.Owner != 0 {
			t.Errorf("expected nothing to pay, got %+v", d)
		}
	})

	t.Run("threshold_not_met", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.buy(h.fundedInvestor(10000), p.ID, 499)

		_, err := h.properties.CompleteRaise(h.ctx, h.admin, p.ID)
		testutil.AssertAppError(t, err, "THRESHOLD_NOT_MET")
	})

	t.Run("twice", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.buy(h.fundedInvestor(10000), p.ID, 500)
		h.complete(p.ID)

		_, err := h.properties.CompleteRaise(h.ctx, h.admin, p.ID)
		testutil.AssertAppError(t, err, "ALREADY_DONE")
	})

	t.Run("after_deadline", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.buy(h.fundedInvestor(10000), p.ID, 500)
		h.advance(60 * 24 * time.Hour)

		h.complete(p.ID)
	})

	t.Run("not_approved", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.createProperty(1000, 10, 5000, 0)

		_, err := h.properties.CompleteRaise(h.ctx, h.admin, p.ID)
		testutil.AssertAppError(t, err, "PROPERTY_NOT_APPROVED")
	})

	t.Run("closes_the_raise", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 500)
		h.complete(p.ID)

		_, err := h.properties.BuyTokens(h.ctx, investor, "", p.ID, 10, "")
		testutil.AssertAppError(t, err, "RAISE_COMPLETED")
	})
}

func TestRecoverFundsInvested(t *testing.T) {
	t.Run("failed_raise", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 100)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 300)
		h.advance(31 * 24 * time.Hour)

		refund, err := h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertNoError(t, err)

		if refund != 3090 {
			t.Errorf("expected refund 3090, got %d", refund)
		}
		if got := h.balance(h.payment.ID, investor); got != 10000 {
			t.Errorf("expected investor made whole, balance %d", got)
		}
		if got := h.balance(h.payment.ID, h.escrow); got != 0 {
			t.Errorf("expected escrow empty, holds %d", got)
		}
		if f := h.fees(p.ID); f.Total() != 0 {
			t.Errorf("expected accumulators discarded, got %+v", f)
		}

		_, err = h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertAppError(t, err, "NOTHING_TO_RECOVER")
	})

	t.Run("canceled_above_threshold", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		// 6000 raised against a 5000 threshold; a canceled raise can never complete.
		h.buy(investor, p.ID, 600)
		_, err := h.properties.CancelProperty(h.ctx, h.admin, p.ID)
		testutil.AssertNoError(t, err)

		refund, err := h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertNoError(t, err)
		if refund != 6180 {
			t.Errorf("expected refund 6180, got %d", refund)
		}
	})

	t.Run("withdraws_referral_credit", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 100)
		p := h.openProperty(1000, 10, 5000, 0)
		ref := testutil.CreateTestReferrer(t, h.db)
		first := h.fundedInvestor(10000)
		second := h.fundedInvestor(10000)
		_, err := h.properties.BuyTokens(h.ctx, first, "", p.ID, 400, ref.Address)
		testutil.AssertNoError(t, err)
		_, err = h.properties.BuyTokens(h.ctx, second, "", p.ID, 200, ref.Address)
		testutil.AssertNoError(t, err)
		_, err = h.properties.CancelProperty(h.ctx, h.admin, p.ID)
		testutil.AssertNoError(t, err)

		refund, err := h.properties.RecoverFundsInvested(h.ctx, first, p.ID)
		testutil.AssertNoError(t, err)
		if refund != 4120 {
			t.Errorf("expected refund 4120, got %d", refund)
		}

		details, err := h.referrals.GetReferrerDetails(nil, ref.Address)
		testutil.AssertNoError(t, err)
		if details.Revenue != 20 || details.ReferralCount != 1 {
			t.Errorf("expected only the second referral to remain, got %+v", details)
		}
		if f := h.fees(p.ID); f.ReferralFeeAccrued != 20 {
			t.Errorf("expected accrued referral fee 20, got %d", f.ReferralFeeAccrued)
		}
		var rewards int64
		h.db.Model(&models.ReferralReward{}).Where("property_id = ?", p.ID).Count(&rewards)
		if rewards != 1 {
			t.Errorf("expected 1 reward left on the property, got %d", rewards)
		}
	})

	t.Run("raise_active", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 300)

		_, err := h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertAppError(t, err, "RAISE_ACTIVE")
	})

	t.Run("threshold_met", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 500)
		h.advance(31 * 24 * time.Hour)

		_, err := h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertAppError(t, err, "THRESHOLD_MET")
	})

	t.Run("completed", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 500)
		h.complete(p.ID)

		_, err := h.properties.RecoverFundsInvested(h.ctx, investor, p.ID)
		testutil.AssertAppError(t, err, "RAISE_COMPLETED")
	})

	t.Run("no_entry", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.advance(31 * 24 * time.Hour)

		_, err := h.properties.RecoverFundsInvested(h.ctx, testutil.NewAddress("nobody"), p.ID)
		testutil.AssertAppError(t, err, "NOTHING_TO_RECOVER")
	})
}

func TestGetInvestmentTokens(t *testing.T) {
	t.Run("delivers_once", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 500)
		h.complete(p.ID)

		delivered, err := h.properties.GetInvestmentTokens(h.ctx, investor, p.ID)
		testutil.AssertNoError(t, err)
		if delivered != 500 {
			t.Errorf("expected 500 shares delivered, got %d", delivered)
		}
		if got := h.balance(p.ShareAssetID, investor); got != 500 {
			t.Errorf("expected investor to hold 500 shares, got %d", got)
		}
		if got := h.balance(p.ShareAssetID, h.escrow); got != 500 {
			t.Errorf("expected 500 unsold shares in escrow, got %d", got)
		}

		again, err := h.properties.GetInvestmentTokens(h.ctx, investor, p.ID)
		testutil.AssertNoError(t, err)
		if again != 0 {
			t.Errorf("expected second claim to deliver nothing, got %d", again)
		}
		if got := h.balance(p.ShareAssetID, investor); got != 500 {
			t.Errorf("expected balance unchanged, got %d", got)
		}
	})

	t.Run("before_completion", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		investor := h.fundedInvestor(10000)
		h.buy(investor, p.ID, 500)

		_, err := h.properties.GetInvestmentTokens(h.ctx, investor, p.ID)
		testutil.AssertAppError(t, err, "RAISE_NOT_COMPLETED")
	})

	t.Run("off_ledger_buyer", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		buyer := testutil.NewAddress("wire")
		_, err := h.properties.AdminBuyTokens(h.ctx, h.admin, p.ID, buyer, 500)
		testutil.AssertNoError(t, err)
		h.complete(p.ID)

		delivered, err := h.properties.GetInvestmentTokens(h.ctx, buyer, p.ID)
		testutil.AssertNoError(t, err)
		if delivered != 500 {
			t.Errorf("expected 500 shares delivered, got %d", delivered)
		}
	})
}
