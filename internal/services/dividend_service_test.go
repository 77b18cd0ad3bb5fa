package services

import (
	"testing"

	"propfund/internal/models"
	"propfund/internal/testutil"
)

// completedRaise returns a completed 1000 share property in which a holds
// 400 delivered shares and b holds 200.
func completedRaise(h *ledgerHarness) (p *models.Property, a, b string) {
	h.t.Helper()
	h.initPlatform(300, 0)
	p = h.openProperty(1000, 10, 5000, 0)
	a = h.fundedInvestor(10000)
	b = h.fundedInvestor(10000)
	h.buy(a, p.ID, 400)
	h.buy(b, p.ID, 200)
	h.complete(p.ID)
	for _, holder := range []string{a, b} {
		if _, err := h.properties.GetInvestmentTokens(h.ctx, holder, p.ID); err != nil {
			h.t.Fatalf("failed to claim shares: %v", err)
		}
	}
	return p, a, b
}

func (h *ledgerHarness) revenuePayer(amount int64) string {
	h.t.Helper()
	payer := testutil.NewAddress("tenant")
	testutil.FundTestAddress(h.t, h.db, h.revenue.ID, payer, amount)
	testutil.ApproveTestSpend(h.t, h.db, h.revenue.ID, payer, h.escrow, amount)
	return payer
}

func (h *ledgerHarness) distribute(id uint, amount int64) *models.DividendPool {
	h.t.Helper()
	pool, err := h.dividends.DistributeRevenue(h.ctx, h.revenuePayer(amount), id, amount)
	if err != nil {
		h.t.Fatalf("failed to distribute revenue: %v", err)
	}
	return pool
}

func (h *ledgerHarness) pending(holder string, id uint) int64 {
	h.t.Helper()
	owed, err := h.dividends.PendingRevenue(h.ctx, holder, id)
	if err != nil {
		h.t.Fatalf("failed to read pending revenue: %v", err)
	}
	return owed
}

func TestDistributeRevenue(t *testing.T) {
	t.Run("pro_rata", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, b := completedRaise(h)

		pool := h.distribute(p.ID, 6000)

		if pool.TotalDeposited != 6000 {
			t.Errorf("expected 6000 deposited, got %d", pool.TotalDeposited)
		}
		if got := h.pending(a, p.ID); got != 4000 {
			t.Errorf("expected a owed 4000, got %d", got)
		}
		if got := h.pending(b, p.ID); got != 2000 {
			t.Errorf("expected b owed 2000, got %d", got)
		}
		if got := h.pending(h.escrow, p.ID); got != 0 {
			t.Errorf("expected escrow owed nothing, got %d", got)
		}
		if got := h.balance(h.revenue.ID, h.escrow); got != 6000 {
			t.Errorf("expected escrow to hold 6000 revenue, got %d", got)
		}
	})

	t.Run("undelivered_shares_do_not_accrue", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		a := h.fundedInvestor(10000)
		b := h.fundedInvestor(10000)
		h.buy(a, p.ID, 400)
		h.buy(b, p.ID, 200)
		h.complete(p.ID)
		_, err := h.properties.GetInvestmentTokens(h.ctx, a, p.ID)
		testutil.AssertNoError(t, err)

		h.distribute(p.ID, 4000)

		if got := h.pending(a, p.ID); got != 4000 {
			t.Errorf("expected a owed the full deposit, got %d", got)
		}
		delivered, err := h.properties.GetInvestmentTokens(h.ctx, b, p.ID)
		testutil.AssertNoError(t, err)
		if delivered != 200 {
			t.Fatalf("expected 200 shares delivered, got %d", delivered)
		}
		if got := h.pending(b, p.ID); got != 0 {
			t.Errorf("expected late claimer owed nothing, got %d", got)
		}
	})

	t.Run("truncation_dust_stays_in_escrow", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, b := completedRaise(h)

		h.distribute(p.ID, 1000)

		owedA, owedB := h.pending(a, p.ID), h.pending(b, p.ID)
		if owedA != 666 || owedB != 333 {
			t.Errorf("expected 666 and 333, got %d and %d", owedA, owedB)
		}
		if owedA+owedB > 1000 {
			t.Errorf("owed %d exceeds deposit", owedA+owedB)
		}
	})

	t.Run("before_completion", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)

		_, err := h.dividends.DistributeRevenue(h.ctx, h.revenuePayer(5000), p.ID, 5000)
		testutil.AssertAppError(t, err, "RAISE_NOT_COMPLETED")
	})

	t.Run("below_minimum_deposit", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, _, _ := completedRaise(h)

		_, err := h.dividends.DistributeRevenue(h.ctx, h.revenuePayer(999), p.ID, 999)
		testutil.AssertAppError(t, err, "DEPOSIT_TOO_SMALL")
	})

	t.Run("no_circulating_supply", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)
		h.buy(h.fundedInvestor(10000), p.ID, 500)
		h.complete(p.ID)

		_, err := h.dividends.DistributeRevenue(h.ctx, h.revenuePayer(5000), p.ID, 5000)
		testutil.AssertAppError(t, err, "NO_CIRCULATING_SUPPLY")
	})

	t.Run("allowance_exceeded", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, _ := completedRaise(h)
		payer := testutil.NewAddress("tenant")
		testutil.FundTestAddress(t, h.db, h.revenue.ID, payer, 5000)

		_, err := h.dividends.DistributeRevenue(h.ctx, payer, p.ID, 5000)
		testutil.AssertAppError(t, err, "ALLOWANCE_EXCEEDED")

		if got := h.pending(a, p.ID); got != 0 {
			t.Errorf("expected nothing accrued, got %d", got)
		}
	})
}

func TestClaimRevenue(t *testing.T) {
	t.Run("pays_and_resets", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, _ := completedRaise(h)
		h.distribute(p.ID, 6000)

		paid, err := h.dividends.ClaimRevenue(h.ctx, a, p.ID)
		testutil.AssertNoError(t, err)

		if paid != 4000 {
			t.Errorf("expected 4000 paid, got %d", paid)
		}
		if got := h.balance(h.revenue.ID, a); got != 4000 {
			t.Errorf("expected a to hold 4000 revenue, got %d", got)
		}
		if got := h.pending(a, p.ID); got != 0 {
			t.Errorf("expected nothing pending after claim, got %d", got)
		}

		again, err := h.dividends.ClaimRevenue(h.ctx, a, p.ID)
		testutil.AssertNoError(t, err)
		if again != 0 {
			t.Errorf("expected second claim to pay nothing, got %d", again)
		}

		pool, err := h.dividends.GetPool(h.ctx, p.ID)
		testutil.AssertNoError(t, err)
		if pool.TotalClaimed != 4000 {
			t.Errorf("expected 4000 claimed from pool, got %d", pool.TotalClaimed)
		}
	})

	t.Run("accumulates_across_deposits", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, _, b := completedRaise(h)
		h.distribute(p.ID, 6000)
		h.distribute(p.ID, 3000)

		paid, err := h.dividends.ClaimRevenue(h.ctx, b, p.ID)
		testutil.AssertNoError(t, err)
		if paid != 3000 {
			t.Errorf("expected 3000 paid, got %d", paid)
		}
	})

	t.Run("non_holder", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, _, _ := completedRaise(h)
		h.distribute(p.ID, 6000)

		paid, err := h.dividends.ClaimRevenue(h.ctx, testutil.NewAddress("nobody"), p.ID)
		testutil.AssertNoError(t, err)
		if paid != 0 {
			t.Errorf("expected nothing paid, got %d", paid)
		}
	})
}

func TestTransferShares(t *testing.T) {
	t.Run("settles_both_sides", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, b := completedRaise(h)
		c := testutil.NewAddress("buyer")
		h.distribute(p.ID, 6000)

		testutil.AssertNoError(t, h.dividends.TransferShares(h.ctx, a, c, p.ID, 100))

		if got := h.balance(h.revenue.ID, a); got != 4000 {
			t.Errorf("expected a settled with 4000, got %d", got)
		}
		if got := h.pending(c, p.ID); got != 0 {
			t.Errorf("expected new holder owed nothing, got %d", got)
		}

		h.distribute(p.ID, 6000)

		if got := h.pending(a, p.ID); got != 3000 {
			t.Errorf("expected a owed 3000, got %d", got)
		}
		if got := h.pending(b, p.ID); got != 4000 {
			t.Errorf("expected b owed 4000, got %d", got)
		}
		if got := h.pending(c, p.ID); got != 1000 {
			t.Errorf("expected c owed 1000, got %d", got)
		}
	})

	t.Run("invalid_recipient", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, _ := completedRaise(h)

		for _, to := range []string{"", a, h.escrow} {
			err := h.dividends.TransferShares(h.ctx, a, to, p.ID, 10)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("from_escrow", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, _ := completedRaise(h)
		before := h.balance(p.ShareAssetID, h.escrow)

		err := h.dividends.TransferShares(h.ctx, h.escrow, a, p.ID, 100)
		testutil.AssertAppError(t, err, "RESERVED_ADDRESS")
		if got := h.balance(p.ShareAssetID, h.escrow); got != before {
			t.Errorf("expected escrow untouched at %d, got %d", before, got)
		}
	})

	t.Run("insufficient_shares", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, _, b := completedRaise(h)

		err := h.dividends.TransferShares(h.ctx, b, testutil.NewAddress("buyer"), p.ID, 201)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")
	})

	t.Run("blacklisted_recipient", func(t *testing.T) {
		h := newLedgerHarness(t)
		p, a, _ := completedRaise(h)
		banned := testutil.NewAddress("banned")
		testutil.GrantTestAccess(t, h.db, models.AccessGrant{Address: banned, Blacklisted: true})

		err := h.dividends.TransferShares(h.ctx, a, banned, p.ID, 10)
		testutil.AssertAppError(t, err, "BLACKLISTED")
	})

	t.Run("before_completion", func(t *testing.T) {
		h := newLedgerHarness(t)
		h.initPlatform(300, 0)
		p := h.openProperty(1000, 10, 5000, 0)

		err := h.dividends.TransferShares(h.ctx, h.admin, testutil.NewAddress("buyer"), p.ID, 10)
		testutil.AssertAppError(t, err, "RAISE_NOT_COMPLETED")
	})
}
