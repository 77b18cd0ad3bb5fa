package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"propfund/internal/events"
	"propfund/internal/models"
	"propfund/internal/testutil"
)

// ledgerHarness wires the ledger services against an in-memory database
// and a bolt journal, with a controllable clock.
type ledgerHarness struct {
	t          *testing.T
	ctx        context.Context
	db         *gorm.DB
	lock       *OperationLock
	access     AccessServicer
	assets     AssetLedgerServicer
	referrals  ReferralServicer
	platform   PlatformServicer
	dividends  DividendServicer
	properties PropertyServicer
	journal    *events.BoltJournal

	escrow  string
	vault   string
	admin   string
	payment *models.Asset
	revenue *models.Asset
	clock   time.Time
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	t.Helper()
	db := testutil.SetupTestDB(t)

	journal, err := events.OpenBoltJournal(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	t.Cleanup(func() {
		_ = journal.Close()
		testutil.TeardownTestDB(t, db)
	})

	h := &ledgerHarness{
		t:       t,
		ctx:     context.Background(),
		db:      db,
		lock:    NewOperationLock(),
		journal: journal,
		escrow:  testutil.NewAddress("escrow"),
		vault:   testutil.NewAddress("vault"),
		clock:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	h.access = NewAccessService(db, h.lock, h.escrow, h.vault)
	h.assets = NewAssetLedgerService(db)
	h.referrals = NewReferralService(db, h.lock, h.access, h.vault)
	h.platform = NewPlatformService(db, h.lock, h.access, h.assets)

	dividends := NewDividendService(db, h.lock, journal, h.access, h.assets, h.platform, h.escrow).(*dividendService)
	dividends.now = h.now
	h.dividends = dividends

	properties := NewPropertyService(db, PropertyDeps{
		Lock:         h.lock,
		Access:       h.access,
		Assets:       h.assets,
		Referrals:    h.referrals,
		Platform:     h.platform,
		Dividends:    h.dividends,
		Journal:      journal,
		Escrow:       h.escrow,
		MaxExtension: 30 * 24 * time.Hour,
	}).(*propertyService)
	properties.now = h.now
	h.properties = properties

	h.admin = testutil.CreateTestAdmin(t, db)
	h.payment = testutil.CreateTestAsset(t, db, models.AssetKindPayment)
	h.revenue = testutil.CreateTestAsset(t, db, models.AssetKindRevenue)
	testutil.WhitelistTestAsset(t, db, h.payment.ID)
	testutil.WhitelistTestAsset(t, db, h.revenue.ID)
	return h
}

func (h *ledgerHarness) now() time.Time { return h.clock }

func (h *ledgerHarness) advance(d time.Duration) { h.clock = h.clock.Add(d) }

// initPlatform stores an initialized configuration with the given fee rates.
func (h *ledgerHarness) initPlatform(platformBps, referralBps int64) *models.GlobalConfig {
	h.t.Helper()
	return testutil.InitTestPlatform(h.t, h.db, models.GlobalConfig{
		PlatformFeeBasisPoints:        platformBps,
		ReferralFeeBasisPoints:        referralBps,
		MaxReferralsPerReferrer:       10,
		MaxReferralRevenuePerReferrer: 1_000_000,
	})
}

func (h *ledgerHarness) createProperty(shares, price, threshold, ownerBps int64) *models.Property {
	h.t.Helper()
	p, err := h.properties.CreateProperty(h.ctx, h.admin, CreatePropertyParams{
		SharesForSale:       shares,
		OwnerFeeBasisPoints: ownerBps,
		PricePerShare:       price,
		ThresholdValue:      threshold,
		PaymentAssetID:      h.payment.ID,
		RevenueAssetID:      h.revenue.ID,
		OwnerPayoutAddress:  testutil.NewAddress("owner"),
	})
	if err != nil {
		h.t.Fatalf("failed to create property: %v", err)
	}
	return p
}

// openProperty creates and approves a property with a 30 day raise.
func (h *ledgerHarness) openProperty(shares, price, threshold, ownerBps int64) *models.Property {
	h.t.Helper()
	p := h.createProperty(shares, price, threshold, ownerBps)
	p, err := h.properties.ApproveProperty(h.ctx, h.admin, p.ID, h.clock.Add(30*24*time.Hour))
	if err != nil {
		h.t.Fatalf("failed to approve property: %v", err)
	}
	return p
}

// fundedInvestor creates a KYC approved investor holding amount of the
// payment asset, all of it approved for the escrow to pull.
func (h *ledgerHarness) fundedInvestor(amount int64) string {
	h.t.Helper()
	investor := testutil.CreateTestInvestor(h.t, h.db)
	testutil.FundTestAddress(h.t, h.db, h.payment.ID, investor, amount)
	testutil.ApproveTestSpend(h.t, h.db, h.payment.ID, investor, h.escrow, amount)
	return investor
}

func (h *ledgerHarness) buy(investor string, id uint, shares int64) *models.InvestorLedger {
	h.t.Helper()
	entry, err := h.properties.BuyTokens(h.ctx, investor, "", id, shares, "")
	if err != nil {
		h.t.Fatalf("failed to buy tokens: %v", err)
	}
	return entry
}

func (h *ledgerHarness) complete(id uint) *Disbursement {
	h.t.Helper()
	d, err := h.properties.CompleteRaise(h.ctx, h.admin, id)
	if err != nil {
		h.t.Fatalf("failed to complete raise: %v", err)
	}
	return d
}

func (h *ledgerHarness) fees(id uint) *models.FeeAccumulator {
	h.t.Helper()
	f, err := h.properties.GetFees(h.ctx, id)
	if err != nil {
		h.t.Fatalf("failed to load fees: %v", err)
	}
	return f
}

func (h *ledgerHarness) property(id uint) *models.Property {
	h.t.Helper()
	p, err := h.properties.GetProperty(h.ctx, id)
	if err != nil {
		h.t.Fatalf("failed to load property: %v", err)
	}
	return p
}

func (h *ledgerHarness) balance(assetID, holder string) int64 {
	h.t.Helper()
	return testutil.BalanceOf(h.t, h.db, assetID, holder)
}

func (h *ledgerHarness) eventTypes(id uint) []events.Type {
	h.t.Helper()
	evts, err := h.properties.ListEvents(h.ctx, id, 0)
	if err != nil {
		h.t.Fatalf("failed to list events: %v", err)
	}
	out := make([]events.Type, 0, len(evts))
	for _, e := range evts {
		out = append(out, e.Type)
	}
	return out
}
