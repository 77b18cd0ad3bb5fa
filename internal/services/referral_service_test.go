package services

import (
	"context"
	"testing"

	"propfund/internal/models"
	"propfund/internal/testutil"
)

func TestRegisterReferrer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
		admin := testutil.CreateTestAdmin(t, db)
		addr := testutil.NewAddress("partner")

		ref, err := svc.RegisterReferrer(context.Background(), admin, addr)
		testutil.AssertNoError(t, err)
		if !ref.IsActive || ref.ReferralCount != 0 || ref.Revenue != 0 {
			t.Errorf("unexpected new referrer: %+v", ref)
		}

		_, err = svc.RegisterReferrer(context.Background(), admin, addr)
		testutil.AssertAppError(t, err, "ALREADY_DONE")
	})

	t.Run("reactivates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
		admin := testutil.CreateTestAdmin(t, db)
		existing := testutil.CreateTestReferrer(t, db)
		db.Model(&models.Referrer{}).Where("address = ?", existing.Address).
			Updates(map[string]any{"is_active": false, "revenue": 70})

		ref, err := svc.RegisterReferrer(context.Background(), admin, existing.Address)
		testutil.AssertNoError(t, err)
		if !ref.IsActive || ref.Revenue != 70 {
			t.Errorf("expected reactivated referrer keeping revenue, got %+v", ref)
		}
	})

	t.Run("custody_address", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock, "vault"), "vault")

		_, err := svc.RegisterReferrer(context.Background(), testutil.CreateTestAdmin(t, db), "vault")
		testutil.AssertAppError(t, err, "RESERVED_ADDRESS")
	})

	t.Run("not_admin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")

		_, err := svc.RegisterReferrer(context.Background(), testutil.CreateTestInvestor(t, db), testutil.NewAddress("partner"))
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestAddRewards(t *testing.T) {
	t.Run("counts_new_beneficiaries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
		ref := testutil.CreateTestReferrer(t, db)
		alice, bob := testutil.NewAddress("alice"), testutil.NewAddress("bob")

		testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, alice, 1, 10))
		testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, alice, 2, 15))
		testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, bob, 1, 5))

		details, err := svc.GetReferrerDetails(nil, ref.Address)
		testutil.AssertNoError(t, err)
		if details.ReferralCount != 2 || details.Revenue != 30 {
			t.Errorf("expected 2 referrals and 30 revenue, got %+v", details)
		}
		var rewards int64
		db.Model(&models.ReferralReward{}).Where("referrer = ?", ref.Address).Count(&rewards)
		if rewards != 3 {
			t.Errorf("expected 3 reward rows, got %d", rewards)
		}
	})

	t.Run("unknown_referrer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")

		err := svc.AddRewards(nil, testutil.NewAddress("ghost"), testutil.NewAddress("alice"), 1, 10)
		testutil.AssertAppError(t, err, "REFERRER_NOT_FOUND")
	})

	t.Run("inactive_referrer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
		ref := testutil.CreateTestReferrer(t, db)
		db.Model(&models.Referrer{}).Where("address = ?", ref.Address).Update("is_active", false)

		err := svc.AddRewards(nil, ref.Address, testutil.NewAddress("alice"), 1, 10)
		testutil.AssertAppError(t, err, "REFERRER_INACTIVE")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		lock := NewOperationLock()
		svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
		ref := testutil.CreateTestReferrer(t, db)

		err := svc.AddRewards(nil, ref.Address, testutil.NewAddress("alice"), 1, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestReverseRewards(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	lock := NewOperationLock()
	svc := NewReferralService(db, lock, NewAccessService(db, lock), "vault")
	ref := testutil.CreateTestReferrer(t, db)
	alice, bob := testutil.NewAddress("alice"), testutil.NewAddress("bob")
	testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, alice, 1, 10))
	testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, alice, 2, 15))
	testutil.AssertNoError(t, svc.AddRewards(nil, ref.Address, bob, 1, 5))

	reversed, err := svc.ReverseRewards(nil, alice, 1)
	testutil.AssertNoError(t, err)
	if reversed != 10 {
		t.Errorf("expected 10 reversed, got %d", reversed)
	}
	details, err := svc.GetReferrerDetails(nil, ref.Address)
	testutil.AssertNoError(t, err)
	if details.ReferralCount != 2 || details.Revenue != 20 {
		t.Errorf("expected alice still counted through property 2, got %+v", details)
	}

	_, err = svc.ReverseRewards(nil, alice, 2)
	testutil.AssertNoError(t, err)
	details, err = svc.GetReferrerDetails(nil, ref.Address)
	testutil.AssertNoError(t, err)
	if details.ReferralCount != 1 || details.Revenue != 5 {
		t.Errorf("expected only bob left, got %+v", details)
	}

	reversed, err = svc.ReverseRewards(nil, alice, 2)
	testutil.AssertNoError(t, err)
	if reversed != 0 {
		t.Errorf("expected a second reversal to be a no-op, got %d", reversed)
	}
}

func TestHoldingAddress(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	lock := NewOperationLock()
	svc := NewReferralService(db, lock, NewAccessService(db, lock), "referral-vault")

	if got := svc.HoldingAddress(); got != "referral-vault" {
		t.Errorf("expected referral-vault, got %s", got)
	}
}
