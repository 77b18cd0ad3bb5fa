package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"propfund/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewAddress returns a unique ledger address with the given prefix.
func NewAddress(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, nextID())
}

// CreateTestUser creates a user with a hashed password, unique email and address.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Address:  NewAddress("user"),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// GrantTestAccess stores the given capabilities for grant.Address.
func GrantTestAccess(t *testing.T, db *gorm.DB, grant models.AccessGrant) *models.AccessGrant {
	t.Helper()
	if err := db.Save(&grant).Error; err != nil {
		t.Fatalf("failed to grant test access: %v", err)
	}
	return &grant
}

// CreateTestAdmin creates an address holding every capability.
func CreateTestAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()
	addr := NewAddress("admin")
	GrantTestAccess(t, db, models.AccessGrant{Address: addr, IsAdmin: true, IsFundsManager: true, KYCApproved: true})
	return addr
}

// CreateTestInvestor creates a KYC approved address.
func CreateTestInvestor(t *testing.T, db *gorm.DB) string {
	t.Helper()
	addr := NewAddress("investor")
	GrantTestAccess(t, db, models.AccessGrant{Address: addr, KYCApproved: true})
	return addr
}

// CreateTestAsset registers an asset with zero supply.
func CreateTestAsset(t *testing.T, db *gorm.DB, kind models.AssetKind) *models.Asset {
	t.Helper()
	asset := &models.Asset{Symbol: fmt.Sprintf("%s%d", kind, nextID()), Kind: kind}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// FundTestAddress mints amount of an asset to holder.
func FundTestAddress(t *testing.T, db *gorm.DB, assetID, holder string, amount int64) {
	t.Helper()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Asset{}).Where("id = ?", assetID).
			Update("total_supply", gorm.Expr("total_supply + ?", amount)).Error; err != nil {
			return err
		}
		var bal models.AssetBalance
		if err := tx.Where(models.AssetBalance{AssetID: assetID, Holder: holder}).FirstOrInit(&bal).Error; err != nil {
			return err
		}
		bal.Amount += amount
		return tx.Save(&bal).Error
	})
	if err != nil {
		t.Fatalf("failed to fund test address: %v", err)
	}
}

// ApproveTestSpend sets spender's allowance over owner's balance.
func ApproveTestSpend(t *testing.T, db *gorm.DB, assetID, owner, spender string, amount int64) {
	t.Helper()
	allowance := &models.AssetAllowance{AssetID: assetID, Owner: owner, Spender: spender, Amount: amount}
	if err := db.Save(allowance).Error; err != nil {
		t.Fatalf("failed to approve test spend: %v", err)
	}
}

// BalanceOf reads a holder's balance directly.
func BalanceOf(t *testing.T, db *gorm.DB, assetID, holder string) int64 {
	t.Helper()
	var bal models.AssetBalance
	err := db.Where("asset_id = ? AND holder = ?", assetID, holder).First(&bal).Error
	if err == gorm.ErrRecordNotFound {
		return 0
	}
	if err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}
	return bal.Amount
}

// InitTestPlatform stores an initialized configuration.
func InitTestPlatform(t *testing.T, db *gorm.DB, cfg models.GlobalConfig) *models.GlobalConfig {
	t.Helper()
	cfg.ID = models.GlobalConfigID
	cfg.Initialized = true
	if cfg.FeeCapBasisPoints == 0 {
		cfg.FeeCapBasisPoints = 10000
	}
	if cfg.MinRevenueDeposit == 0 {
		cfg.MinRevenueDeposit = 1000
	}
	if cfg.TreasuryAddress == "" {
		cfg.TreasuryAddress = NewAddress("treasury")
	}
	if err := db.Save(&cfg).Error; err != nil {
		t.Fatalf("failed to init test platform: %v", err)
	}
	return &cfg
}

// WhitelistTestAsset adds an asset to the whitelist.
func WhitelistTestAsset(t *testing.T, db *gorm.DB, assetID string) {
	t.Helper()
	if err := db.Create(&models.WhitelistedAsset{AssetID: assetID}).Error; err != nil {
		t.Fatalf("failed to whitelist test asset: %v", err)
	}
}

// CreateTestReferrer registers an active referrer.
func CreateTestReferrer(t *testing.T, db *gorm.DB) *models.Referrer {
	t.Helper()
	ref := &models.Referrer{Address: NewAddress("referrer"), IsActive: true}
	if err := db.Create(ref).Error; err != nil {
		t.Fatalf("failed to create test referrer: %v", err)
	}
	return ref
}
