package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"propfund/internal/events"
	"propfund/internal/models"
	"propfund/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, address, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// AccessServicer answers capability queries and manages grants.
// Query methods take the caller's transaction handle; a nil tx reads committed state.
type AccessServicer interface {
	GetGrant(tx *gorm.DB, address string) (*models.AccessGrant, error)
	IsPaused(tx *gorm.DB) (bool, error)
	SetGrant(ctx context.Context, actor string, update GrantUpdate) (*models.AccessGrant, error)
	SetPaused(ctx context.Context, actor string, paused bool) error
	Bootstrap(address string) error
	IsReserved(address string) bool
}

// GrantUpdate carries the capabilities to set on an address. Nil fields are left unchanged.
type GrantUpdate struct {
	Address        string
	IsAdmin        *bool
	IsFundsManager *bool
	KYCApproved    *bool
	Blacklisted    *bool
}

// AssetLedgerServicer is the fungible balance ledger. Every mutating call
// takes the caller's transaction handle so it rolls back with the operation.
type AssetLedgerServicer interface {
	RegisterAsset(tx *gorm.DB, symbol string, kind models.AssetKind, propertyID *uint) (*models.Asset, error)
	GetAsset(tx *gorm.DB, assetID string) (*models.Asset, error)
	Mint(tx *gorm.DB, assetID, to string, amount int64) error
	Approve(tx *gorm.DB, assetID, owner, spender string, amount int64) error
	Transfer(tx *gorm.DB, assetID, from, to string, amount int64) error
	TransferFrom(tx *gorm.DB, assetID, spender, from, to string, amount int64) error
	BalanceOf(tx *gorm.DB, assetID, holder string) (int64, error)
	Allowance(tx *gorm.DB, assetID, owner, spender string) (int64, error)
	TotalSupply(tx *gorm.DB, assetID string) (int64, error)
}

// AssetServicer is the caller-facing surface of the asset ledger.
type AssetServicer interface {
	CreateAsset(ctx context.Context, actor, symbol string, kind models.AssetKind) (*models.Asset, error)
	MintAsset(ctx context.Context, actor, assetID, to string, amount int64) error
	ApproveSpend(ctx context.Context, owner, assetID, spender string, amount int64) error
	Holding(ctx context.Context, assetID, holder string) (*AssetHolding, error)
}

// AssetHolding is a holder's balance of one asset and its escrow allowance.
type AssetHolding struct {
	AssetID         string `json:"asset_id"`
	Holder          string `json:"holder"`
	Balance         int64  `json:"balance"`
	EscrowAllowance int64  `json:"escrow_allowance"`
}

// ReferralServicer is the referral subsystem.
type ReferralServicer interface {
	RegisterReferrer(ctx context.Context, actor, address string) (*models.Referrer, error)
	GetReferrerDetails(tx *gorm.DB, address string) (*models.Referrer, error)
	AddRewards(tx *gorm.DB, referrer, beneficiary string, propertyID uint, amount int64) error
	ReverseRewards(tx *gorm.DB, beneficiary string, propertyID uint) (int64, error)
	HoldingAddress() string
}

// InitializeParams are the one-time platform settings.
type InitializeParams struct {
	TreasuryAddress               string
	PlatformFeeBasisPoints        int64
	ReferralFeeBasisPoints        int64
	MinInvestmentValue            int64
	MaxReferralsPerReferrer       int64
	MaxReferralRevenuePerReferrer int64
	FeeCapBasisPoints             int64
}

// PlatformServicer manages the global configuration and the asset whitelist.
type PlatformServicer interface {
	Initialize(ctx context.Context, actor string, params InitializeParams) (*models.GlobalConfig, error)
	GetConfig(tx *gorm.DB) (*models.GlobalConfig, error)
	SetPlatformFee(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error)
	SetReferralFee(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error)
	SetTreasury(ctx context.Context, actor, address string) (*models.GlobalConfig, error)
	SetMinInvestment(ctx context.Context, actor string, value int64) (*models.GlobalConfig, error)
	SetReferralCaps(ctx context.Context, actor string, maxReferrals, maxRevenue int64) (*models.GlobalConfig, error)
	SetWhitelisted(ctx context.Context, actor, assetID string, whitelisted bool) error
	IsWhitelisted(tx *gorm.DB, assetID string) (bool, error)
}

// CreatePropertyParams describes a new raise.
type CreatePropertyParams struct {
	SharesForSale       int64
	OwnerFeeBasisPoints int64
	PricePerShare       int64
	ThresholdValue      int64
	PaymentAssetID      string
	RevenueAssetID      string
	OwnerPayoutAddress  string
	Metadata            string
}

// Disbursement is what a successful completion paid out.
type Disbursement struct {
	PropertyID       uint  `json:"property_id"`
	TreasuryPlatform int64 `json:"treasury_platform"`
	TreasuryOwnerFee int64 `json:"treasury_owner_fee"`
	Owner            int64 `json:"owner"`
	Referral         int64 `json:"referral"`
}

// PropertyServicer is the property ledger and fee engine.
type PropertyServicer interface {
	CreateProperty(ctx context.Context, caller string, params CreatePropertyParams) (*models.Property, error)
	ApproveProperty(ctx context.Context, caller string, id uint, deadline time.Time) (*models.Property, error)
	CancelProperty(ctx context.Context, caller string, id uint) (*models.Property, error)
	ExtendRaise(ctx context.Context, caller string, id uint, newDeadline time.Time) (*models.Property, error)
	SetOwnerFee(ctx context.Context, caller string, id uint, bps int64) (*models.FeeAccumulator, error)

	BuyTokens(ctx context.Context, caller, beneficiary string, id uint, shareAmount int64, referrer string) (*models.InvestorLedger, error)
	AdminBuyTokens(ctx context.Context, caller string, id uint, buyer string, shareAmount int64) (*models.InvestorLedger, error)
	RevertInvestment(ctx context.Context, caller, buyer string, id uint) (int64, error)

	CompleteRaise(ctx context.Context, caller string, id uint) (*Disbursement, error)
	RecoverFundsInvested(ctx context.Context, user string, id uint) (int64, error)
	GetInvestmentTokens(ctx context.Context, user string, id uint) (int64, error)

	GetProperty(ctx context.Context, id uint) (*models.Property, error)
	ListProperties(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error)
	GetFees(ctx context.Context, id uint) (*models.FeeAccumulator, error)
	GetLedgerEntry(ctx context.Context, id uint, investor string) (*models.InvestorLedger, error)
	ListLedger(ctx context.Context, id uint, page pagination.PageRequest) (*pagination.PageResponse[models.InvestorLedger], error)
	ListEvents(ctx context.Context, id uint, limit int) ([]events.Event, error)
}

// DividendServicer is the revenue accrual engine.
type DividendServicer interface {
	DistributeRevenue(ctx context.Context, caller string, id uint, amount int64) (*models.DividendPool, error)
	ClaimRevenue(ctx context.Context, holder string, id uint) (int64, error)
	PendingRevenue(ctx context.Context, holder string, id uint) (int64, error)
	TransferShares(ctx context.Context, from, to string, id uint, amount int64) error
	GetPool(ctx context.Context, id uint) (*models.DividendPool, error)

	// CreatePool starts accrual for a new share asset.
	CreatePool(tx *gorm.DB, property *models.Property) error
	// MoveShares settles both holders and then moves shares. Escrow is never settled.
	MoveShares(tx *gorm.DB, property *models.Property, from, to string, amount int64) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actor, action, resourceType, resourceID, ipAddress string, changes map[string]any)
	List(ctx context.Context, caller string, filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

// AuditFilter narrows an audit listing. Empty fields match everything.
type AuditFilter struct {
	Actor        string
	Action       string
	ResourceType string
	ResourceID   string
}
