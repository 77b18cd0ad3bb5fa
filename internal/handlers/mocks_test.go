package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"propfund/internal/events"
	"propfund/internal/middleware"
	"propfund/internal/models"
	"propfund/internal/pagination"
	"propfund/internal/services"
	"propfund/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

const testAddress = "0xinvestor"

func injectUser(userID, address string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.AddressKey, address)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock audit service ---

type auditEntry struct {
	Actor      string
	Action     string
	ResourceID string
	Changes    map[string]any
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
	listFn  func(ctx context.Context, caller string, filter services.AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(actor, action, _, resourceID, _ string, changes map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{Actor: actor, Action: action, ResourceID: resourceID, Changes: changes})
}

func (m *mockAuditService) List(ctx context.Context, caller string, filter services.AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller, filter, page)
	}
	resp := pagination.NewPageResponse[models.AuditLog](nil, 1, 20, 0)
	return &resp, nil
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- mock user service ---

type mockUserService struct {
	createUserFn   func(email, password, address, firstName, lastName string) (*models.User, error)
	getUserByIDFn  func(id string) (*models.User, error)
	attemptLoginFn func(email, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(email, password, address, firstName, lastName string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, address, firstName, lastName)
	}
	return &models.User{Email: email, Address: address}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return &models.User{Email: email}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool {
	return true
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{Email: email}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock property service ---

type mockPropertyService struct {
	createPropertyFn   func(ctx context.Context, caller string, params services.CreatePropertyParams) (*models.Property, error)
	approvePropertyFn  func(ctx context.Context, caller string, id uint, deadline time.Time) (*models.Property, error)
	cancelPropertyFn   func(ctx context.Context, caller string, id uint) (*models.Property, error)
	extendRaiseFn      func(ctx context.Context, caller string, id uint, newDeadline time.Time) (*models.Property, error)
	setOwnerFeeFn      func(ctx context.Context, caller string, id uint, bps int64) (*models.FeeAccumulator, error)
	buyTokensFn        func(ctx context.Context, caller, beneficiary string, id uint, shares int64, referrer string) (*models.InvestorLedger, error)
	adminBuyTokensFn   func(ctx context.Context, caller string, id uint, buyer string, shares int64) (*models.InvestorLedger, error)
	revertInvestmentFn func(ctx context.Context, caller, buyer string, id uint) (int64, error)
	completeRaiseFn    func(ctx context.Context, caller string, id uint) (*services.Disbursement, error)
	recoverFundsFn     func(ctx context.Context, user string, id uint) (int64, error)
	claimSharesFn      func(ctx context.Context, user string, id uint) (int64, error)
	getPropertyFn      func(ctx context.Context, id uint) (*models.Property, error)
	listPropertiesFn   func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error)
	getFeesFn          func(ctx context.Context, id uint) (*models.FeeAccumulator, error)
	getLedgerEntryFn   func(ctx context.Context, id uint, investor string) (*models.InvestorLedger, error)
	listLedgerFn       func(ctx context.Context, id uint, page pagination.PageRequest) (*pagination.PageResponse[models.InvestorLedger], error)
	listEventsFn       func(ctx context.Context, id uint, limit int) ([]events.Event, error)
}

func (m *mockPropertyService) CreateProperty(ctx context.Context, caller string, params services.CreatePropertyParams) (*models.Property, error) {
	if m.createPropertyFn != nil {
		return m.createPropertyFn(ctx, caller, params)
	}
	return &models.Property{ID: 1}, nil
}

func (m *mockPropertyService) ApproveProperty(ctx context.Context, caller string, id uint, deadline time.Time) (*models.Property, error) {
	if m.approvePropertyFn != nil {
		return m.approvePropertyFn(ctx, caller, id, deadline)
	}
	return &models.Property{ID: id, IsApproved: true, RaiseDeadline: deadline}, nil
}

func (m *mockPropertyService) CancelProperty(ctx context.Context, caller string, id uint) (*models.Property, error) {
	if m.cancelPropertyFn != nil {
		return m.cancelPropertyFn(ctx, caller, id)
	}
	return &models.Property{ID: id, IsDead: true}, nil
}

func (m *mockPropertyService) ExtendRaise(ctx context.Context, caller string, id uint, newDeadline time.Time) (*models.Property, error) {
	if m.extendRaiseFn != nil {
		return m.extendRaiseFn(ctx, caller, id, newDeadline)
	}
	return &models.Property{ID: id, RaiseDeadline: newDeadline, WasExtended: true}, nil
}

func (m *mockPropertyService) SetOwnerFee(ctx context.Context, caller string, id uint, bps int64) (*models.FeeAccumulator, error) {
	if m.setOwnerFeeFn != nil {
		return m.setOwnerFeeFn(ctx, caller, id, bps)
	}
	return &models.FeeAccumulator{PropertyID: id, OwnerFeeBasisPoints: bps}, nil
}

func (m *mockPropertyService) BuyTokens(ctx context.Context, caller, beneficiary string, id uint, shares int64, referrer string) (*models.InvestorLedger, error) {
	if m.buyTokensFn != nil {
		return m.buyTokensFn(ctx, caller, beneficiary, id, shares, referrer)
	}
	return &models.InvestorLedger{PropertyID: id, Investor: beneficiary, SharesOwed: shares}, nil
}

func (m *mockPropertyService) AdminBuyTokens(ctx context.Context, caller string, id uint, buyer string, shares int64) (*models.InvestorLedger, error) {
	if m.adminBuyTokensFn != nil {
		return m.adminBuyTokensFn(ctx, caller, id, buyer, shares)
	}
	return &models.InvestorLedger{PropertyID: id, Investor: buyer, SharesOwed: shares}, nil
}

func (m *mockPropertyService) RevertInvestment(ctx context.Context, caller, buyer string, id uint) (int64, error) {
	if m.revertInvestmentFn != nil {
		return m.revertInvestmentFn(ctx, caller, buyer, id)
	}
	return 0, nil
}

func (m *mockPropertyService) CompleteRaise(ctx context.Context, caller string, id uint) (*services.Disbursement, error) {
	if m.completeRaiseFn != nil {
		return m.completeRaiseFn(ctx, caller, id)
	}
	return &services.Disbursement{PropertyID: id}, nil
}

func (m *mockPropertyService) RecoverFundsInvested(ctx context.Context, user string, id uint) (int64, error) {
	if m.recoverFundsFn != nil {
		return m.recoverFundsFn(ctx, user, id)
	}
	return 0, nil
}

func (m *mockPropertyService) GetInvestmentTokens(ctx context.Context, user string, id uint) (int64, error) {
	if m.claimSharesFn != nil {
		return m.claimSharesFn(ctx, user, id)
	}
	return 0, nil
}

func (m *mockPropertyService) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	if m.getPropertyFn != nil {
		return m.getPropertyFn(ctx, id)
	}
	return &models.Property{ID: id}, nil
}

func (m *mockPropertyService) ListProperties(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Property], error) {
	if m.listPropertiesFn != nil {
		return m.listPropertiesFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.Property{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPropertyService) GetFees(ctx context.Context, id uint) (*models.FeeAccumulator, error) {
	if m.getFeesFn != nil {
		return m.getFeesFn(ctx, id)
	}
	return &models.FeeAccumulator{PropertyID: id}, nil
}

func (m *mockPropertyService) GetLedgerEntry(ctx context.Context, id uint, investor string) (*models.InvestorLedger, error) {
	if m.getLedgerEntryFn != nil {
		return m.getLedgerEntryFn(ctx, id, investor)
	}
	return &models.InvestorLedger{PropertyID: id, Investor: investor}, nil
}

func (m *mockPropertyService) ListLedger(ctx context.Context, id uint, page pagination.PageRequest) (*pagination.PageResponse[models.InvestorLedger], error) {
	if m.listLedgerFn != nil {
		return m.listLedgerFn(ctx, id, page)
	}
	resp := pagination.NewPageResponse([]models.InvestorLedger{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPropertyService) ListEvents(ctx context.Context, id uint, limit int) ([]events.Event, error) {
	if m.listEventsFn != nil {
		return m.listEventsFn(ctx, id, limit)
	}
	return []events.Event{}, nil
}

var _ services.PropertyServicer = (*mockPropertyService)(nil)

// --- mock dividend service ---

type mockDividendService struct {
	distributeFn     func(ctx context.Context, caller string, id uint, amount int64) (*models.DividendPool, error)
	claimFn          func(ctx context.Context, holder string, id uint) (int64, error)
	pendingFn        func(ctx context.Context, holder string, id uint) (int64, error)
	transferSharesFn func(ctx context.Context, from, to string, id uint, amount int64) error
	getPoolFn        func(ctx context.Context, id uint) (*models.DividendPool, error)
}

func (m *mockDividendService) DistributeRevenue(ctx context.Context, caller string, id uint, amount int64) (*models.DividendPool, error) {
	if m.distributeFn != nil {
		return m.distributeFn(ctx, caller, id, amount)
	}
	return &models.DividendPool{PropertyID: id, TotalDeposited: amount}, nil
}

func (m *mockDividendService) ClaimRevenue(ctx context.Context, holder string, id uint) (int64, error) {
	if m.claimFn != nil {
		return m.claimFn(ctx, holder, id)
	}
	return 0, nil
}

func (m *mockDividendService) PendingRevenue(ctx context.Context, holder string, id uint) (int64, error) {
	if m.pendingFn != nil {
		return m.pendingFn(ctx, holder, id)
	}
	return 0, nil
}

func (m *mockDividendService) TransferShares(ctx context.Context, from, to string, id uint, amount int64) error {
	if m.transferSharesFn != nil {
		return m.transferSharesFn(ctx, from, to, id, amount)
	}
	return nil
}

func (m *mockDividendService) GetPool(ctx context.Context, id uint) (*models.DividendPool, error) {
	if m.getPoolFn != nil {
		return m.getPoolFn(ctx, id)
	}
	return &models.DividendPool{PropertyID: id}, nil
}

func (m *mockDividendService) CreatePool(_ *gorm.DB, _ *models.Property) error {
	return nil
}

func (m *mockDividendService) MoveShares(_ *gorm.DB, _ *models.Property, _, _ string, _ int64) error {
	return nil
}

var _ services.DividendServicer = (*mockDividendService)(nil)

// --- mock asset service ---

type mockAssetService struct {
	createAssetFn  func(ctx context.Context, actor, symbol string, kind models.AssetKind) (*models.Asset, error)
	mintAssetFn    func(ctx context.Context, actor, assetID, to string, amount int64) error
	approveSpendFn func(ctx context.Context, owner, assetID, spender string, amount int64) error
	holdingFn      func(ctx context.Context, assetID, holder string) (*services.AssetHolding, error)
}

func (m *mockAssetService) CreateAsset(ctx context.Context, actor, symbol string, kind models.AssetKind) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(ctx, actor, symbol, kind)
	}
	return &models.Asset{Base: models.Base{ID: "asset-1"}, Symbol: symbol, Kind: kind}, nil
}

func (m *mockAssetService) MintAsset(ctx context.Context, actor, assetID, to string, amount int64) error {
	if m.mintAssetFn != nil {
		return m.mintAssetFn(ctx, actor, assetID, to, amount)
	}
	return nil
}

func (m *mockAssetService) ApproveSpend(ctx context.Context, owner, assetID, spender string, amount int64) error {
	if m.approveSpendFn != nil {
		return m.approveSpendFn(ctx, owner, assetID, spender, amount)
	}
	return nil
}

func (m *mockAssetService) Holding(ctx context.Context, assetID, holder string) (*services.AssetHolding, error) {
	if m.holdingFn != nil {
		return m.holdingFn(ctx, assetID, holder)
	}
	return &services.AssetHolding{AssetID: assetID, Holder: holder}, nil
}

var _ services.AssetServicer = (*mockAssetService)(nil)

// --- mock platform service ---

type mockPlatformService struct {
	initializeFn     func(ctx context.Context, actor string, params services.InitializeParams) (*models.GlobalConfig, error)
	setPlatformFeeFn func(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error)
	setWhitelistedFn func(ctx context.Context, actor, assetID string, whitelisted bool) error
}

func (m *mockPlatformService) Initialize(ctx context.Context, actor string, params services.InitializeParams) (*models.GlobalConfig, error) {
	if m.initializeFn != nil {
		return m.initializeFn(ctx, actor, params)
	}
	return &models.GlobalConfig{Initialized: true}, nil
}

func (m *mockPlatformService) GetConfig(_ *gorm.DB) (*models.GlobalConfig, error) {
	return &models.GlobalConfig{}, nil
}

func (m *mockPlatformService) SetPlatformFee(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error) {
	if m.setPlatformFeeFn != nil {
		return m.setPlatformFeeFn(ctx, actor, bps)
	}
	return &models.GlobalConfig{PlatformFeeBasisPoints: bps}, nil
}

func (m *mockPlatformService) SetReferralFee(_ context.Context, _ string, bps int64) (*models.GlobalConfig, error) {
	return &models.GlobalConfig{ReferralFeeBasisPoints: bps}, nil
}

func (m *mockPlatformService) SetTreasury(_ context.Context, _, address string) (*models.GlobalConfig, error) {
	return &models.GlobalConfig{TreasuryAddress: address}, nil
}

func (m *mockPlatformService) SetMinInvestment(_ context.Context, _ string, value int64) (*models.GlobalConfig, error) {
	return &models.GlobalConfig{MinInvestmentValue: value}, nil
}

func (m *mockPlatformService) SetReferralCaps(_ context.Context, _ string, maxReferrals, maxRevenue int64) (*models.GlobalConfig, error) {
	return &models.GlobalConfig{MaxReferralsPerReferrer: maxReferrals, MaxReferralRevenuePerReferrer: maxRevenue}, nil
}

func (m *mockPlatformService) SetWhitelisted(ctx context.Context, actor, assetID string, whitelisted bool) error {
	if m.setWhitelistedFn != nil {
		return m.setWhitelistedFn(ctx, actor, assetID, whitelisted)
	}
	return nil
}

func (m *mockPlatformService) IsWhitelisted(_ *gorm.DB, _ string) (bool, error) {
	return true, nil
}

var _ services.PlatformServicer = (*mockPlatformService)(nil)

// --- mock access service ---

type mockAccessService struct {
	setGrantFn  func(ctx context.Context, actor string, update services.GrantUpdate) (*models.AccessGrant, error)
	setPausedFn func(ctx context.Context, actor string, paused bool) error
}

func (m *mockAccessService) GetGrant(_ *gorm.DB, address string) (*models.AccessGrant, error) {
	return &models.AccessGrant{Address: address}, nil
}

func (m *mockAccessService) IsPaused(_ *gorm.DB) (bool, error) {
	return false, nil
}

func (m *mockAccessService) SetGrant(ctx context.Context, actor string, update services.GrantUpdate) (*models.AccessGrant, error) {
	if m.setGrantFn != nil {
		return m.setGrantFn(ctx, actor, update)
	}
	return &models.AccessGrant{Address: update.Address}, nil
}

func (m *mockAccessService) SetPaused(ctx context.Context, actor string, paused bool) error {
	if m.setPausedFn != nil {
		return m.setPausedFn(ctx, actor, paused)
	}
	return nil
}

func (m *mockAccessService) Bootstrap(_ string) error {
	return nil
}

func (m *mockAccessService) IsReserved(_ string) bool {
	return false
}

var _ services.AccessServicer = (*mockAccessService)(nil)

// --- mock referral service ---

type mockReferralService struct {
	registerFn func(ctx context.Context, actor, address string) (*models.Referrer, error)
}

func (m *mockReferralService) RegisterReferrer(ctx context.Context, actor, address string) (*models.Referrer, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, actor, address)
	}
	return &models.Referrer{Address: address, IsActive: true}, nil
}

func (m *mockReferralService) GetReferrerDetails(_ *gorm.DB, address string) (*models.Referrer, error) {
	return &models.Referrer{Address: address}, nil
}

func (m *mockReferralService) AddRewards(_ *gorm.DB, _, _ string, _ uint, _ int64) error {
	return nil
}

func (m *mockReferralService) ReverseRewards(_ *gorm.DB, _ string, _ uint) (int64, error) {
	return 0, nil
}

func (m *mockReferralService) HoldingAddress() string {
	return "referral-vault"
}

var _ services.ReferralServicer = (*mockReferralService)(nil)
