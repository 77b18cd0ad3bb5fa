package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propfund/internal/accrual"
	apperrors "propfund/internal/errors"
	"propfund/internal/models"
	"propfund/internal/pagination"
	"propfund/internal/services"
)

// AdminHandler serves the platform administration endpoints. Capability checks
// happen in the services; the handler only binds input and records audit entries.
type AdminHandler struct {
	platformService services.PlatformServicer
	propertyService services.PropertyServicer
	accessService   services.AccessServicer
	assetService    services.AssetServicer
	referralService services.ReferralServicer
	auditService    services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	platformService services.PlatformServicer,
	propertyService services.PropertyServicer,
	accessService services.AccessServicer,
	assetService services.AssetServicer,
	referralService services.ReferralServicer,
	auditService services.AuditServicer,
) *AdminHandler {
	return &AdminHandler{
		platformService: platformService,
		propertyService: propertyService,
		accessService:   accessService,
		assetService:    assetService,
		referralService: referralService,
		auditService:    auditService,
	}
}

// InitializeRequest represents the one-time platform settings
type InitializeRequest struct {
	TreasuryAddress               string `json:"treasury_address" binding:"required,address"`
	PlatformFeeBasisPoints        int64  `json:"platform_fee_basis_points" binding:"bps"`
	ReferralFeeBasisPoints        int64  `json:"referral_fee_basis_points" binding:"bps"`
	MinInvestmentValue            int64  `json:"min_investment_value" binding:"gte=0"`
	MaxReferralsPerReferrer       int64  `json:"max_referrals_per_referrer" binding:"gte=0"`
	MaxReferralRevenuePerReferrer int64  `json:"max_referral_revenue_per_referrer" binding:"gte=0"`
	FeeCapBasisPoints             int64  `json:"fee_cap_basis_points" binding:"omitempty,bps"` // defaults to 10000
}

// BasisPointsRequest carries a single fee rate
type BasisPointsRequest struct {
	BasisPoints int64 `json:"basis_points" binding:"bps"`
}

// AddressRequest carries a single address
type AddressRequest struct {
	Address string `json:"address" binding:"required,address"`
}

// ValueRequest carries a single non-negative value
type ValueRequest struct {
	Value int64 `json:"value" binding:"gte=0"`
}

// ReferralCapsRequest carries the per-referrer limits
type ReferralCapsRequest struct {
	MaxReferrals int64 `json:"max_referrals" binding:"gte=0"`
	MaxRevenue   int64 `json:"max_revenue" binding:"gte=0"`
}

// DeadlineRequest carries a raise deadline
type DeadlineRequest struct {
	Deadline time.Time `json:"deadline" binding:"required"`
}

// AdminBuyRequest represents an off-ledger purchase reconciled by an admin
type AdminBuyRequest struct {
	Buyer  string `json:"buyer" binding:"required,address"`
	Shares int64  `json:"shares" binding:"required,gt=0"`
}

// RevertRequest names the investor whose position is unwound
type RevertRequest struct {
	Buyer string `json:"buyer" binding:"required,address"`
}

// SetAccessRequest carries the capabilities to change. Omitted fields are left unchanged.
type SetAccessRequest struct {
	IsAdmin        *bool `json:"is_admin"`
	IsFundsManager *bool `json:"is_funds_manager"`
	KYCApproved    *bool `json:"kyc_approved"`
	Blacklisted    *bool `json:"blacklisted"`
}

// PauseRequest toggles the global pause switch
type PauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// CreateAssetRequest registers a payment or revenue asset
type CreateAssetRequest struct {
	Symbol string `json:"symbol" binding:"required,min=1,max=32"`
	Kind   string `json:"kind" binding:"required,asset_kind"`
}

// MintRequest issues asset units to a holder
type MintRequest struct {
	To     string `json:"to" binding:"required,address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// Initialize handles the one-time platform setup
// @Summary     Initialize platform
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InitializeRequest true "Platform settings"
// @Success     201 {object} models.GlobalConfig "Platform configuration"
// @Failure     400 {object} ErrorResponse "Invalid input or fee out of bounds"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Already initialized"
// @Router      /admin/initialize [post]
func (h *AdminHandler) Initialize(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InitializeRequest
	if !bindJSON(c, &req) {
		return
	}

	feeCap := req.FeeCapBasisPoints
	if feeCap == 0 {
		feeCap = accrual.BasisPoints
	}

	cfg, err := h.platformService.Initialize(c.Request.Context(), address, services.InitializeParams{
		TreasuryAddress:               req.TreasuryAddress,
		PlatformFeeBasisPoints:        req.PlatformFeeBasisPoints,
		ReferralFeeBasisPoints:        req.ReferralFeeBasisPoints,
		MinInvestmentValue:            req.MinInvestmentValue,
		MaxReferralsPerReferrer:       req.MaxReferralsPerReferrer,
		MaxReferralRevenuePerReferrer: req.MaxReferralRevenuePerReferrer,
		FeeCapBasisPoints:             feeCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "INITIALIZE_PLATFORM", "config", "global", c.ClientIP(), map[string]any{
		"treasury_address":          req.TreasuryAddress,
		"platform_fee_basis_points": req.PlatformFeeBasisPoints,
		"referral_fee_basis_points": req.ReferralFeeBasisPoints,
	})

	c.JSON(http.StatusCreated, gin.H{"config": cfg})
}

// SetPlatformFee handles changing the platform fee rate
// @Summary     Set platform fee
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BasisPointsRequest true "Fee rate"
// @Success     200 {object} models.GlobalConfig "Platform configuration"
// @Failure     400 {object} ErrorResponse "Fee out of bounds"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/fees/platform [put]
func (h *AdminHandler) SetPlatformFee(c *gin.Context) {
	h.updateBasisPoints(c, "SET_PLATFORM_FEE", h.platformService.SetPlatformFee)
}

// SetReferralFee handles changing the referral fee rate
// @Summary     Set referral fee
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BasisPointsRequest true "Fee rate"
// @Success     200 {object} models.GlobalConfig "Platform configuration"
// @Failure     400 {object} ErrorResponse "Fee out of bounds"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/fees/referral [put]
func (h *AdminHandler) SetReferralFee(c *gin.Context) {
	h.updateBasisPoints(c, "SET_REFERRAL_FEE", h.platformService.SetReferralFee)
}

func (h *AdminHandler) updateBasisPoints(c *gin.Context, action string, set func(ctx context.Context, actor string, bps int64) (*models.GlobalConfig, error)) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BasisPointsRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := set(c.Request.Context(), address, req.BasisPoints)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, action, "config", "global", c.ClientIP(), map[string]any{"basis_points": req.BasisPoints})

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// SetTreasury handles changing the treasury address
// @Summary     Set treasury
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddressRequest true "Treasury address"
// @Success     200 {object} models.GlobalConfig "Platform configuration"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/treasury [put]
func (h *AdminHandler) SetTreasury(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.platformService.SetTreasury(c.Request.Context(), address, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_TREASURY", "config", "global", c.ClientIP(), map[string]any{"treasury_address": req.Address})

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// SetMinInvestment handles changing the minimum investment value
// @Summary     Set minimum investment
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ValueRequest true "Minimum value"
// @Success     200 {object} models.GlobalConfig "Platform configuration"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/min-investment [put]
func (h *AdminHandler) SetMinInvestment(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ValueRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.platformService.SetMinInvestment(c.Request.Context(), address, req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_MIN_INVESTMENT", "config", "global", c.ClientIP(), map[string]any{"value": req.Value})

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// SetReferralCaps handles changing the per-referrer limits
// @Summary     Set referral caps
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReferralCapsRequest true "Referral caps"
// @Success     200 {object} models.GlobalConfig "Platform configuration"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/referral-caps [put]
func (h *AdminHandler) SetReferralCaps(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReferralCapsRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.platformService.SetReferralCaps(c.Request.Context(), address, req.MaxReferrals, req.MaxRevenue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_REFERRAL_CAPS", "config", "global", c.ClientIP(), map[string]any{
		"max_referrals": req.MaxReferrals,
		"max_revenue":   req.MaxRevenue,
	})

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// WhitelistAsset handles marking an asset eligible for payment or revenue
// @Summary     Whitelist asset
// @Tags        admin
// @Security    BearerAuth
// @Param       assetID path string true "Asset ID"
// @Success     204 "Asset whitelisted"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /admin/whitelist/{assetID} [put]
func (h *AdminHandler) WhitelistAsset(c *gin.Context) {
	h.setWhitelisted(c, true)
}

// UnwhitelistAsset handles removing an asset from the whitelist
// @Summary     Remove asset from whitelist
// @Tags        admin
// @Security    BearerAuth
// @Param       assetID path string true "Asset ID"
// @Success     204 "Asset removed from whitelist"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/whitelist/{assetID} [delete]
func (h *AdminHandler) UnwhitelistAsset(c *gin.Context) {
	h.setWhitelisted(c, false)
}

func (h *AdminHandler) setWhitelisted(c *gin.Context, whitelisted bool) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID := c.Param("assetID")
	if err := h.platformService.SetWhitelisted(c.Request.Context(), address, assetID, whitelisted); err != nil {
		respondWithError(c, err)
		return
	}

	action := "WHITELIST_ASSET"
	if !whitelisted {
		action = "UNWHITELIST_ASSET"
	}
	h.auditService.Log(address, action, "asset", assetID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// ApproveProperty handles opening a raise with its deadline
// @Summary     Approve property
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Property ID"
// @Param       request body DeadlineRequest true "Raise deadline"
// @Success     200 {object} models.Property "Approved property"
// @Failure     400 {object} ErrorResponse "Deadline not in the future"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Already approved or canceled"
// @Router      /admin/properties/{id}/approve [post]
func (h *AdminHandler) ApproveProperty(c *gin.Context) {
	h.updateDeadline(c, "APPROVE_PROPERTY", h.propertyService.ApproveProperty)
}

// ExtendRaise handles the one-time deadline extension
// @Summary     Extend raise
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Property ID"
// @Param       request body DeadlineRequest true "New deadline"
// @Success     200 {object} models.Property "Extended property"
// @Failure     400 {object} ErrorResponse "Deadline out of range"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Already extended or not open"
// @Router      /admin/properties/{id}/extend [post]
func (h *AdminHandler) ExtendRaise(c *gin.Context) {
	h.updateDeadline(c, "EXTEND_RAISE", h.propertyService.ExtendRaise)
}

func (h *AdminHandler) updateDeadline(c *gin.Context, action string, set func(ctx context.Context, caller string, id uint, deadline time.Time) (*models.Property, error)) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeadlineRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := set(c.Request.Context(), address, id, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, action, "property", c.Param("id"), c.ClientIP(), map[string]any{"deadline": req.Deadline})

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// CancelProperty handles canceling a raise
// @Summary     Cancel property
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.Property "Canceled property"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Already completed or canceled"
// @Router      /admin/properties/{id}/cancel [post]
func (h *AdminHandler) CancelProperty(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.CancelProperty(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "CANCEL_PROPERTY", "property", c.Param("id"), c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// CompleteRaise handles settling a successful raise
// @Summary     Complete raise
// @Description Pay out the fee accumulators and open the share claim
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} services.Disbursement "Payouts"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Threshold not met or already completed"
// @Router      /admin/properties/{id}/complete [post]
func (h *AdminHandler) CompleteRaise(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	disbursement, err := h.propertyService.CompleteRaise(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "COMPLETE_RAISE", "property", c.Param("id"), c.ClientIP(), map[string]any{
		"treasury_platform":  disbursement.TreasuryPlatform,
		"treasury_owner_fee": disbursement.TreasuryOwnerFee,
		"owner":              disbursement.Owner,
		"referral":           disbursement.Referral,
	})

	c.JSON(http.StatusOK, gin.H{"disbursement": disbursement})
}

// AdminBuyTokens handles recording an off-ledger purchase
// @Summary     Record off-ledger purchase
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Property ID"
// @Param       request body AdminBuyRequest true "Purchase details"
// @Success     201 {object} models.InvestorLedger "Updated ledger entry"
// @Failure     403 {object} ErrorResponse "Not a funds manager"
// @Failure     409 {object} ErrorResponse "Raise not open or capacity exceeded"
// @Router      /admin/properties/{id}/admin-buy [post]
func (h *AdminHandler) AdminBuyTokens(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdminBuyRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.propertyService.AdminBuyTokens(c.Request.Context(), address, id, req.Buyer, req.Shares)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "ADMIN_BUY_SHARES", "property", c.Param("id"), c.ClientIP(), map[string]any{
		"buyer":  req.Buyer,
		"shares": req.Shares,
	})

	c.JSON(http.StatusCreated, gin.H{"ledger": entry})
}

// RevertInvestment handles unwinding one investor's position
// @Summary     Revert investment
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int           true "Property ID"
// @Param       request body RevertRequest true "Investor"
// @Success     200 {object} map[string]int64 "Refunded amount"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Ledger entry not found"
// @Failure     409 {object} ErrorResponse "Raise completed"
// @Router      /admin/properties/{id}/revert [post]
func (h *AdminHandler) RevertInvestment(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RevertRequest
	if !bindJSON(c, &req) {
		return
	}

	refunded, err := h.propertyService.RevertInvestment(c.Request.Context(), address, req.Buyer, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "REVERT_INVESTMENT", "property", c.Param("id"), c.ClientIP(), map[string]any{
		"buyer":    req.Buyer,
		"refunded": refunded,
	})

	c.JSON(http.StatusOK, gin.H{"refunded": refunded})
}

// SetOwnerFee handles changing a property's owner fee rate
// @Summary     Set owner fee
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Property ID"
// @Param       request body BasisPointsRequest true "Owner fee rate"
// @Success     200 {object} models.FeeAccumulator "Updated accumulators"
// @Failure     400 {object} ErrorResponse "Fee out of bounds"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/properties/{id}/owner-fee [put]
func (h *AdminHandler) SetOwnerFee(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BasisPointsRequest
	if !bindJSON(c, &req) {
		return
	}

	fees, err := h.propertyService.SetOwnerFee(c.Request.Context(), address, id, req.BasisPoints)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_OWNER_FEE", "property", c.Param("id"), c.ClientIP(), map[string]any{"basis_points": req.BasisPoints})

	c.JSON(http.StatusOK, gin.H{"fees": fees})
}

// SetAccess handles granting or revoking capabilities on an address
// @Summary     Set access grant
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       address path string           true "Address"
// @Param       request body SetAccessRequest true "Capabilities"
// @Success     200 {object} models.AccessGrant "Updated grant"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/access/{address} [put]
func (h *AdminHandler) SetAccess(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetAccessRequest
	if !bindJSON(c, &req) {
		return
	}

	target := c.Param("address")
	grant, err := h.accessService.SetGrant(c.Request.Context(), address, services.GrantUpdate{
		Address:        target,
		IsAdmin:        req.IsAdmin,
		IsFundsManager: req.IsFundsManager,
		KYCApproved:    req.KYCApproved,
		Blacklisted:    req.Blacklisted,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_ACCESS", "access_grant", target, c.ClientIP(), map[string]any{
		"is_admin":         grant.IsAdmin,
		"is_funds_manager": grant.IsFundsManager,
		"kyc_approved":     grant.KYCApproved,
		"blacklisted":      grant.Blacklisted,
	})

	c.JSON(http.StatusOK, gin.H{"grant": grant})
}

// SetPaused handles toggling the global pause switch
// @Summary     Pause or unpause
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PauseRequest true "Pause state"
// @Success     200 {object} map[string]bool "Pause state"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/pause [put]
func (h *AdminHandler) SetPaused(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PauseRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accessService.SetPaused(c.Request.Context(), address, *req.Paused); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "SET_PAUSED", "system", "state", c.ClientIP(), map[string]any{"paused": *req.Paused})

	c.JSON(http.StatusOK, gin.H{"paused": *req.Paused})
}

// CreateAsset handles registering a payment or revenue asset
// @Summary     Create asset
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Created asset"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     409 {object} ErrorResponse "Duplicate symbol"
// @Router      /admin/assets [post]
func (h *AdminHandler) CreateAsset(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), address, req.Symbol, models.AssetKind(req.Kind))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "CREATE_ASSET", "asset", asset.ID, c.ClientIP(), map[string]any{
		"symbol": req.Symbol,
		"kind":   req.Kind,
	})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// MintAsset handles issuing asset units to a holder
// @Summary     Mint asset
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Asset ID"
// @Param       request body MintRequest true "Mint details"
// @Success     204 "Minted"
// @Failure     400 {object} ErrorResponse "Share assets cannot be minted"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /admin/assets/{id}/mint [post]
func (h *AdminHandler) MintAsset(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MintRequest
	if !bindJSON(c, &req) {
		return
	}

	assetID := c.Param("id")
	if err := h.assetService.MintAsset(c.Request.Context(), address, assetID, req.To, req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "MINT_ASSET", "asset", assetID, c.ClientIP(), map[string]any{
		"to":     req.To,
		"amount": req.Amount,
	})

	c.Status(http.StatusNoContent)
}

// RegisterReferrer handles adding a referral partner
// @Summary     Register referrer
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddressRequest true "Referrer address"
// @Success     201 {object} models.Referrer "Registered referrer"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/referrers [post]
func (h *AdminHandler) RegisterReferrer(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	referrer, err := h.referralService.RegisterReferrer(c.Request.Context(), address, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "REGISTER_REFERRER", "referrer", req.Address, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"referrer": referrer})
}

// AuditQuery filters the audit trail listing
type AuditQuery struct {
	pagination.PageRequest
	Actor        string `form:"actor"`
	Action       string `form:"action"`
	ResourceType string `form:"resource_type"`
	ResourceID   string `form:"resource_id"`
}

// ListAudit handles listing the audit trail
// @Summary     List audit entries
// @Description List recorded API actions, newest first, optionally filtered by actor, action or resource
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       actor         query string false "Actor address"
// @Param       action        query string false "Action name"
// @Param       resource_type query string false "Resource type"
// @Param       resource_id   query string false "Resource ID"
// @Param       page          query int    false "Page number"
// @Param       page_size     query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Audit entries"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /admin/audit [get]
func (h *AdminHandler) ListAudit(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	page, err := h.auditService.List(c.Request.Context(), address, services.AuditFilter{
		Actor:        q.Actor,
		Action:       q.Action,
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
	}, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
