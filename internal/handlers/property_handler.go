package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
	"propfund/internal/pagination"
	"propfund/internal/services"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// PropertyHandler serves the investor-facing property endpoints.
type PropertyHandler struct {
	propertyService services.PropertyServicer
	auditService    services.AuditServicer
	now             func() time.Time
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService services.PropertyServicer, auditService services.AuditServicer) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		auditService:    auditService,
		now:             time.Now,
	}
}

// CreatePropertyRequest represents the request body for creating a property raise
type CreatePropertyRequest struct {
	SharesForSale       int64  `json:"shares_for_sale" binding:"required,gt=0"`
	OwnerFeeBasisPoints int64  `json:"owner_fee_basis_points" binding:"bps"`
	PricePerShare       int64  `json:"price_per_share" binding:"required,gt=0"`
	ThresholdValue      int64  `json:"threshold_value" binding:"required,gt=0"`
	PaymentAssetID      string `json:"payment_asset_id" binding:"required"`
	RevenueAssetID      string `json:"revenue_asset_id" binding:"required"`
	OwnerPayoutAddress  string `json:"owner_payout_address" binding:"omitempty,address"`
	Metadata            string `json:"metadata" binding:"max=4096"`
}

// BuyTokensRequest represents the request body for reserving shares
type BuyTokensRequest struct {
	Shares      int64  `json:"shares" binding:"required,gt=0"`
	Beneficiary string `json:"beneficiary" binding:"omitempty,address"`
	Referrer    string `json:"referrer" binding:"omitempty,address"`
}

// PropertyResponse is a property with its derived lifecycle status.
type PropertyResponse struct {
	models.Property
	Status          models.PropertyStatus `json:"status"`
	RaisedValue     int64                 `json:"raised_value"`
	RemainingShares int64                 `json:"remaining_shares"`
}

func (h *PropertyHandler) toResponse(p *models.Property) PropertyResponse {
	return PropertyResponse{
		Property:        *p,
		Status:          p.Status(h.now()),
		RaisedValue:     p.RaisedValue(),
		RemainingShares: p.RemainingShares(),
	}
}

// CreateProperty handles creating a new property raise
// @Summary     Create property
// @Description Create a property raise. The caller must be KYC approved.
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePropertyRequest true "Property details"
// @Success     201 {object} PropertyResponse "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not KYC approved"
// @Failure     409 {object} ErrorResponse "Platform not initialized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), address, services.CreatePropertyParams{
		SharesForSale:       req.SharesForSale,
		OwnerFeeBasisPoints: req.OwnerFeeBasisPoints,
		PricePerShare:       req.PricePerShare,
		ThresholdValue:      req.ThresholdValue,
		PaymentAssetID:      req.PaymentAssetID,
		RevenueAssetID:      req.RevenueAssetID,
		OwnerPayoutAddress:  req.OwnerPayoutAddress,
		Metadata:            req.Metadata,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "CREATE_PROPERTY", "property", strconv.FormatUint(uint64(property.ID), 10), c.ClientIP(), map[string]any{
		"shares_for_sale": req.SharesForSale,
		"price_per_share": req.PricePerShare,
		"threshold_value": req.ThresholdValue,
	})

	c.JSON(http.StatusCreated, gin.H{"property": h.toResponse(property)})
}

// ListProperties handles listing property raises
// @Summary     List properties
// @Description Get a paginated list of property raises
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Property] "Paginated properties"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.propertyService.ListProperties(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.MapPage(*result, h.toResponse))
}

// GetProperty handles retrieving one property raise
// @Summary     Get property
// @Description Get a property raise and its derived status
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} PropertyResponse "Property"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": h.toResponse(property)})
}

// BuyTokens handles reserving shares in an open raise
// @Summary     Buy shares
// @Description Reserve shares in an approved raise. The price plus the platform fee is pulled from the caller through the escrow allowance.
// @Tags        properties
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int              true "Property ID"
// @Param       request body BuyTokensRequest true "Purchase details"
// @Success     201 {object} models.InvestorLedger "Updated ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid input or below minimum"
// @Failure     403 {object} ErrorResponse "Not KYC approved or blacklisted"
// @Failure     409 {object} ErrorResponse "Raise not open or capacity exceeded"
// @Failure     422 {object} ErrorResponse "Insufficient funds or allowance"
// @Router      /properties/{id}/buy [post]
func (h *PropertyHandler) BuyTokens(c *gin.Context) {
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

	var req BuyTokensRequest
	if !bindJSON(c, &req) {
		return
	}
	beneficiary := req.Beneficiary
	if beneficiary == "" {
		beneficiary = address
	}

	entry, err := h.propertyService.BuyTokens(c.Request.Context(), address, beneficiary, id, req.Shares, req.Referrer)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "BUY_SHARES", "property", c.Param("id"), c.ClientIP(), map[string]any{
		"shares":      req.Shares,
		"beneficiary": beneficiary,
		"referrer":    req.Referrer,
	})

	c.JSON(http.StatusCreated, gin.H{"ledger": entry})
}

// RecoverFunds handles refunding a failed or canceled raise
// @Summary     Recover funds
// @Description Refund the caller's escrowed principal and platform fee after a raise failed or was canceled
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} map[string]int64 "Refunded amount"
// @Failure     409 {object} ErrorResponse "Raise still active or succeeded"
// @Router      /properties/{id}/recover [post]
func (h *PropertyHandler) RecoverFunds(c *gin.Context) {
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

	refunded, err := h.propertyService.RecoverFundsInvested(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "RECOVER_FUNDS", "property", c.Param("id"), c.ClientIP(), map[string]any{"refunded": refunded})

	c.JSON(http.StatusOK, gin.H{"refunded": refunded})
}

// ClaimShares handles delivering purchased shares after completion
// @Summary     Claim shares
// @Description Deliver the caller's owed shares of a completed raise
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} map[string]int64 "Delivered shares"
// @Failure     404 {object} ErrorResponse "No ledger entry"
// @Failure     409 {object} ErrorResponse "Raise not completed or already claimed"
// @Router      /properties/{id}/claim-shares [post]
func (h *PropertyHandler) ClaimShares(c *gin.Context) {
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

	shares, err := h.propertyService.GetInvestmentTokens(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "CLAIM_SHARES", "property", c.Param("id"), c.ClientIP(), map[string]any{"shares": shares})

	c.JSON(http.StatusOK, gin.H{"shares": shares})
}

// GetFees handles reading a property's fee accumulators
// @Summary     Get fee accumulators
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.FeeAccumulator "Fee accumulators"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/fees [get]
func (h *PropertyHandler) GetFees(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	fees, err := h.propertyService.GetFees(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fees": fees})
}

// ListLedger handles listing a property's investor ledger
// @Summary     List investor ledger
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Property ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.InvestorLedger] "Paginated ledger entries"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/ledger [get]
func (h *PropertyHandler) ListLedger(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.propertyService.ListLedger(c.Request.Context(), id, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLedgerEntry handles reading one investor's position
// @Summary     Get ledger entry
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int    true "Property ID"
// @Param       address path string true "Investor address"
// @Success     200 {object} models.InvestorLedger "Ledger entry"
// @Failure     404 {object} ErrorResponse "Ledger entry not found"
// @Router      /properties/{id}/ledger/{address} [get]
func (h *PropertyHandler) GetLedgerEntry(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.propertyService.GetLedgerEntry(c.Request.Context(), id, c.Param("address"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ledger": entry})
}

// ListEvents handles listing a property's lifecycle events
// @Summary     List property events
// @Tags        properties
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  int true  "Property ID"
// @Param       limit query int false "Maximum events (default 50, max 500)"
// @Success     200 {array} events.Event "Events, newest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /properties/{id}/events [get]
func (h *PropertyHandler) ListEvents(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := defaultEventLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxEventLimit {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 500"))
			return
		}
	}

	evts, err := h.propertyService.ListEvents(c.Request.Context(), id, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": evts})
}
