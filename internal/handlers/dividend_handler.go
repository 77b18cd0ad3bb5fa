package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propfund/internal/services"
)

// DividendHandler serves revenue distribution and share transfer endpoints.
type DividendHandler struct {
	dividendService services.DividendServicer
	auditService    services.AuditServicer
}

// NewDividendHandler creates a new DividendHandler
func NewDividendHandler(dividendService services.DividendServicer, auditService services.AuditServicer) *DividendHandler {
	return &DividendHandler{dividendService: dividendService, auditService: auditService}
}

// DistributeRevenueRequest represents the request body for a revenue deposit
type DistributeRevenueRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// TransferSharesRequest represents the request body for moving shares between holders
type TransferSharesRequest struct {
	To     string `json:"to" binding:"required,address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// DistributeRevenue handles depositing revenue for share holders
// @Summary     Distribute revenue
// @Description Deposit revenue asset into the property's dividend pool. The amount is pulled from the caller through the escrow allowance.
// @Tags        revenue
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "Property ID"
// @Param       request body DistributeRevenueRequest true "Deposit amount"
// @Success     200 {object} models.DividendPool "Updated pool"
// @Failure     400 {object} ErrorResponse "Deposit below minimum"
// @Failure     403 {object} ErrorResponse "Caller is blacklisted"
// @Failure     409 {object} ErrorResponse "Raise not completed or no circulating supply"
// @Failure     422 {object} ErrorResponse "Insufficient balance or allowance"
// @Failure     503 {object} ErrorResponse "Platform paused"
// @Router      /properties/{id}/revenue [post]
func (h *DividendHandler) DistributeRevenue(c *gin.Context) {
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

	var req DistributeRevenueRequest
	if !bindJSON(c, &req) {
		return
	}

	pool, err := h.dividendService.DistributeRevenue(c.Request.Context(), address, id, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "DISTRIBUTE_REVENUE", "property", c.Param("id"), c.ClientIP(), map[string]any{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

// ClaimRevenue handles paying out the caller's accrued revenue
// @Summary     Claim revenue
// @Tags        revenue
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} map[string]int64 "Claimed amount"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     409 {object} ErrorResponse "Raise not completed"
// @Router      /properties/{id}/claim-revenue [post]
func (h *DividendHandler) ClaimRevenue(c *gin.Context) {
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

	claimed, err := h.dividendService.ClaimRevenue(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if claimed > 0 {
		h.auditService.Log(address, "CLAIM_REVENUE", "property", c.Param("id"), c.ClientIP(), map[string]any{"claimed": claimed})
	}

	c.JSON(http.StatusOK, gin.H{"claimed": claimed})
}

// PendingRevenue handles reading the caller's unclaimed revenue
// @Summary     Pending revenue
// @Tags        revenue
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} map[string]int64 "Pending amount"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /properties/{id}/revenue/pending [get]
func (h *DividendHandler) PendingRevenue(c *gin.Context) {
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

	pending, err := h.dividendService.PendingRevenue(c.Request.Context(), address, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

// GetPool handles reading the dividend pool of a property
// @Summary     Get dividend pool
// @Tags        revenue
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Property ID"
// @Success     200 {object} models.DividendPool "Dividend pool"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Failure     409 {object} ErrorResponse "Raise not completed"
// @Router      /properties/{id}/revenue/pool [get]
func (h *DividendHandler) GetPool(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	pool, err := h.dividendService.GetPool(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

// TransferShares handles moving delivered shares to another holder
// @Summary     Transfer shares
// @Description Move shares to another holder. Both sides are settled before the balances change.
// @Tags        revenue
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Property ID"
// @Param       request body TransferSharesRequest true "Transfer details"
// @Success     204 "Shares transferred"
// @Failure     403 {object} ErrorResponse "Blacklisted"
// @Failure     422 {object} ErrorResponse "Insufficient shares"
// @Router      /properties/{id}/shares/transfer [post]
func (h *DividendHandler) TransferShares(c *gin.Context) {
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

	var req TransferSharesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.dividendService.TransferShares(c.Request.Context(), address, req.To, id, req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "TRANSFER_SHARES", "property", c.Param("id"), c.ClientIP(), map[string]any{
		"to":     req.To,
		"amount": req.Amount,
	})

	c.Status(http.StatusNoContent)
}
