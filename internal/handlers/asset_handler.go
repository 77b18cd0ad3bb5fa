package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propfund/internal/services"
)

// AssetHandler serves balance queries and escrow allowances.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// ApproveSpendRequest represents the request body for setting the escrow allowance
type ApproveSpendRequest struct {
	Amount int64 `json:"amount" binding:"gte=0"`
}

// GetHolding handles reading a holder's balance and escrow allowance
// @Summary     Get balance
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Asset ID"
// @Param       address path string true "Holder address"
// @Success     200 {object} services.AssetHolding "Balance and allowance"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/balance/{address} [get]
func (h *AssetHandler) GetHolding(c *gin.Context) {
	holding, err := h.assetService.Holding(c.Request.Context(), c.Param("id"), c.Param("address"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// ApproveSpend handles letting the escrow pull the caller's asset
// @Summary     Approve escrow allowance
// @Description Set the amount of this asset the escrow may pull from the caller. Replaces any previous allowance.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Asset ID"
// @Param       request body ApproveSpendRequest true "Allowance"
// @Success     200 {object} services.AssetHolding "Updated balance and allowance"
// @Failure     403 {object} ErrorResponse "Blacklisted"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/approve [post]
func (h *AssetHandler) ApproveSpend(c *gin.Context) {
	address, err := getAddress(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ApproveSpendRequest
	if !bindJSON(c, &req) {
		return
	}

	assetID := c.Param("id")
	if err := h.assetService.ApproveSpend(c.Request.Context(), address, assetID, "", req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.assetService.Holding(c.Request.Context(), assetID, address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(address, "APPROVE_ESCROW", "asset", assetID, c.ClientIP(), map[string]any{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}
