// Package server assembles the ledger services and the HTTP routes that expose them.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"propfund/internal/config"
	"propfund/internal/events"
	"propfund/internal/handlers"
	"propfund/internal/middleware"
	"propfund/internal/services"
)

// Services is the full set of application services sharing one operation lock.
type Services struct {
	User       services.UserServicer
	Access     services.AccessServicer
	Assets     services.AssetServicer
	Referrals  services.ReferralServicer
	Platform   services.PlatformServicer
	Properties services.PropertyServicer
	Dividends  services.DividendServicer
	Audit      services.AuditServicer
}

// NewServices wires the ledger services against db and journal.
func NewServices(db *gorm.DB, journal events.Journal, cfg *config.Config) Services {
	lock := services.NewOperationLock()
	reserved := []string{cfg.EscrowAddress, cfg.ReferralVaultAddress}
	access := services.NewAccessService(db, lock, reserved...)
	ledger := services.NewAssetLedgerService(db)
	referrals := services.NewReferralService(db, lock, access, cfg.ReferralVaultAddress)
	platform := services.NewPlatformService(db, lock, access, ledger)
	dividends := services.NewDividendService(db, lock, journal, access, ledger, platform, cfg.EscrowAddress)
	properties := services.NewPropertyService(db, services.PropertyDeps{
		Lock:         lock,
		Access:       access,
		Assets:       ledger,
		Referrals:    referrals,
		Platform:     platform,
		Dividends:    dividends,
		Journal:      journal,
		Escrow:       cfg.EscrowAddress,
		MaxExtension: cfg.MaxRaiseExtension,
	})

	return Services{
		User:       services.NewUserService(db, reserved...),
		Access:     access,
		Assets:     services.NewAssetService(db, lock, access, ledger, cfg.EscrowAddress),
		Referrals:  referrals,
		Platform:   platform,
		Properties: properties,
		Dividends:  dividends,
		Audit:      services.NewAuditService(db, access),
	}
}

// NewRouter registers every API route on a new gin engine.
func NewRouter(svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.User, svc.Audit)
	propertyHandler := handlers.NewPropertyHandler(svc.Properties, svc.Audit)
	dividendHandler := handlers.NewDividendHandler(svc.Dividends, svc.Audit)
	assetHandler := handlers.NewAssetHandler(svc.Assets, svc.Audit)
	adminHandler := handlers.NewAdminHandler(svc.Platform, svc.Properties, svc.Access, svc.Assets, svc.Referrals, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestTracing())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	properties := protected.Group("/properties")
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.POST("/:id/buy", propertyHandler.BuyTokens)
	properties.POST("/:id/recover", propertyHandler.RecoverFunds)
	properties.POST("/:id/claim-shares", propertyHandler.ClaimShares)
	properties.GET("/:id/fees", propertyHandler.GetFees)
	properties.GET("/:id/ledger", propertyHandler.ListLedger)
	properties.GET("/:id/ledger/:address", propertyHandler.GetLedgerEntry)
	properties.GET("/:id/events", propertyHandler.ListEvents)
	properties.POST("/:id/revenue", dividendHandler.DistributeRevenue)
	properties.POST("/:id/claim-revenue", dividendHandler.ClaimRevenue)
	properties.GET("/:id/revenue/pending", dividendHandler.PendingRevenue)
	properties.GET("/:id/revenue/pool", dividendHandler.GetPool)
	properties.POST("/:id/shares/transfer", dividendHandler.TransferShares)

	assets := protected.Group("/assets")
	assets.GET("/:id/balance/:address", assetHandler.GetHolding)
	assets.POST("/:id/approve", assetHandler.ApproveSpend)

	admin := protected.Group("/admin")
	admin.POST("/initialize", adminHandler.Initialize)
	admin.PUT("/fees/platform", adminHandler.SetPlatformFee)
	admin.PUT("/fees/referral", adminHandler.SetReferralFee)
	admin.PUT("/treasury", adminHandler.SetTreasury)
	admin.PUT("/min-investment", adminHandler.SetMinInvestment)
	admin.PUT("/referral-caps", adminHandler.SetReferralCaps)
	admin.PUT("/whitelist/:assetID", adminHandler.WhitelistAsset)
	admin.DELETE("/whitelist/:assetID", adminHandler.UnwhitelistAsset)
	admin.POST("/properties/:id/approve", adminHandler.ApproveProperty)
	admin.POST("/properties/:id/cancel", adminHandler.CancelProperty)
	admin.POST("/properties/:id/extend", adminHandler.ExtendRaise)
	admin.POST("/properties/:id/complete", adminHandler.CompleteRaise)
	admin.POST("/properties/:id/admin-buy", adminHandler.AdminBuyTokens)
	admin.POST("/properties/:id/revert", adminHandler.RevertInvestment)
	admin.PUT("/properties/:id/owner-fee", adminHandler.SetOwnerFee)
	admin.PUT("/access/:address", adminHandler.SetAccess)
	admin.PUT("/pause", adminHandler.SetPaused)
	admin.POST("/assets", adminHandler.CreateAsset)
	admin.POST("/assets/:id/mint", adminHandler.MintAsset)
	admin.POST("/referrers", adminHandler.RegisterReferrer)
	admin.GET("/audit", adminHandler.ListAudit)

	return router
}
