package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/soundclave/sc-broker/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Availability endpoint (public read access)
		v1.GET("/releases/:id/availability", handler.GetAvailability)

		// Purchase endpoints (requires authentication)
		v1.POST("/purchases", middleware.Auth(authCfg), handler.CreatePurchase)
		v1.POST("/purchases/confirm", middleware.Auth(authCfg), handler.ConfirmPurchase)

		// Royalty reporting endpoints (requires API key authentication only)
		royalties := v1.Group("/royalties", middleware.APIKeyAuth(authCfg))
		{
			royalties.GET("/secondary-sales", handler.GetSecondarySales)
			royalties.GET("/mint-audit", handler.GetMintAudit)
			royalties.GET("/liability", handler.GetRoyaltyLiability)
			royalties.GET("/summary", handler.GetRoyaltySummary)
		}
	}
}
