package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/internal/pkg/middleware"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/services/merchant"
)

// MerchantHandler handles back-office merchant administration requests
type MerchantHandler struct {
	merchantUC merchant.MerchantUC
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUC merchant.MerchantUC) *MerchantHandler {
	return &MerchantHandler{merchantUC: merchantUC}
}

// RegisterRoutes registers the merchant administration routes. All of them
// require an admin identity.
func (h *MerchantHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	adminRoutes := e.Group("/internal/merchants")
	adminRoutes.Use(
		middleware.IdentityMiddleware(jwtConfig),
		middleware.AdminOnly(),
	)
	adminRoutes.GET("", h.ListMerchants)
	adminRoutes.GET("/:id", h.GetMerchant)
	adminRoutes.POST("", h.SaveMerchant)
}
