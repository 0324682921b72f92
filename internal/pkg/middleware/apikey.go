package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/internal/pkg/apicontext"
	"github.com/creditco/cupa/internal/pkg/models"
)

const merchantContextKey = "merchant_context"

// APIKeyResolver resolves a merchant API key to the merchant it belongs to
// and the environment the key selects. ok is false when the key matches no
// eligible merchant.
type APIKeyResolver interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (*models.Merchant, models.MerchantMode, bool)
}

// APIKeyGate authenticates merchant API requests by API key. The gate only
// considers requests under the configured API path prefix. A missing or
// unresolvable key falls through without a merchant principal; rejection is
// left to the authorization step so that identity credentials presented on
// the same request still get their chance.
func APIKeyGate(resolver APIKeyResolver, cfg models.APIConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, cfg.PathPrefix) {
				return next(c)
			}

			apiKey := c.Request().Header.Get(cfg.KeyHeader)
			if apiKey == "" {
				return next(c)
			}

			merchant, mode, ok := resolver.ResolveAPIKey(c.Request().Context(), apiKey)
			if !ok {
				return next(c)
			}

			c.Set(merchantContextKey, MerchantContextFrom(merchant, mode, apiKey))
			return next(c)
		}
	}
}

// MerchantContextFrom builds the request-scoped merchant fragment from a
// resolved merchant and the environment selected for it.
func MerchantContextFrom(merchant *models.Merchant, mode models.MerchantMode, apiKey string) *apicontext.MerchantContext {
	creds := merchant.GatewayCredentialsForMode(mode)
	return &apicontext.MerchantContext{
		MerchantID:  merchant.ID,
		Environment: mode,
		APIKey:      apiKey,
		Status:      merchant.Status,

		GatewayURL:         creds.URL,
		GatewayMerchantID:  creds.MerchantID,
		GatewayMerchantKey: creds.MerchantKey,
		GatewayAPIKey:      creds.APIKey,

		OrderIDPrefix:  merchant.OrderIDPrefixForMode(mode),
		ClientIDPrefix: merchant.ClientIDPrefixForMode(mode),
		DailyLimit:     merchant.DailyLimitForMode(mode),
	}
}
