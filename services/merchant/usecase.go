package merchant

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/creditco/cupa/services/merchant MerchantUC

import (
	"context"

	"github.com/creditco/cupa/internal/pkg/models"
)

// MerchantUC defines the interface for merchant business logic operations
type MerchantUC interface {
	// ResolveAPIKey resolves an API key to an eligible merchant and the
	// environment the key selects. ok is false when no eligible merchant
	// carries the key.
	ResolveAPIKey(ctx context.Context, apiKey string) (*models.Merchant, models.MerchantMode, bool)

	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	ListMerchants(ctx context.Context) ([]*models.Merchant, error)
	SaveMerchant(ctx context.Context, merchant *models.Merchant) error
}
