package merchant

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/creditco/cupa/services/merchant MerchantRepo

import (
	"context"

	"github.com/creditco/cupa/internal/pkg/models"
)

// MerchantRepo defines the merchant repository interface. Lookups return
// (nil, nil) when no merchant matches.
type MerchantRepo interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
	GetByLiveAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error)
	GetByTestAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error)
	GetByGatewayMerchantID(ctx context.Context, gatewayMerchantID string) (*models.Merchant, error)
	List(ctx context.Context) ([]*models.Merchant, error)
	Save(ctx context.Context, merchant *models.Merchant) error
}
