package payment

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/creditco/cupa/services/payment TransactionRepo,ClientRepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/creditco/cupa/internal/pkg/models"
)

// TransactionRepo defines the payment transaction repository interface.
// Lookups return (nil, nil) when no transaction matches.
type TransactionRepo interface {
	// Create inserts a new transaction. The caller has already checked
	// uniqueness of (merchant, order id); the store enforces it again with
	// a unique constraint so concurrent duplicates cannot slip through.
	Create(ctx context.Context, txn *models.PaymentTransaction) error
	Update(ctx context.Context, txn *models.PaymentTransaction) error
	GetByID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	GetByMerchantAndOrder(ctx context.Context, merchantID, orderID string) (*models.PaymentTransaction, error)
	ExistsByMerchantAndOrder(ctx context.Context, merchantID, orderID string) (bool, error)
	// SumAmountForDay totals the amounts of the merchant's transactions
	// requested on the given calendar day, failed ones excluded.
	SumAmountForDay(ctx context.Context, merchantID string, day time.Time) (decimal.Decimal, error)
}

// ClientRepo defines the client repository interface.
type ClientRepo interface {
	GetByMerchantClientID(ctx context.Context, merchantID, merchantClientID string) (*models.Client, error)
	Upsert(ctx context.Context, client *models.Client) error
}
