package payment

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/creditco/cupa/services/payment PaymentUC

import (
	"context"

	"github.com/creditco/cupa/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic operations
type PaymentUC interface {
	// CreatePayment validates the request against the caller's merchant
	// context, stores the transaction and forwards the order upstream.
	CreatePayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentTransaction, error)

	// GetPayment returns the stored transaction for the caller's merchant.
	GetPayment(ctx context.Context, orderID string) (*models.PaymentTransaction, error)

	// QueryPaymentFromGateway asks the upstream gateway for the current
	// state of the order and reconciles the stored transaction with it.
	QueryPaymentFromGateway(ctx context.Context, orderID string) (*models.PaymentTransaction, error)

	// ProcessWebhook reconciles a gateway notification. It reports whether
	// the notification was processed; a replay of an already applied
	// notification counts as processed.
	ProcessWebhook(ctx context.Context, reply *models.PaymentReply) bool
}
