package payment

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/creditco/cupa/services/payment PaymentGW

import (
	"context"

	"github.com/creditco/cupa/internal/pkg/models"
)

// PaymentGW defines the upstream gateway and event publishing interface.
type PaymentGW interface {
	PlacePayment(ctx context.Context, creds models.GatewayCredentials, req *models.GatewayPaymentRequest) (*models.GatewayResponse, error)
	QueryPayment(ctx context.Context, creds models.GatewayCredentials, orderID string) (*models.GatewayResponse, error)
	PublishStatusChange(event *models.TransactionStatusEvent) error
}
