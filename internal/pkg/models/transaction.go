package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus tracks the state of a payment transaction lifecycle.
type TransactionStatus string

const (
	StatusReceived  TransactionStatus = "RECEIVED"
	StatusPending   TransactionStatus = "PENDING"
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusFailed    TransactionStatus = "FAILED"
	StatusAbandoned TransactionStatus = "ABANDONED"
)

// IsTerminal reports whether no further transition is expected from the status.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusAbandoned:
		return true
	}
	return false
}

// PaymentTransaction is the unit of work: created once per order id per
// merchant, mutated only in response to creation, gateway acceptance or
// webhook arrival, never deleted.
type PaymentTransaction struct {
	ID                   string            `json:"id" db:"id"`
	MerchantID           string            `json:"merchantId" db:"merchant_id"`
	ClientID             string            `json:"clientId" db:"client_id"`
	OrderID              string            `json:"orderId" db:"order_id"`
	GatewayTransactionID string            `json:"gatewayTransactionId,omitempty" db:"gateway_transaction_id"`
	Status               TransactionStatus `json:"status" db:"status"`
	StatusDescription    string            `json:"statusDescription,omitempty" db:"status_description"`
	Amount               decimal.Decimal   `json:"amount" db:"amount"`
	Balance              *decimal.Decimal  `json:"balance,omitempty" db:"balance"`
	Currency             string            `json:"currency" db:"currency"`
	PaymentBrand         string            `json:"paymentBrand" db:"payment_brand"`

	// Raw payload blobs kept for audit replay only; the core never parses
	// them after initial validation.
	RequestData         string `json:"-" db:"request_data"`
	InitialResponseData string `json:"-" db:"initial_response_data"`
	CallbackData        string `json:"-" db:"callback_data"`

	RequestedAt time.Time  `json:"requestedAt" db:"requested_at"`
	CallbackAt  *time.Time `json:"callbackAt,omitempty" db:"callback_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// TransactionStatusEvent is published when a stored transaction's status
// changes as the result of a gateway reply or webhook notification.
type TransactionStatusEvent struct {
	TransactionID string            `json:"transaction_id"`
	MerchantID    string            `json:"merchant_id"`
	OrderID       string            `json:"order_id"`
	OldStatus     TransactionStatus `json:"old_status"`
	NewStatus     TransactionStatus `json:"new_status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
