package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentClient carries the optional client details embedded in a payment
// request. The client record is created or refreshed from it.
type PaymentClient struct {
	Name         string `json:"name,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

// PaymentRequest is the merchant-facing payload for creating a payment.
type PaymentRequest struct {
	OrderID      string          `json:"orderId"`
	ClientID     string          `json:"clientId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	PaymentBrand string          `json:"paymentBrand"`
	ReplyURL     string          `json:"replyUrl,omitempty"`
	Client       *PaymentClient  `json:"client,omitempty"`
}

// PaymentReply is the gateway's notification payload, arriving either as a
// webhook or as the body of a query response.
//
// RawAmount preserves the amount exactly as it appeared on the wire; the
// signature is computed over that text, not over the parsed value.
type PaymentReply struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	RawAmount  string           `json:"-"`
	Balance    *decimal.Decimal `json:"balance,omitempty"`
	ClientID   string           `json:"clientID,omitempty"`
	Currency   string           `json:"currency,omitempty"`
	Date       *time.Time       `json:"date,omitempty"`
	Detail     string           `json:"detail,omitempty"`
	MerchantID string           `json:"merchantID,omitempty"`
	OrderID    string           `json:"orderID,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Result     string           `json:"result,omitempty"`
	Signature  string           `json:"signature,omitempty"`
	Success    string           `json:"success,omitempty"`
}

// SignatureAmount returns the amount text the signature covers.
func (r *PaymentReply) SignatureAmount() string {
	if r.RawAmount != "" {
		return r.RawAmount
	}
	if r.Amount != nil {
		return r.Amount.String()
	}
	return ""
}

// GatewayMessage is the status envelope of an upstream gateway response.
// StatusCode is the gateway's own status, carried inside the envelope and
// authoritative over the transport-level HTTP status.
type GatewayMessage struct {
	StatusCode int           `json:"statusCode,omitempty"`
	Message    string        `json:"message,omitempty"`
	Detail     string        `json:"detail,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	Reply      *PaymentReply `json:"reply,omitempty"`
}

// GatewayResponse is the transport-level result of an upstream gateway call.
type GatewayResponse struct {
	StatusCode int
	Message    *GatewayMessage
	Body       string
}

// GatewayPaymentRequest is the order payload forwarded to the upstream
// gateway. Signature and SignatureVersion are filled in by the gateway
// client just before sending.
type GatewayPaymentRequest struct {
	OrderID          string          `json:"orderID"`
	ClientID         string          `json:"clientID"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	CardType         string          `json:"cardType"`
	ReplyURL         string          `json:"replyURL,omitempty"`
	WebhookURL       string          `json:"backofficeURL,omitempty"`
	ClientDetail     *PaymentClient  `json:"client,omitempty"`
	Signature        string          `json:"signature,omitempty"`
	SignatureVersion string          `json:"signatureVersion,omitempty"`
}
