// Package apicontext carries the per-request business context. The context
// is an explicit value threaded through context.Context, never a process
// global, so one caller's resolved merchant cannot leak into another
// request.
package apicontext

import (
	"context"
	"time"

	"github.com/creditco/cupa/internal/pkg/models"
)

type contextKey string

const requestContextKey contextKey = "cupa_request_context"

// MerchantContext is the merchant-and-environment fragment resolved from an
// API key or from a single-merchant identity.
type MerchantContext struct {
	MerchantID  string
	Environment models.MerchantMode
	APIKey      string
	Status      models.MerchantStatus

	GatewayURL         string
	GatewayMerchantID  string
	GatewayMerchantKey string
	GatewayAPIKey      string

	OrderIDPrefix  string
	ClientIDPrefix string
	DailyLimit     models.DailyAmountLimit
}

// SatisfiesOrderIDPrefix reports whether the order id carries the configured
// prefix. An unset prefix accepts anything.
func (mc *MerchantContext) SatisfiesOrderIDPrefix(orderID string) bool {
	if mc.OrderIDPrefix == "" {
		return true
	}
	return len(orderID) >= len(mc.OrderIDPrefix) && orderID[:len(mc.OrderIDPrefix)] == mc.OrderIDPrefix
}

// SatisfiesClientIDPrefix reports whether the client id carries the
// configured prefix. An unset prefix accepts anything.
func (mc *MerchantContext) SatisfiesClientIDPrefix(clientID string) bool {
	if mc.ClientIDPrefix == "" {
		return true
	}
	return len(clientID) >= len(mc.ClientIDPrefix) && clientID[:len(mc.ClientIDPrefix)] == mc.ClientIDPrefix
}

// RequestContext holds the business fields derived exactly once per inbound
// merchant-facing request. It is immutable once built and discarded at
// request end.
type RequestContext struct {
	Merchant *MerchantContext
	User     *models.User

	APIKey      string
	OrderID     string
	ClientID    string
	RequesterIP string
	RequestData string

	Endpoint  string
	Method    string
	Timestamp time.Time
}

// MerchantID returns the resolved merchant id, empty when ambiguous.
func (rc *RequestContext) MerchantID() string {
	if rc.Merchant != nil {
		return rc.Merchant.MerchantID
	}
	return ""
}

// Authenticated reports whether the request carries a usable principal:
// either an active merchant resolved from an API key, or a user identity.
func (rc *RequestContext) Authenticated() bool {
	if rc == nil {
		return false
	}
	if rc.User != nil {
		return true
	}
	return rc.Merchant != nil && rc.Merchant.Status == models.MerchantStatusActive
}

// CanAccessMerchant reports whether the caller may act on the merchant.
// API-key principals see only their own merchant; identity principals see
// their access list.
func (rc *RequestContext) CanAccessMerchant(merchantID string) bool {
	if rc == nil || merchantID == "" {
		return false
	}
	if rc.User != nil {
		return rc.User.HasMerchant(merchantID)
	}
	if rc.Merchant != nil {
		return rc.Merchant.MerchantID == merchantID && rc.Merchant.Status == models.MerchantStatusActive
	}
	return false
}

// WithRequestContext stores the request context as an explicit value.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

// FromContext retrieves the request context, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey).(*RequestContext)
	return rc, ok && rc != nil
}
