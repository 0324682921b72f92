package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantMode selects which credential set and limit configuration apply.
type MerchantMode string

const (
	MerchantModeTest MerchantMode = "TEST"
	MerchantModeLive MerchantMode = "LIVE"
)

// MerchantStatus represents the lifecycle state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "ACTIVE"
	MerchantStatusInactive  MerchantStatus = "INACTIVE"
	MerchantStatusSuspended MerchantStatus = "SUSPENDED"
)

// GatewayCredentials is the per-mode upstream gateway credential quadruple.
type GatewayCredentials struct {
	URL         string
	MerchantID  string
	MerchantKey string
	APIKey      string
}

// Merchant represents a merchant account with per-mode credentials,
// optional id prefixes and an optional daily amount limit per mode.
type Merchant struct {
	ID     string         `json:"id" db:"id"`
	Name   string         `json:"name" db:"name"`
	Mode   MerchantMode   `json:"mode" db:"mode"`
	Status MerchantStatus `json:"status" db:"status"`

	Balance *decimal.Decimal `json:"balance,omitempty" db:"balance"`

	CupaTestAPIKey string `json:"-" db:"cupa_test_api_key"`
	CupaLiveAPIKey string `json:"-" db:"cupa_live_api_key"`

	RemoteTestURL         string `json:"-" db:"remote_test_url"`
	RemoteTestMerchantID  string `json:"-" db:"remote_test_merchant_id"`
	RemoteTestMerchantKey string `json:"-" db:"remote_test_merchant_key"`
	RemoteTestAPIKey      string `json:"-" db:"remote_test_api_key"`

	RemoteLiveURL         string `json:"-" db:"remote_live_url"`
	RemoteLiveMerchantID  string `json:"-" db:"remote_live_merchant_id"`
	RemoteLiveMerchantKey string `json:"-" db:"remote_live_merchant_key"`
	RemoteLiveAPIKey      string `json:"-" db:"remote_live_api_key"`

	TestOrderIDPrefix  string `json:"testOrderIdPrefix,omitempty" db:"test_order_id_prefix"`
	TestClientIDPrefix string `json:"testClientIdPrefix,omitempty" db:"test_client_id_prefix"`
	LiveOrderIDPrefix  string `json:"liveOrderIdPrefix,omitempty" db:"live_order_id_prefix"`
	LiveClientIDPrefix string `json:"liveClientIdPrefix,omitempty" db:"live_client_id_prefix"`

	TestLimitStartDate   *time.Time       `json:"-" db:"test_limit_start_date"`
	TestLimitStartAmount *decimal.Decimal `json:"-" db:"test_limit_start_amount"`
	TestLimitAfterDate   *time.Time       `json:"-" db:"test_limit_after_date"`
	TestLimitAfterAmount *decimal.Decimal `json:"-" db:"test_limit_after_amount"`

	LiveLimitStartDate   *time.Time       `json:"-" db:"live_limit_start_date"`
	LiveLimitStartAmount *decimal.Decimal `json:"-" db:"live_limit_start_amount"`
	LiveLimitAfterDate   *time.Time       `json:"-" db:"live_limit_after_date"`
	LiveLimitAfterAmount *decimal.Decimal `json:"-" db:"live_limit_after_amount"`

	Version   int64     `json:"version" db:"version"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// APIKeyForMode returns the CUPA-facing API key for the given mode.
func (m *Merchant) APIKeyForMode(mode MerchantMode) string {
	if mode == MerchantModeLive {
		return m.CupaLiveAPIKey
	}
	return m.CupaTestAPIKey
}

// GatewayCredentialsForMode returns the upstream gateway credentials for the
// given mode.
func (m *Merchant) GatewayCredentialsForMode(mode MerchantMode) GatewayCredentials {
	if mode == MerchantModeLive {
		return GatewayCredentials{
			URL:         m.RemoteLiveURL,
			MerchantID:  m.RemoteLiveMerchantID,
			MerchantKey: m.RemoteLiveMerchantKey,
			APIKey:      m.RemoteLiveAPIKey,
		}
	}
	return GatewayCredentials{
		URL:         m.RemoteTestURL,
		MerchantID:  m.RemoteTestMerchantID,
		MerchantKey: m.RemoteTestMerchantKey,
		APIKey:      m.RemoteTestAPIKey,
	}
}

// MerchantKeyByMode returns the upstream merchant key selected by the
// merchant's own mode tag. Used for webhook signature verification.
func (m *Merchant) MerchantKeyByMode() string {
	return m.GatewayCredentialsForMode(m.Mode).MerchantKey
}

// OrderIDPrefixForMode returns the configured order id prefix, empty when unset.
func (m *Merchant) OrderIDPrefixForMode(mode MerchantMode) string {
	if mode == MerchantModeLive {
		return m.LiveOrderIDPrefix
	}
	return m.TestOrderIDPrefix
}

// ClientIDPrefixForMode returns the configured client id prefix, empty when unset.
func (m *Merchant) ClientIDPrefixForMode(mode MerchantMode) string {
	if mode == MerchantModeLive {
		return m.LiveClientIDPrefix
	}
	return m.TestClientIDPrefix
}

// DailyLimitForMode assembles the daily amount limit value object for the
// given mode from the merchant's flat columns.
func (m *Merchant) DailyLimitForMode(mode MerchantMode) DailyAmountLimit {
	if mode == MerchantModeLive {
		return DailyAmountLimit{
			StartDate:   m.LiveLimitStartDate,
			StartAmount: m.LiveLimitStartAmount,
			AfterDate:   m.LiveLimitAfterDate,
			AfterAmount: m.LiveLimitAfterAmount,
		}
	}
	return DailyAmountLimit{
		StartDate:   m.TestLimitStartDate,
		StartAmount: m.TestLimitStartAmount,
		AfterDate:   m.TestLimitAfterDate,
		AfterAmount: m.TestLimitAfterAmount,
	}
}

// Prefixes returns the merchant's non-blank prefix fields in a stable order.
func (m *Merchant) Prefixes() []string {
	var prefixes []string
	for _, p := range []string{m.TestClientIDPrefix, m.TestOrderIDPrefix, m.LiveClientIDPrefix, m.LiveOrderIDPrefix} {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
