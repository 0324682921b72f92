package models

import "time"

// Client is a merchant's end customer. The merchant-scoped identifier
// (MerchantClientID) is the one appearing in payment requests and webhooks.
type Client struct {
	ID               string    `json:"id" db:"id"`
	MerchantID       string    `json:"merchantId" db:"merchant_id"`
	MerchantClientID string    `json:"merchantClientId" db:"merchant_client_id"`
	Name             string    `json:"name,omitempty" db:"name"`
	EmailAddress     string    `json:"emailAddress,omitempty" db:"email_address"`
	MobileNumber     string    `json:"mobileNumber,omitempty" db:"mobile_number"`
	Valid            bool      `json:"valid" db:"valid"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
