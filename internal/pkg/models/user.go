package models

// User is a back-office identity. Merchant access is carried as an explicit
// list on the value itself rather than inherited from the identity provider.
type User struct {
	ID          string   `json:"id"`
	Login       string   `json:"login"`
	Admin       bool     `json:"admin"`
	MerchantIDs []string `json:"merchantIds"`
}

// HasMerchant reports whether the user may act on behalf of the merchant.
func (u *User) HasMerchant(merchantID string) bool {
	if u.Admin {
		return true
	}
	for _, id := range u.MerchantIDs {
		if id == merchantID {
			return true
		}
	}
	return false
}
