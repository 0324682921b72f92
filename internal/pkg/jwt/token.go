package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/creditco/cupa/internal/pkg/models"
)

// Claims carried by back-office identity tokens. Merchant access travels as
// an explicit claim so the API never has to consult the identity provider.
const (
	ClaimUserID      = "user_id"
	ClaimLogin       = "login"
	ClaimRole        = "role"
	ClaimMerchantIDs = "merchant_ids"
)

// RoleAdmin grants access to every merchant.
const RoleAdmin = "admin"

// GenerateToken generates a signed identity token for the given user.
func GenerateToken(user *models.User, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	role := "user"
	if user.Admin {
		role = RoleAdmin
	}

	claims := jwt.MapClaims{
		ClaimUserID:      user.ID,
		ClaimLogin:       user.Login,
		ClaimRole:        role,
		ClaimMerchantIDs: strings.Join(user.MerchantIDs, ","),
		"exp":            expiresAt,
		"iss":            cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns the identity it asserts.
func ValidateToken(tokenString string, secret string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	user := &models.User{
		ID:    stringClaim(claims, ClaimUserID),
		Login: stringClaim(claims, ClaimLogin),
		Admin: stringClaim(claims, ClaimRole) == RoleAdmin,
	}
	if ids := stringClaim(claims, ClaimMerchantIDs); ids != "" {
		user.MerchantIDs = strings.Split(ids, ",")
	}
	if user.Login == "" {
		return nil, fmt.Errorf("invalid token: missing login claim")
	}

	return user, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
