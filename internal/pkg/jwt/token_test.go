package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/models"
)

func tokenConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "cupa",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := tokenConfig()
	user := &models.User{
		ID:          "U1",
		Login:       "ops",
		Admin:       false,
		MerchantIDs: []string{"M1", "M2"},
	}

	token, expiresAt, err := GenerateToken(user, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	validated, err := ValidateToken(token, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "U1", validated.ID)
	assert.Equal(t, "ops", validated.Login)
	assert.False(t, validated.Admin)
	assert.Equal(t, []string{"M1", "M2"}, validated.MerchantIDs)
}

func TestValidateToken_AdminRole(t *testing.T) {
	cfg := tokenConfig()
	user := &models.User{ID: "U1", Login: "root", Admin: true}

	token, _, err := GenerateToken(user, cfg)
	assert.NoError(t, err)

	validated, err := ValidateToken(token, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.True(t, validated.Admin)
	assert.Empty(t, validated.MerchantIDs)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := tokenConfig()
	token, _, err := GenerateToken(&models.User{ID: "U1", Login: "ops"}, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
