package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/creditco/cupa/internal/pkg/jwt"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
)

// AuthHandler issues back-office identity tokens for the bootstrap admin
// account configured in the environment.
type AuthHandler struct {
	cfg *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *models.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRoutes registers the token issuance route.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/internal/auth/token", h.IssueToken)
}

type tokenRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// IssueToken exchanges the bootstrap admin credentials for a signed admin
// token.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth := h.cfg.Auth
	if auth.AdminLogin == "" || auth.AdminPasswordHash == "" {
		return utils.UnauthorizedResponse(c, "Token issuance is not configured")
	}
	if req.Login != auth.AdminLogin {
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(auth.AdminPasswordHash), []byte(req.Password)); err != nil {
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	user := &models.User{ID: auth.AdminLogin, Login: auth.AdminLogin, Admin: true}
	token, expiresAt, err := jwtpkg.GenerateToken(user, h.cfg)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to issue token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token issued successfully", tokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
