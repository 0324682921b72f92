package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/internal/pkg/apicontext"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
)

const requestContextKey = "request_context"

// requestDataPlaceholder is recorded when the request body cannot be read.
// Extraction failures must never fail the request itself.
const requestDataPlaceholder = "Unable to extract request data"

// MerchantDirectory looks up merchants for identity-based requests.
type MerchantDirectory interface {
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
}

// bodyFields are the business identifiers extracted from JSON request bodies.
type bodyFields struct {
	OrderID  string `json:"orderId"`
	ClientID string `json:"clientId"`
	Client   *struct {
		MerchantClientID string `json:"merchantClientId"`
	} `json:"client"`
}

// BusinessContext derives the per-request business context exactly once and
// threads it through the request's context.Context. It runs after the API
// key gate and identity middleware and combines their results:
//
//   - an API-key principal pins the merchant context to that key's merchant
//   - an identity principal with exactly one accessible merchant adopts it
//   - an identity principal with several merchants and no API key leaves the
//     merchant fields empty; operations that need a merchant reject later
//
// An identity caller presenting an API key for a merchant outside their
// access list is rejected here.
func BusinessContext(directory MerchantDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rc := &apicontext.RequestContext{
				RequesterIP: utils.ClientIP(req),
				Endpoint:    req.URL.Path,
				Method:      req.Method,
				Timestamp:   time.Now().UTC(),
			}

			if mc, ok := c.Get(merchantContextKey).(*apicontext.MerchantContext); ok {
				rc.Merchant = mc
				rc.APIKey = mc.APIKey
			}
			if user, ok := c.Get(identityUserKey).(*models.User); ok {
				rc.User = user
			}

			if rc.User != nil && rc.Merchant != nil && !rc.User.HasMerchant(rc.Merchant.MerchantID) {
				return utils.ForbiddenResponse(c, "API key does not belong to an accessible merchant")
			}

			if rc.User != nil && rc.Merchant == nil && len(rc.User.MerchantIDs) == 1 {
				if merchant, err := directory.GetMerchant(req.Context(), rc.User.MerchantIDs[0]); err == nil && merchant != nil {
					rc.Merchant = MerchantContextFrom(merchant, merchant.Mode, "")
				}
			}

			extractBusinessFields(c, rc)

			c.Set(requestContextKey, rc)
			c.SetRequest(req.WithContext(apicontext.WithRequestContext(req.Context(), rc)))

			return next(c)
		}
	}
}

// extractBusinessFields pulls the order and client identifiers and a request
// snapshot out of the inbound request without consuming the body.
func extractBusinessFields(c echo.Context, rc *apicontext.RequestContext) {
	req := c.Request()

	rc.OrderID = c.Param("orderId")

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			rc.RequestData = requestDataPlaceholder
			req.Body = io.NopCloser(bytes.NewReader(nil))
			return
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	switch {
	case len(body) > 0:
		rc.RequestData = string(body)
	case req.URL.RawQuery != "":
		rc.RequestData = "Query: " + req.URL.RawQuery
	}

	if len(body) == 0 {
		return
	}

	var fields bodyFields
	if err := json.Unmarshal(body, &fields); err != nil {
		return
	}
	if rc.OrderID == "" {
		rc.OrderID = fields.OrderID
	}
	rc.ClientID = fields.ClientID
	if rc.ClientID == "" && fields.Client != nil {
		rc.ClientID = fields.Client.MerchantClientID
	}
}

// RequireAuth rejects requests that carry no usable principal. It runs after
// BusinessContext so both credential forms have been evaluated.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := GetRequestContext(c)
			if !rc.Authenticated() {
				return utils.UnauthorizedResponse(c, "")
			}
			return next(c)
		}
	}
}

// GetRequestContext extracts the business context from the Echo context.
func GetRequestContext(c echo.Context) *apicontext.RequestContext {
	if rc, ok := c.Get(requestContextKey).(*apicontext.RequestContext); ok {
		return rc
	}
	return nil
}
