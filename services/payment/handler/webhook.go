package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/creditco/cupa/internal/pkg/models"
)

// ProcessWebhook handles gateway payment notifications arriving as query
// parameters. Identifier parameters are accepted in both original-case and
// camel-case spellings; the original-case value wins when both are present.
//
// A request missing the merchant id, order id or signature is answered with
// a bare 200 and no processing, so probing clients learn nothing about
// which fields matter.
func (h *PaymentHandler) ProcessWebhook(c echo.Context) error {
	merchantID := firstParam(c, "merchantID", "merchantId")
	orderID := firstParam(c, "orderID", "orderId")
	clientID := firstParam(c, "clientID", "clientId")
	sig := c.QueryParam("signature")

	if merchantID == "" || orderID == "" || sig == "" {
		return c.NoContent(http.StatusOK)
	}

	reply := &models.PaymentReply{
		Currency:   c.QueryParam("currency"),
		Success:    c.QueryParam("success"),
		MerchantID: merchantID,
		OrderID:    orderID,
		ClientID:   clientID,
		Signature:  sig,
		Detail:     c.QueryParam("detail"),
	}

	// The raw amount text participates in the signature even when it does
	// not parse as a decimal.
	if raw := strings.TrimSpace(c.QueryParam("amount")); raw != "" {
		reply.RawAmount = raw
		if amount, err := decimal.NewFromString(raw); err == nil {
			reply.Amount = &amount
		}
	}

	if processed := h.paymentUC.ProcessWebhook(c.Request().Context(), reply); !processed {
		return c.NoContent(http.StatusBadRequest)
	}
	return c.NoContent(http.StatusOK)
}

func firstParam(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := c.QueryParam(name); v != "" {
			return v
		}
	}
	return ""
}
