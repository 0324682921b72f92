package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/services/payment"
)

// PaymentHandler handles merchant-facing payment requests and the public
// gateway webhook.
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// RegisterRoutes registers the payment API routes. The merchant-facing group
// runs behind the supplied authentication chain; the webhook endpoint is
// public and authenticated by its signature alone.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, apiMiddleware ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1", apiMiddleware...)
	api.POST("/payments", h.CreatePayment)
	api.GET("/payments/:orderId", h.GetPayment)
	api.POST("/payments/:orderId/query", h.QueryPayment)

	e.GET("/public/webhook", h.ProcessWebhook)
}
