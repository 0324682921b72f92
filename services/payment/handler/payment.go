package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
)

// CreatePayment accepts a merchant payment order and forwards it upstream.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.paymentUC.CreatePayment(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", txn)
}

// GetPayment returns the stored transaction for the caller's merchant.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	txn, err := h.paymentUC.GetPayment(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", txn)
}

// QueryPayment reconciles the stored transaction with the gateway's current
// view of the order and returns the result.
func (h *PaymentHandler) QueryPayment(c echo.Context) error {
	txn, err := h.paymentUC.QueryPaymentFromGateway(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment queried successfully", txn)
}
