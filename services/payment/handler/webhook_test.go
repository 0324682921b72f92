package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/services/payment/mocks"
)

func callWebhook(t *testing.T, h *PaymentHandler, params url.Values) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/public/webhook?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ProcessWebhook(c))
	return rec.Code
}

func webhookParams() url.Values {
	return url.Values{
		"merchantID": {"GW-M1"},
		"orderID":    {"ORD-1"},
		"clientID":   {"CLI-1"},
		"currency":   {"USD"},
		"success":    {"Y"},
		"amount":     {"100.00"},
		"signature":  {"abc123"},
	}
}

func TestProcessWebhook_Processed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reply *models.PaymentReply) bool {
			assert.Equal(t, "GW-M1", reply.MerchantID)
			assert.Equal(t, "ORD-1", reply.OrderID)
			assert.Equal(t, "CLI-1", reply.ClientID)
			assert.Equal(t, "Y", reply.Success)
			assert.Equal(t, "abc123", reply.Signature)
			assert.Equal(t, "100.00", reply.RawAmount)
			assert.NotNil(t, reply.Amount)
			assert.Equal(t, "100", reply.Amount.String())
			return true
		})

	code := callWebhook(t, NewPaymentHandler(uc), webhookParams())

	assert.Equal(t, http.StatusOK, code)
}

func TestProcessWebhook_NotProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).Return(false)

	code := callWebhook(t, NewPaymentHandler(uc), webhookParams())

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProcessWebhook_MissingSignatureIsSilentlyAccepted(t *testing.T) {
	// No usecase expectation: an incomplete notification is dropped without
	// processing and without an error the caller could learn from.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)

	params := webhookParams()
	params.Del("signature")

	code := callWebhook(t, NewPaymentHandler(uc), params)

	assert.Equal(t, http.StatusOK, code)
}

func TestProcessWebhook_CamelCaseParamsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reply *models.PaymentReply) bool {
			assert.Equal(t, "GW-M1", reply.MerchantID)
			assert.Equal(t, "ORD-1", reply.OrderID)
			return true
		})

	params := url.Values{
		"merchantId": {"GW-M1"},
		"orderId":    {"ORD-1"},
		"signature":  {"abc123"},
	}

	code := callWebhook(t, NewPaymentHandler(uc), params)

	assert.Equal(t, http.StatusOK, code)
}

func TestProcessWebhook_OriginalCaseWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reply *models.PaymentReply) bool {
			assert.Equal(t, "ORD-UPPER", reply.OrderID)
			return true
		})

	params := webhookParams()
	params.Set("orderID", "ORD-UPPER")
	params.Set("orderId", "ORD-lower")

	code := callWebhook(t, NewPaymentHandler(uc), params)

	assert.Equal(t, http.StatusOK, code)
}

func TestProcessWebhook_UnparsableAmountKeepsRawText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reply *models.PaymentReply) bool {
			assert.Equal(t, "1,000.00", reply.RawAmount)
			assert.Nil(t, reply.Amount)
			return true
		})

	params := webhookParams()
	params.Set("amount", "1,000.00")

	code := callWebhook(t, NewPaymentHandler(uc), params)

	assert.Equal(t, http.StatusOK, code)
}
