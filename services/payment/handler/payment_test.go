package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/errs"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
	"github.com/creditco/cupa/services/payment/mocks"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreatePaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.PaymentRequest) (*models.PaymentTransaction, error) {
			assert.Equal(t, "ORD-1", req.OrderID)
			assert.Equal(t, "CLI-1", req.ClientID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("100.50")))
			return &models.PaymentTransaction{
				ID:      "T1",
				OrderID: req.OrderID,
				Status:  models.StatusPending,
			}, nil
		})

	body := `{"orderId":"ORD-1","clientId":"CLI-1","amount":100.50,"currency":"USD","paymentBrand":"VISA"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, NewPaymentHandler(uc).CreatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment created successfully", resp.Message)
}

func TestCreatePaymentHandler_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, NewPaymentHandler(uc).CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentHandler_AdmissionRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		Return(nil, errs.Admission("daily amount limit exceeded for merchant M1"))

	body := `{"orderId":"ORD-1","clientId":"CLI-1","amount":100,"currency":"USD","paymentBrand":"VISA"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, NewPaymentHandler(uc).CreatePayment(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().GetPayment(gomock.Any(), "ORD-1").Return(&models.PaymentTransaction{
		ID:      "T1",
		OrderID: "ORD-1",
		Status:  models.StatusSuccess,
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/ORD-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues("ORD-1")

	assert.NoError(t, NewPaymentHandler(uc).GetPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestGetPaymentHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().GetPayment(gomock.Any(), "ORD-404").
		Return(nil, errs.NotFound("payment transaction not found for order id ORD-404"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/ORD-404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues("ORD-404")

	assert.NoError(t, NewPaymentHandler(uc).GetPayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQueryPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().QueryPaymentFromGateway(gomock.Any(), "ORD-1").Return(&models.PaymentTransaction{
		ID:      "T1",
		OrderID: "ORD-1",
		Status:  models.StatusSuccess,
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/ORD-1/query", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues("ORD-1")

	assert.NoError(t, NewPaymentHandler(uc).QueryPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Payment queried successfully", decodeResponse(t, rec).Message)
}
