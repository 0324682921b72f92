package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/models"
)

func testGateway(t *testing.T) *PaymentGW {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPaymentGW(&models.Config{
		Gateway: models.GatewayClientConfig{TimeoutSeconds: 5},
	}, nil, logrus.NewEntry(logger))
}

func testCredentials(serverURL string) models.GatewayCredentials {
	return models.GatewayCredentials{
		URL:         serverURL,
		MerchantID:  "GW-M1",
		MerchantKey: "merchant-key",
		APIKey:      "gw-api-key",
	}
}

func TestPlacePayment(t *testing.T) {
	var received models.GatewayPaymentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/merchants/GW-M1/transactions/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "gw-api-key", r.Header.Get("x-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {"statusCode": 201, "message": "Created", "detail": "Transaction accepted"},
			"reply": {"orderID": "ORD-1", "amount": "100.00", "success": "Y"}
		}`))
	}))
	defer server.Close()

	req := &models.GatewayPaymentRequest{
		OrderID:  "ORD-1",
		ClientID: "CLI-1",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "USD",
		CardType: "VISA",
	}

	resp, err := testGateway(t).PlacePayment(context.Background(), testCredentials(server.URL), req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, resp.Message)
	assert.Equal(t, 201, resp.Message.StatusCode)
	assert.Equal(t, "Transaction accepted", resp.Message.Detail)
	assert.NotNil(t, resp.Message.Reply)
	assert.Equal(t, "ORD-1", resp.Message.Reply.OrderID)
	assert.Equal(t, "100.00", resp.Message.Reply.RawAmount)

	assert.Equal(t, signatureVersion, received.SignatureVersion)
	assert.Equal(t, outboundSignature(req, "merchant-key"), received.Signature)
}

func TestPlacePayment_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	req := &models.GatewayPaymentRequest{
		OrderID: "ORD-1",
		Amount:  decimal.NewFromInt(100),
	}

	resp, err := testGateway(t).PlacePayment(context.Background(), testCredentials(server.URL), req)

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ORD-1")
}

func TestQueryPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/merchants/GW-M1/transactions/ORD-1", r.URL.Path)
		assert.Equal(t, "gw-api-key", r.Header.Get("x-api-key"))

		_, _ = w.Write([]byte(`{
			"response": {"statusCode": 200},
			"reply": {"orderID": "ORD-1", "result": "0"}
		}`))
	}))
	defer server.Close()

	resp, err := testGateway(t).QueryPayment(context.Background(), testCredentials(server.URL), "ORD-1")

	assert.NoError(t, err)
	assert.NotNil(t, resp.Message)
	assert.Equal(t, 200, resp.Message.StatusCode)
	assert.Equal(t, "0", resp.Message.Reply.Result)
}

func TestDecodeResponse_UnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	resp, err := testGateway(t).QueryPayment(context.Background(), testCredentials(server.URL), "ORD-1")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Nil(t, resp.Message)
	assert.Equal(t, "upstream exploded", resp.Body)
}

func TestDecodeReply_PreservesWireAmount(t *testing.T) {
	reply, err := DecodeReply(json.RawMessage(`{"orderID":"ORD-1","amount":"100.10","success":"Y"}`))
	assert.NoError(t, err)
	assert.Equal(t, "100.10", reply.RawAmount)
	assert.True(t, reply.Amount.Equal(decimal.RequireFromString("100.10")))

	reply, err = DecodeReply(json.RawMessage(`{"orderID":"ORD-1","amount":100.10}`))
	assert.NoError(t, err)
	assert.Equal(t, "100.10", reply.RawAmount)
}

func TestOutboundSignature(t *testing.T) {
	req := &models.GatewayPaymentRequest{
		OrderID:  "ORD-1",
		ClientID: "CLI-1",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "USD",
	}

	first := outboundSignature(req, "merchant-key")
	assert.Len(t, first, 32)

	// Order id case does not change the signature.
	upper := &models.GatewayPaymentRequest{
		OrderID:  "ord-1",
		ClientID: "CLI-1",
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "USD",
	}
	assert.Equal(t, first, outboundSignature(upper, "merchant-key"))

	// A different merchant key yields a different signature.
	assert.NotEqual(t, first, outboundSignature(req, "other-key"))

	// The webhook callback URL participates in the clear text.
	withWebhook := &models.GatewayPaymentRequest{
		OrderID:    "ORD-1",
		ClientID:   "CLI-1",
		Amount:     decimal.RequireFromString("100.00"),
		Currency:   "USD",
		WebhookURL: "https://cupa.example.com/public/webhook",
	}
	assert.NotEqual(t, first, outboundSignature(withWebhook, "merchant-key"))
}
