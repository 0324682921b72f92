package gateway

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/creditco/cupa/internal/pkg/models"
)

const signatureVersion = "1.0"

// PlacePayment signs the order payload and posts it to the upstream gateway.
// Transport failures are errors; an upstream error status is a normal
// response the caller maps to a transaction state.
func (g *PaymentGW) PlacePayment(ctx context.Context, creds models.GatewayCredentials, req *models.GatewayPaymentRequest) (*models.GatewayResponse, error) {
	req.Signature = outboundSignature(req, creds.MerchantKey)
	req.SignatureVersion = signatureVersion

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	endpoint := strings.TrimSuffix(creds.URL, "/") +
		"/merchants/" + url.PathEscape(creds.MerchantID) + "/transactions/"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	g.setHeaders(httpReq, creds)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to place payment %s: %w", req.OrderID, err)
	}
	defer resp.Body.Close()

	return g.decodeResponse(resp)
}

// QueryPayment asks the upstream gateway for the current state of an order.
func (g *PaymentGW) QueryPayment(ctx context.Context, creds models.GatewayCredentials, orderID string) (*models.GatewayResponse, error) {
	endpoint := strings.TrimSuffix(creds.URL, "/") +
		"/merchants/" + url.PathEscape(creds.MerchantID) +
		"/transactions/" + url.PathEscape(orderID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	g.setHeaders(httpReq, creds)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	return g.decodeResponse(resp)
}

func (g *PaymentGW) setHeaders(req *http.Request, creds models.GatewayCredentials) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", creds.APIKey)
}

// wireEnvelope is the upstream response shape: a status envelope plus an
// optional payment reply.
type wireEnvelope struct {
	Response *struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		Detail     string `json:"detail"`
		Reason     string `json:"reason"`
	} `json:"response"`
	Reply json.RawMessage `json:"reply"`
}

func (g *PaymentGW) decodeResponse(resp *http.Response) (*models.GatewayResponse, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	result := &models.GatewayResponse{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var envelope wireEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		g.log.WithField("status_code", resp.StatusCode).
			WithError(err).Warn("unparsable gateway response body")
		return result, nil
	}

	if envelope.Response == nil && len(envelope.Reply) == 0 {
		return result, nil
	}

	message := &models.GatewayMessage{}
	if envelope.Response != nil {
		message.StatusCode = envelope.Response.StatusCode
		message.Message = envelope.Response.Message
		message.Detail = envelope.Response.Detail
		message.Reason = envelope.Response.Reason
	}
	if len(envelope.Reply) > 0 {
		reply, err := DecodeReply(envelope.Reply)
		if err != nil {
			g.log.WithError(err).Warn("unparsable gateway reply")
		} else {
			message.Reply = reply
		}
	}
	result.Message = message

	return result, nil
}

// DecodeReply parses a payment reply while preserving the amount exactly as
// it appeared on the wire. Signatures are computed over that original text.
func DecodeReply(raw json.RawMessage) (*models.PaymentReply, error) {
	var reply models.PaymentReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, err
	}

	var amountOnly struct {
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(raw, &amountOnly); err == nil && len(amountOnly.Amount) > 0 {
		reply.RawAmount = strings.Trim(string(amountOnly.Amount), `"`)
	}

	return &reply, nil
}

// outboundSignature calculates the request signature the upstream gateway
// expects:
//
//	MD5(clientID + lower(orderID) + MD5(merchantKey) + amount + currency + replyURL + backofficeURL)
//
// with absent fields contributing nothing.
func outboundSignature(req *models.GatewayPaymentRequest, merchantKey string) string {
	var clearText strings.Builder

	clearText.WriteString(req.ClientID)
	clearText.WriteString(strings.ToLower(req.OrderID))
	clearText.WriteString(md5Hex(merchantKey))
	clearText.WriteString(req.Amount.String())
	clearText.WriteString(req.Currency)
	clearText.WriteString(req.ReplyURL)
	clearText.WriteString(req.WebhookURL)

	return md5Hex(clearText.String())
}

func md5Hex(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
