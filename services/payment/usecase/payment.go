package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/creditco/cupa/internal/pkg/apicontext"
	"github.com/creditco/cupa/internal/pkg/errs"
	"github.com/creditco/cupa/internal/pkg/models"
)

// CreatePayment validates a merchant payment request, records the
// transaction and forwards the order to the upstream gateway. The stored
// transaction starts as RECEIVED and moves to PENDING or FAILED depending on
// the gateway's answer.
func (uc *PaymentUC) CreatePayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentTransaction, error) {
	rc, mc, err := requireMerchantContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.validateRequest(req, mc); err != nil {
		return nil, err
	}
	if !rc.CanAccessMerchant(mc.MerchantID) {
		return nil, errs.Forbidden("you cannot post transactions for merchant: %s", mc.MerchantID)
	}

	merchant, err := uc.merchantRepo.GetByID(ctx, mc.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, errs.Validation("merchant with ID=%s not found", mc.MerchantID)
	}

	if req.Client != nil {
		if err := uc.createOrUpdateClient(ctx, mc.MerchantID, req.ClientID, req.Client); err != nil {
			return nil, err
		}
	}
	client, err := uc.clientRepo.GetByMerchantClientID(ctx, mc.MerchantID, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errs.Validation("client with ID=%s not found", req.ClientID)
	}

	exists, err := uc.transactionRepo.ExistsByMerchantAndOrder(ctx, mc.MerchantID, req.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Validation("duplicate order id %s", req.OrderID)
	}

	now := time.Now().UTC()
	if err := uc.checkDailyLimit(ctx, mc, req, now); err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		MerchantID:   mc.MerchantID,
		ClientID:     client.ID,
		OrderID:      req.OrderID,
		Status:       models.StatusReceived,
		Amount:       req.Amount,
		Currency:     req.Currency,
		PaymentBrand: req.PaymentBrand,
		RequestData:  rc.RequestData,
		RequestedAt:  now,
	}
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	uc.placePayment(ctx, mc, txn, client, req.ReplyURL)
	return txn, nil
}

// GetPayment returns the stored transaction for the caller's merchant.
func (uc *PaymentUC) GetPayment(ctx context.Context, orderID string) (*models.PaymentTransaction, error) {
	_, mc, err := requireMerchantContext(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := uc.transactionRepo.GetByMerchantAndOrder(ctx, mc.MerchantID, orderID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, errs.NotFound("payment transaction not found for order id %s", orderID)
	}
	return txn, nil
}

// QueryPaymentFromGateway asks the upstream gateway for the current state of
// the order and reconciles the stored transaction with the answer.
func (uc *PaymentUC) QueryPaymentFromGateway(ctx context.Context, orderID string) (*models.PaymentTransaction, error) {
	_, mc, err := requireMerchantContext(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := uc.transactionRepo.GetByMerchantAndOrder(ctx, mc.MerchantID, orderID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, errs.NotFound("payment transaction not found for order id %s", orderID)
	}

	resp, err := uc.paymentGW.QueryPayment(ctx, gatewayCredentials(mc), txn.OrderID)
	if err != nil {
		uc.log.WithError(err).WithField("order_id", orderID).Error("gateway query failed")
		return nil, err
	}

	if resp.Message != nil && resp.Message.StatusCode == 200 && resp.Message.Reply != nil {
		// Reread to merge onto the latest state; a webhook may have
		// arrived while the query was in flight.
		latest, err := uc.transactionRepo.GetByID(ctx, txn.ID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			txn = latest
		}

		oldStatus := txn.Status
		if changed := mergeReply(txn, resp.Message.Reply, resp.Body); changed {
			if err := uc.transactionRepo.Update(ctx, txn); err != nil {
				return nil, err
			}
			uc.publishStatusChange(txn, oldStatus)
		}
	}

	return txn, nil
}

func (uc *PaymentUC) validateRequest(req *models.PaymentRequest, mc *apicontext.MerchantContext) error {
	if strings.TrimSpace(req.OrderID) == "" {
		return errs.Validation("order id is required")
	}
	if req.ClientID == "" {
		return errs.Validation("client id is required")
	}
	if !req.Amount.IsPositive() {
		return errs.Validation("amount must be greater than zero")
	}
	if req.Currency == "" {
		return errs.Validation("currency is required")
	}
	if req.PaymentBrand == "" {
		return errs.Validation("payment brand is required")
	}
	if !mc.SatisfiesOrderIDPrefix(req.OrderID) {
		return errs.Validation("order id %q must start with prefix %q", req.OrderID, mc.OrderIDPrefix)
	}
	if !mc.SatisfiesClientIDPrefix(req.ClientID) {
		return errs.Validation("client id %q must start with prefix %q", req.ClientID, mc.ClientIDPrefix)
	}
	return nil
}

// checkDailyLimit admits the transaction against the merchant's daily
// ceiling. An unconfigured limit admits everything. Failed transactions do
// not count towards the day's turnover.
func (uc *PaymentUC) checkDailyLimit(ctx context.Context, mc *apicontext.MerchantContext, req *models.PaymentRequest, now time.Time) error {
	limit := mc.DailyLimit
	if !limit.Configured() {
		return nil
	}

	total, err := uc.transactionRepo.SumAmountForDay(ctx, mc.MerchantID, now)
	if err != nil {
		return err
	}
	if limit.Exceeded(req.Amount, total, now) {
		return errs.Admission("daily amount limit exceeded for merchant %s", mc.MerchantID)
	}
	return nil
}

// createOrUpdateClient creates the client record or refreshes its contact
// details when the payment request carries newer values.
func (uc *PaymentUC) createOrUpdateClient(ctx context.Context, merchantID, clientID string, pc *models.PaymentClient) error {
	existing, err := uc.clientRepo.GetByMerchantClientID(ctx, merchantID, clientID)
	if err != nil {
		return err
	}

	if existing != nil {
		needsUpdate := false
		if pc.Name != "" && pc.Name != existing.Name {
			existing.Name = pc.Name
			needsUpdate = true
		}
		if pc.EmailAddress != "" && pc.EmailAddress != existing.EmailAddress {
			existing.EmailAddress = pc.EmailAddress
			needsUpdate = true
		}
		if pc.MobileNumber != "" && pc.MobileNumber != existing.MobileNumber {
			existing.MobileNumber = pc.MobileNumber
			needsUpdate = true
		}
		if !needsUpdate {
			return nil
		}
		return uc.clientRepo.Upsert(ctx, existing)
	}

	return uc.clientRepo.Upsert(ctx, &models.Client{
		MerchantID:       merchantID,
		MerchantClientID: clientID,
		Name:             pc.Name,
		EmailAddress:     pc.EmailAddress,
		MobileNumber:     pc.MobileNumber,
		Valid:            true,
	})
}

// placePayment forwards the stored transaction upstream and applies the
// gateway's answer. Failures here never fail the create call; the caller
// sees the resulting transaction state instead.
func (uc *PaymentUC) placePayment(ctx context.Context, mc *apicontext.MerchantContext, txn *models.PaymentTransaction, client *models.Client, replyURL string) {
	gwReq := &models.GatewayPaymentRequest{
		OrderID:  txn.OrderID,
		ClientID: client.MerchantClientID,
		Amount:   txn.Amount,
		Currency: txn.Currency,
		CardType: txn.PaymentBrand,
		ReplyURL: replyURL,
		ClientDetail: &models.PaymentClient{
			Name:         client.Name,
			EmailAddress: client.EmailAddress,
			MobileNumber: client.MobileNumber,
		},
	}
	if base := uc.cfg.API.WebhookBaseURL; base != "" {
		gwReq.WebhookURL = strings.TrimSuffix(base, "/") + "/public/webhook"
	}

	if requestData, err := json.Marshal(gwReq); err == nil {
		txn.RequestData = string(requestData)
	}

	resp, err := uc.paymentGW.PlacePayment(ctx, gatewayCredentials(mc), gwReq)
	if err != nil {
		uc.log.WithError(err).WithField("order_id", txn.OrderID).Error("error placing payment")
		txn.Status = models.StatusFailed
		txn.StatusDescription = "ERROR: " + err.Error()
	} else {
		txn.InitialResponseData = resp.Body
		switch {
		case resp.Message == nil:
			txn.Status = models.StatusFailed
			txn.StatusDescription = "ERROR: Gateway response is null"
		case resp.Message.StatusCode == 200 || resp.Message.StatusCode == 201 || resp.Message.StatusCode == 210:
			txn.Status = models.StatusPending
			txn.StatusDescription = prepareStatusDescription(resp.Message)
		default:
			txn.Status = models.StatusFailed
			txn.StatusDescription = prepareStatusDescription(resp.Message)
		}
	}

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		uc.log.WithError(err).WithField("order_id", txn.OrderID).Error("failed to store placement result")
	}
}

// prepareStatusDescription flattens a gateway status envelope into a single
// line: detail and reason joined when both exist, then detail, then reason,
// then message, then a fixed fallback.
func prepareStatusDescription(message *models.GatewayMessage) string {
	const fallback = "No status description available"
	if message == nil {
		return fallback
	}

	detail := strings.TrimSpace(message.Detail)
	reason := strings.TrimSpace(message.Reason)
	text := strings.TrimSpace(message.Message)

	switch {
	case detail != "" && reason != "":
		return detail + ". " + reason
	case detail != "":
		return detail
	case reason != "":
		return reason
	case text != "":
		return text
	}
	return fallback
}

func (uc *PaymentUC) publishStatusChange(txn *models.PaymentTransaction, oldStatus models.TransactionStatus) {
	if txn.Status == oldStatus {
		return
	}
	_ = uc.paymentGW.PublishStatusChange(&models.TransactionStatusEvent{
		TransactionID: txn.ID,
		MerchantID:    txn.MerchantID,
		OrderID:       txn.OrderID,
		OldStatus:     oldStatus,
		NewStatus:     txn.Status,
		OccurredAt:    time.Now().UTC(),
	})
}

func gatewayCredentials(mc *apicontext.MerchantContext) models.GatewayCredentials {
	return models.GatewayCredentials{
		URL:         mc.GatewayURL,
		MerchantID:  mc.GatewayMerchantID,
		MerchantKey: mc.GatewayMerchantKey,
		APIKey:      mc.GatewayAPIKey,
	}
}

func requireMerchantContext(ctx context.Context) (*apicontext.RequestContext, *apicontext.MerchantContext, error) {
	rc, ok := apicontext.FromContext(ctx)
	if !ok {
		return nil, nil, errs.Validation("merchant context is required")
	}
	if rc.Merchant == nil || rc.Merchant.MerchantID == "" {
		return nil, nil, errs.Validation("merchant context is required")
	}
	return rc, rc.Merchant, nil
}
