package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/pkg/signature"
)

// ProcessWebhook reconciles a gateway notification with the stored
// transaction. The signature is verified before any transaction lookup so
// an unauthenticated caller learns nothing about stored order ids. A replay
// of an already applied notification changes nothing and still counts as
// processed.
func (uc *PaymentUC) ProcessWebhook(ctx context.Context, reply *models.PaymentReply) bool {
	if reply == nil || reply.OrderID == "" || reply.MerchantID == "" {
		uc.log.Warn("webhook missing required fields")
		return false
	}

	log := uc.log.WithFields(logrus.Fields{
		"order_id":            reply.OrderID,
		"gateway_merchant_id": reply.MerchantID,
	})

	merchant, err := uc.merchantRepo.GetByGatewayMerchantID(ctx, reply.MerchantID)
	if err != nil {
		log.WithError(err).Error("merchant lookup failed")
		return false
	}
	if merchant == nil {
		log.Warn("merchant not found for gateway merchant id")
		return false
	}

	merchantKey := merchant.MerchantKeyByMode()
	if merchantKey == "" {
		log.Error("cannot verify signature: merchant key not configured")
		return false
	}
	if !signature.Verify(reply, merchantKey) {
		log.Error("webhook signature verification failed")
		return false
	}

	txn, err := uc.transactionRepo.GetByMerchantAndOrder(ctx, merchant.ID, reply.OrderID)
	if err != nil {
		log.WithError(err).Error("transaction lookup failed")
		return false
	}
	if txn == nil {
		log.Warn("no payment transaction found for webhook")
		return false
	}

	oldStatus := txn.Status
	if changed := mergeReply(txn, reply, webhookBody(reply)); changed {
		now := time.Now().UTC()
		txn.CallbackAt = &now

		if err := uc.transactionRepo.Update(ctx, txn); err != nil {
			log.WithError(err).Error("failed to store webhook result")
			return false
		}
		uc.publishStatusChange(txn, oldStatus)
	}

	return true
}

// statusFromReply maps a gateway reply onto a transaction status. The result
// code takes precedence over the success flag; an unmappable combination
// yields ok=false and the stored status is left alone.
func statusFromReply(reply *models.PaymentReply) (models.TransactionStatus, bool) {
	if reply == nil {
		return "", false
	}

	switch reply.Result {
	case "0":
		return models.StatusSuccess, true
	case "1":
		return models.StatusPending, true
	case "11":
		return models.StatusAbandoned, true
	}

	switch reply.Success {
	case "Y":
		return models.StatusSuccess, true
	case "N":
		return models.StatusFailed, true
	}

	return "", false
}

// mergeReply copies reply fields onto the transaction and reports whether
// anything actually changed. The callback blob is only stored when a change
// happened, so replays leave the row untouched.
func mergeReply(txn *models.PaymentTransaction, reply *models.PaymentReply, sourceBody string) bool {
	if reply == nil {
		return false
	}

	changed := false

	if reply.Amount != nil && !txn.Amount.Equal(*reply.Amount) {
		txn.Amount = *reply.Amount
		changed = true
	}
	if reply.Balance != nil && (txn.Balance == nil || !txn.Balance.Equal(*reply.Balance)) {
		txn.Balance = reply.Balance
		changed = true
	}
	if reply.Detail != "" && reply.Detail != txn.StatusDescription {
		txn.StatusDescription = reply.Detail
		changed = true
	}
	if newStatus, ok := statusFromReply(reply); ok && newStatus != txn.Status {
		txn.Status = newStatus
		changed = true
	}

	if changed {
		txn.CallbackData = sourceBody
	}
	return changed
}

func webhookBody(reply *models.PaymentReply) string {
	body, err := json.Marshal(reply)
	if err != nil {
		return "Webhook notification"
	}
	return string(body)
}
