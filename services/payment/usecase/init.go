package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/services/merchant"
	"github.com/creditco/cupa/services/payment"
)

type PaymentUC struct {
	cfg             *models.Config
	transactionRepo payment.TransactionRepo
	clientRepo      payment.ClientRepo
	merchantRepo    merchant.MerchantRepo
	paymentGW       payment.PaymentGW
	log             *logrus.Entry
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	cfg *models.Config,
	transactionRepo payment.TransactionRepo,
	clientRepo payment.ClientRepo,
	merchantRepo merchant.MerchantRepo,
	paymentGW payment.PaymentGW,
	log *logrus.Entry,
) *PaymentUC {
	return &PaymentUC{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		merchantRepo:    merchantRepo,
		paymentGW:       paymentGW,
		log:             log,
	}
}
