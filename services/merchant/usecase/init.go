package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/services/merchant"
)

type MerchantUC struct {
	cfg          *models.Config
	merchantRepo merchant.MerchantRepo
	log          *logrus.Entry
}

// NewMerchantUC creates a new merchant usecase instance
func NewMerchantUC(cfg *models.Config, merchantRepo merchant.MerchantRepo, log *logrus.Entry) *MerchantUC {
	return &MerchantUC{
		cfg:          cfg,
		merchantRepo: merchantRepo,
		log:          log,
	}
}
