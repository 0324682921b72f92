package gateway

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/creditco/cupa/internal/pkg/models"
	nsqpkg "github.com/creditco/cupa/internal/pkg/nsq"
)

// PaymentGW talks to the upstream payment gateway and publishes status
// change events.
type PaymentGW struct {
	cfg        *models.Config
	httpClient *http.Client
	producer   *nsqpkg.Producer
	log        *logrus.Entry
}

// NewPaymentGW creates a new payment gateway instance
func NewPaymentGW(cfg *models.Config, producer *nsqpkg.Producer, log *logrus.Entry) *PaymentGW {
	return &PaymentGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second,
		},
		producer: producer,
		log:      log,
	}
}
