package gateway

import (
	"github.com/creditco/cupa/internal/pkg/models"
)

// PublishStatusChange publishes a transaction status change event. A nil
// producer disables publishing; reconciliation must not depend on the
// message broker being up.
func (g *PaymentGW) PublishStatusChange(event *models.TransactionStatusEvent) error {
	if g.producer == nil {
		return nil
	}
	if err := g.producer.Publish(g.cfg.NSQ.StatusTopic, event); err != nil {
		g.log.WithError(err).WithField("order_id", event.OrderID).
			Warn("failed to publish status change event")
		return err
	}
	return nil
}
