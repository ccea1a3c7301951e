// internal/pkg/email/service.go
package email

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Message represents an outbound email.
type Message struct {
	To          []string
	Subject     string
	HTMLContent string
}

// Service sends order confirmations over SMTP. Delivery is best-effort:
// every failure path is logged and discarded, never surfaced to the
// checkout flow.
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// NotifyOrderCreated sends the confirmation for a freshly stored order.
// It satisfies checkout.Notifier and intentionally returns nothing.
func (s *Service) NotifyOrderCreated(ctx context.Context, o *order.Order) {
	if !s.config.Email.Enabled {
		s.logger.WithField("order_id", o.ID).Debug("email disabled, skipping order confirmation")
		return
	}

	msg := &Message{
		To:          []string{o.Email},
		Subject:     fmt.Sprintf("Order confirmation #%d", o.ID),
		HTMLContent: s.renderOrderConfirmation(o),
	}

	if err := s.sendSMTP(ctx, msg); err != nil {
		s.logger.WithField("order_id", o.ID).
			Warnf("failed to send order confirmation: %v", err)
	}
}

// renderOrderConfirmation builds the confirmation body from the order
// snapshot only; it never consults the live catalog.
func (s *Service) renderOrderConfirmation(o *order.Order) string {
	return fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>thank you for your order!</p>
<p>Summary: %s<br>
Total: %d<br>
Shipping: %s<br>
Address: %s</p>
<p>%s</p>
</body></html>`,
		o.CustomerName,
		o.ItemsSummary,
		o.TotalPrice,
		o.ShippingMethod,
		o.Address,
		s.config.Email.FromName,
	)
}
