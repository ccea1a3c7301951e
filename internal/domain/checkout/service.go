// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// ErrEmptyCart is returned when checkout is attempted with a cart that is
// empty or assembles to zero lines. Callers redirect to the browse page;
// no order row is created and the cart token is left untouched.
var ErrEmptyCart = errors.New("cart is empty")

// OrderStore is the slice of the order service checkout depends on.
type OrderStore interface {
	CreateOrder(draft *order.Draft, customer order.Customer) (*order.Order, error)
}

// Notifier delivers the order confirmation. Implementations never return an
// error: delivery is best-effort and failure is swallowed internally.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, o *order.Order)
}

// CompleteOrderRequest represents the checkout form submission.
type CompleteOrderRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required"`
	Shipping string `form:"shipping" binding:"required,oneof=delivery pickup"`
	Address  string `form:"address"`
}

// Service orchestrates checkout: assemble the cart against the live
// catalog, persist the order, then notify best-effort.
type Service struct {
	assembler *order.Assembler
	store     OrderStore
	notifier  Notifier
	logger    *logrus.Logger
}

// NewService creates a new checkout service
func NewService(assembler *order.Assembler, store OrderStore, notifier Notifier, logger *logrus.Logger) *Service {
	return &Service{
		assembler: assembler,
		store:     store,
		notifier:  notifier,
		logger:    logger,
	}
}

// Preview resolves the cart for the checkout page. Ghost lines are already
// skipped, so the displayed total matches what an immediate completion
// would charge.
func (s *Service) Preview(c cart.Cart) (*order.Draft, error) {
	return s.assembler.Assemble(c, order.ShippingPickup, "")
}

// CompleteOrder materializes the cart into a persisted order. The order is
// complete the instant it is stored; the confirmation email is dispatched
// in the background and its outcome is deliberately discarded.
func (s *Service) CompleteOrder(ctx context.Context, c cart.Cart, req *CompleteOrderRequest) (*order.Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	draft, err := s.assembler.Assemble(c, req.Shipping, req.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble cart: %w", err)
	}
	if draft.IsEmpty() {
		// Every carted product has since been deleted.
		return nil, ErrEmptyCart
	}

	customer := order.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	stored, err := s.store.CreateOrder(draft, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.dispatchNotification(stored)

	return stored, nil
}

// dispatchNotification fires the confirmation without blocking the checkout
// flow. The request context is not reused: the response returns immediately
// and must not cancel the delivery attempt.
func (s *Service) dispatchNotification(o *order.Order) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.WithField("order_id", o.ID).
					Warnf("order notification panicked: %v", r)
			}
		}()
		s.notifier.NotifyOrderCreated(context.Background(), o)
	}()
}
