// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Order numbers are drawn from [100000, 999999)
const (
	orderNumberMin  = 100000
	orderNumberSpan = 899999
)

// DefaultOrderPrefix is prepended to every order number
const DefaultOrderPrefix = "SAR-"

// CartClearer empties a cart
type CartClearer interface {
	ClearCart(ctx context.Context, key string) (*cart.CartResponse, error)
}

// Service places orders. Order identifiers are random and not checked for
// uniqueness.
type Service struct {
	carts   CartClearer
	prefix  string
	intN    func(n int) int
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

// NewService creates a new checkout service
func NewService(carts CartClearer, prefix string, m *metrics.Metrics, logger *logrus.Logger) *Service {
	if prefix == "" {
		prefix = DefaultOrderPrefix
	}
	return &Service{
		carts:   carts,
		prefix:  prefix,
		intN:    rand.IntN,
		metrics: m,
		logger:  logger,
	}
}

// CheckoutResponse represents a placed order
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// Checkout issues an order identifier and empties the cart, whatever it holds
func (s *Service) Checkout(ctx context.Context, key string) (*CheckoutResponse, error) {
	orderID := s.newOrderID()

	if _, err := s.carts.ClearCart(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to clear cart for order %s: %w", orderID, err)
	}

	s.metrics.IncCheckout()
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"order_id": orderID,
			"cart":     key,
		}).Info("order placed")
	}

	return &CheckoutResponse{OrderID: orderID}, nil
}

func (s *Service) newOrderID() string {
	return fmt.Sprintf("%s%d", s.prefix, orderNumberMin+s.intN(orderNumberSpan))
}
