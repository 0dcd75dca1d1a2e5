// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"

	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/saraswati-store/storefront/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ProductFinder resolves product identifiers for add-to-cart
type ProductFinder interface {
	Find(id uint) (product.Product, bool)
}

// Service handles cart business logic
type Service struct {
	products ProductFinder
	store    Store
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

// NewService creates a new cart service
func NewService(products ProductFinder, store Store, m *metrics.Metrics, logger *logrus.Logger) *Service {
	return &Service{
		products: products,
		store:    store,
		metrics:  m,
		logger:   logger,
	}
}

// AddToCartRequest represents add to cart request. A missing or
// non-positive quantity adds a single unit.
type AddToCartRequest struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity" binding:"omitempty,max=999"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

// GetCart retrieves the cart for key
func (s *Service) GetCart(ctx context.Context, key string) (*CartResponse, error) {
	ledger, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return ledger.Response(), nil
}

// AddToCart adds a product to the cart, merging with an existing line
func (s *Service) AddToCart(ctx context.Context, key string, req *AddToCartRequest) (*CartResponse, error) {
	quantity := 1
	if req.Quantity != nil && *req.Quantity > 0 {
		quantity = *req.Quantity
	}

	ledger, err := s.store.Update(ctx, key, func(l *Ledger) error {
		p, ok := s.products.Find(req.ProductID)
		if !ok {
			return &NotFoundError{Resource: ResourceProduct, ProductID: req.ProductID}
		}
		l.Add(p, quantity)
		return nil
	})
	s.record("add", key, req.ProductID, err)
	if err != nil {
		return nil, err
	}

	return ledger.Response(), nil
}

// UpdateCartItem replaces the quantity of an existing line; zero or less
// removes it
func (s *Service) UpdateCartItem(ctx context.Context, key string, productID uint, req *UpdateCartItemRequest) (*CartResponse, error) {
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	ledger, err := s.store.Update(ctx, key, func(l *Ledger) error {
		return l.UpdateQuantity(productID, quantity)
	})
	s.record("update", key, productID, err)
	if err != nil {
		return nil, err
	}

	return ledger.Response(), nil
}

// RemoveFromCart removes a line; removing an absent line is not an error
func (s *Service) RemoveFromCart(ctx context.Context, key string, productID uint) (*CartResponse, error) {
	ledger, err := s.store.Update(ctx, key, func(l *Ledger) error {
		l.Remove(productID)
		return nil
	})
	s.record("remove", key, productID, err)
	if err != nil {
		return nil, err
	}

	return ledger.Response(), nil
}

// ClearCart removes all items by dropping the stored ledger
func (s *Service) ClearCart(ctx context.Context, key string) (*CartResponse, error) {
	err := s.store.Delete(ctx, key)
	s.record("clear", key, 0, err)
	if err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return NewLedger(key).Response(), nil
}

func (s *Service) record(op, key string, productID uint, err error) {
	s.metrics.IncCartOperation(op, err)
	if s.logger == nil {
		return
	}

	entry := s.logger.WithFields(logrus.Fields{
		"operation":  op,
		"cart":       key,
		"product_id": productID,
	})
	switch {
	case err == nil:
		entry.Debug("cart updated")
	case IsNotFound(err):
		entry.WithError(err).Info("cart update rejected")
	default:
		entry.WithError(err).Error("cart update failed")
	}
}
