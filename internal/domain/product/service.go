// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Service loads the catalog from the products table
type Service struct {
	db *gorm.DB
}

// NewService creates a new product service
func NewService(db *gorm.DB) *Service {
	return &Service{
		db: db,
	}
}

// LoadCatalog reads every product once, ordered by identifier, and freezes
// the result into a Catalog
func (s *Service) LoadCatalog(ctx context.Context) (*Catalog, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return NewCatalog(products), nil
}
