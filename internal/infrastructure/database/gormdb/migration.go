// internal/infrastructure/database/gormdb/migration.go
package gormdb

import (
	"fmt"

	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migration handles catalog schema and seed data
type Migration struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log logrus.FieldLogger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for the catalog models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("🔄 Running catalog auto-migrations...")

	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("✅ Catalog auto-migrations completed successfully")
	return nil
}

// SeedProducts inserts the launch catalog. Rows that already exist are left
// untouched, so seeding is safe to repeat.
func (m *Migration) SeedProducts(products []product.Product) error {
	m.log.Info("🛍️ Seeding products...")

	if len(products) == 0 {
		return nil
	}

	result := m.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products)
	if result.Error != nil {
		return fmt.Errorf("failed to seed products: %w", result.Error)
	}

	m.log.WithFields(logrus.Fields{
		"inserted": result.RowsAffected,
		"total":    len(products),
	}).Info("✅ Products seeded")
	return nil
}
