// internal/infrastructure/database/gormdb/connection.go
package gormdb

import (
	"fmt"

	"github.com/saraswati-store/storefront/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the catalog database connection
type DB struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewConnection opens the catalog database selected by the configuration
func NewConnection(cfg config.CatalogConfig, log logrus.FieldLogger) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.CatalogDriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.CatalogDriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported catalog driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s catalog: %w", cfg.Driver, err)
	}

	log.WithField("driver", cfg.Driver).Info("✅ Catalog database connection established")

	return &DB{db: db, log: log}, nil
}

// GetDB returns the gorm handle
func (d *DB) GetDB() *gorm.DB {
	return d.db
}

// Health pings the underlying connection
func (d *DB) Health() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	return sqlDB.Ping()
}

// Close closes the underlying connection
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
