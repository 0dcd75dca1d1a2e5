// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/saraswati-store/storefront/internal/config"
	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/domain/checkout"
	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/saraswati-store/storefront/internal/infrastructure/database/gormdb"
	"github.com/saraswati-store/storefront/internal/infrastructure/database/redis"
	"github.com/saraswati-store/storefront/internal/interfaces/http"
	"github.com/saraswati-store/storefront/internal/pkg/logger"
	"github.com/saraswati-store/storefront/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.LoggingConfig{Level: "info", Format: "text"}, os.Stderr).
			WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.Logging, os.Stdout)
	log.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to the catalog database
	db, err := gormdb.NewConnection(cfg.Catalog, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to catalog database")
	}
	defer db.Close()

	if err := db.Health(); err != nil {
		log.WithError(err).Fatal("Catalog database health check failed")
	}

	// Run migrations and seed the launch catalog
	migration := gormdb.NewMigration(db.GetDB(), log)
	if err := migration.RunAutoMigrations(); err != nil {
		log.WithError(err).Fatal("Catalog migration failed")
	}
	if err := migration.SeedProducts(product.SeedProducts()); err != nil {
		log.WithError(err).Fatal("Catalog seeding failed")
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	catalog, err := product.NewService(db.GetDB()).LoadCatalog(loadCtx)
	cancelLoad()
	if err != nil {
		log.WithError(err).Fatal("Failed to load catalog")
	}
	log.WithField("products", len(catalog.Products())).Info("📦 Catalog loaded")

	healthChecks := map[string]http.HealthCheck{
		"catalog": func(context.Context) error { return db.Health() },
	}

	// Select the cart store
	var store cart.Store = cart.NewMemoryStore(cfg.Cart.TTL)
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()

		store = cart.NewRedisStore(redisClient.GetClient(), cfg.Cart.TTL)
		healthChecks["redis"] = func(context.Context) error { return redisClient.Health() }
	}
	log.WithFields(logrus.Fields{
		"store": cfg.Cart.Store,
		"scope": cfg.Cart.Scope,
	}).Info("🛒 Cart store ready")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	cartService := cart.NewService(catalog, store, m, log)
	checkoutService := checkout.NewService(cartService, cfg.Checkout.OrderPrefix, m, log)

	deps := http.Dependencies{
		Config:          cfg,
		Logger:          log,
		Catalog:         catalog,
		CartService:     cartService,
		CheckoutService: checkoutService,
		Metrics:         m,
		Gatherer:        registry,
		HealthChecks:    healthChecks,
	}
	if redisClient != nil {
		deps.RedisClient = redisClient.GetClient()
	}

	log.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("✅ Server shutdown completed")
}
