// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/saraswati-store/storefront/internal/config"
	"github.com/saraswati-store/storefront/internal/domain/cart"
	"github.com/saraswati-store/storefront/internal/domain/checkout"
	"github.com/saraswati-store/storefront/internal/domain/product"
	"github.com/saraswati-store/storefront/internal/interfaces/http/handlers"
	"github.com/saraswati-store/storefront/internal/interfaces/http/middleware"
	"github.com/saraswati-store/storefront/internal/interfaces/http/routes"
	"github.com/saraswati-store/storefront/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// HealthCheck reports whether a dependency is usable
type HealthCheck func(ctx context.Context) error

// Dependencies are the collaborators the HTTP server is built from
type Dependencies struct {
	Config          *config.Config
	Logger          *logrus.Logger
	Catalog         *product.Catalog
	CartService     *cart.Service
	CheckoutService *checkout.Service
	Metrics         *metrics.Metrics
	Gatherer        prometheus.Gatherer
	// RedisClient enables rate limiting when set
	RedisClient  *redis.Client
	HealthChecks map[string]HealthCheck
}

// Server represents the HTTP server
type Server struct {
	deps       Dependencies
	config     *config.Config
	logger     *logrus.Logger
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with its routes mounted
func NewServer(deps Dependencies) *Server {
	// Set Gin mode based on environment
	switch {
	case deps.Config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case deps.Config.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	}

	s := &Server{
		deps:      deps,
		config:    deps.Config,
		logger:    deps.Logger,
		gin:       gin.New(),
		startedAt: time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the configured router
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":    s.config.Server.Port,
		"api":     fmt.Sprintf("http://localhost:%s/api", s.config.Server.Port),
		"health":  fmt.Sprintf("http://localhost:%s/health", s.config.Server.Port),
		"metrics": fmt.Sprintf("http://localhost:%s/metrics", s.config.Server.Port),
	}).Info("🚀 HTTP Server starting")

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Request ID middleware
	s.gin.Use(middleware.RequestID())

	// Custom logger middleware
	s.gin.Use(middleware.Logger(s.logger))

	// Request metrics
	s.gin.Use(middleware.Metrics(s.deps.Metrics))

	// CORS middleware
	s.gin.Use(middleware.CORS(s.config.Security))

	// Security headers middleware
	s.gin.Use(middleware.SecurityHeaders())

	// Rate limiting middleware
	if s.deps.RedisClient != nil && s.config.Security.RateLimitPerMinute > 0 {
		s.gin.Use(middleware.RateLimit(s.config.Security.RateLimitPerMinute, s.deps.RedisClient, s.logger))
	}
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	if s.deps.Gatherer != nil {
		s.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := s.gin.Group("/api")
	api.Use(middleware.CartSession(s.config.Cart.Scope, int(s.config.Cart.TTL.Seconds())))

	routes.SetupRoutes(api, routes.Handlers{
		Product:  handlers.NewProductHandler(s.deps.Catalog),
		Cart:     handlers.NewCartHandler(s.deps.CartService, s.logger),
		Checkout: handlers.NewCheckoutHandler(s.deps.CheckoutService, s.logger),
	})

	// Browser client assets
	if dir := s.config.Server.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fileServer := http.FileServer(http.Dir(dir))
			s.gin.NoRoute(func(c *gin.Context) {
				if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
					c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
					return
				}
				fileServer.ServeHTTP(c.Writer, c.Request)
			})
		} else {
			s.logger.WithField("dir", dir).Warn("static directory not found, not serving client assets")
		}
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	for name, check := range s.deps.HealthChecks {
		if err := check(ctx); err != nil {
			s.logger.WithError(err).WithField("dependency", name).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  name + " unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).String(),
		"products":  len(s.deps.Catalog.Products()),
	})
}
