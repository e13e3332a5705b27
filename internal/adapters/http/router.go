package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/insurely/sales-service/internal/adapters/http/handlers"
	"github.com/insurely/sales-service/internal/adapters/http/middleware"
	"github.com/insurely/sales-service/internal/platform/config"
	"github.com/insurely/sales-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// CustomerHandler handles the /customers resource.
	CustomerHandler *handlers.CustomerHandler

	// QuotationHandler handles the /quotations resource.
	QuotationHandler *handlers.QuotationHandler

	// SubscriptionHandler handles the /subscriptions resource.
	SubscriptionHandler *handlers.SubscriptionHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on the resource routes
//
// Route groups:
//   - /-/ (internal): health endpoints
//   - / (resource API): /customers, /quotations, /subscriptions at the root,
//     matching the item paths that reference URIs point at
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Resource routes live at the root so reference URIs like
	// "/customers/{id}" resolve against the same paths they are served on.
	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.CustomerHandler != nil {
		cfg.CustomerHandler.RegisterCustomerRoutes(api)
	}

	if cfg.QuotationHandler != nil {
		cfg.QuotationHandler.RegisterQuotationRoutes(api)
	}

	if cfg.SubscriptionHandler != nil {
		cfg.SubscriptionHandler.RegisterSubscriptionRoutes(api)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
