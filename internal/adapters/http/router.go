package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// APIPrefix is the route prefix of the public API.
const APIPrefix = "/api/v1"

// RouterConfig contains the handlers and settings of the router.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	Health   *handlers.HealthHandler
	Quotes   *handlers.QuoteHandler
	Sync     *handlers.SyncHandler
	Transfer *handlers.TransferHandler
	Display  *handlers.DisplayHandler

	// Timeout bounds API requests. Sync and import requests wait for remote
	// pushes and are exempt. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID, correlation ID and session ID
//  3. OpenTelemetry tracing and metrics
//  4. Logging (skips /-/ endpoints)
//
// Route groups:
//   - /-/ probes, build info and prometheus metrics
//   - /api/v1/ quote, filter, sync, transfer and display endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Session(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group(APIPrefix)
	api.Use(middleware.Timeout(cfg.Timeout, APIPrefix+"/sync", APIPrefix+"/import"))

	if cfg.Quotes != nil {
		cfg.Quotes.RegisterQuoteRoutes(api)
	}

	if cfg.Sync != nil {
		cfg.Sync.RegisterSyncRoutes(api)
	}

	if cfg.Transfer != nil {
		cfg.Transfer.RegisterTransferRoutes(api)
	}

	if cfg.Display != nil {
		cfg.Display.RegisterDisplayRoutes(api)
	}
}
