// Package router builds the Echo instance: it installs the middleware chain
// and maps every route to its handler.
package router

import (
	"github.com/deppfellow/go-eventbooking/internal/handler"
	"github.com/deppfellow/go-eventbooking/internal/middleware"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns an Echo instance ready to be passed to
// server.SetupHTTPServer.
//
// Echo resolves the route before running middleware, so c.Path() is already
// the route template inside every middleware below.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h)
	registerEventRoutes(router, h)
	registerBookingRoutes(router, h)

	if !s.Config.Observability.IsProduction() {
		registerDevRoutes(router, h)
	}

	return router
}
