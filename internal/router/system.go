package router

import (
	"net/http"

	"github.com/deppfellow/go-eventbooking/internal/handler"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers endpoints that are not part of the booking
// API itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// registerDevRoutes registers tooling that must not be reachable in
// production.
func registerDevRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/emails/:template/preview", handler.HandleHTML(
		h.Email.Handler,
		h.Email.PreviewEmail,
		http.StatusOK,
		&model.PreviewEmailRequest{},
	))
}
