package router

import (
	"net/http"

	"github.com/deppfellow/go-eventbooking/internal/handler"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	uh := h.Users

	users.GET("", handler.Handle(uh.Handler, uh.GetUsers, http.StatusOK, &model.GetUsersRequest{}))
	users.POST("", handler.Handle(uh.Handler, uh.CreateUser, http.StatusCreated, &model.CreateUserRequest{}))

	// Static segments win over :id in Echo's router regardless of order.
	users.GET("/search", handler.Handle(uh.Handler, uh.SearchUsers, http.StatusOK, &model.SearchUsersRequest{}))
	users.GET("/active/:isActive", handler.Handle(uh.Handler, uh.GetUsersByStatus, http.StatusOK, &model.GetUsersByStatusRequest{}))

	users.GET("/:id", handler.Handle(uh.Handler, uh.GetUser, http.StatusOK, &model.GetUserRequest{}))
	users.PUT("/:id", handler.HandleNoContent(uh.Handler, uh.UpdateUser, http.StatusNoContent, &model.UpdateUserRequest{}))
	users.DELETE("/:id", handler.HandleNoContent(uh.Handler, uh.DeleteUser, http.StatusNoContent, &model.DeleteUserRequest{}))
}

func registerEventRoutes(r *echo.Echo, h *handler.Handlers) {
	events := r.Group("/events")
	eh := h.Events

	events.GET("", handler.Handle(eh.Handler, eh.GetEvents, http.StatusOK, &model.GetEventsRequest{}))
	events.POST("", handler.Handle(eh.Handler, eh.CreateEvent, http.StatusCreated, &model.CreateEventRequest{}))
	events.GET("/:id", handler.Handle(eh.Handler, eh.GetEvent, http.StatusOK, &model.GetEventRequest{}))
}

func registerBookingRoutes(r *echo.Echo, h *handler.Handlers) {
	bookings := r.Group("/bookings")
	bh := h.Bookings

	bookings.GET("", handler.Handle(bh.Handler, bh.GetBookings, http.StatusOK, &model.GetBookingsRequest{}))
	bookings.POST("", handler.Handle(bh.Handler, bh.CreateBooking, http.StatusOK, &model.CreateBookingRequest{}))
}
