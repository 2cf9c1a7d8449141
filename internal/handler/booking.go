package handler

import (
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	Handler
	bookingService *service.BookingService
}

func NewBookingHandler(s *server.Server, bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:        NewHandler(s),
		bookingService: bookingService,
	}
}

// GetBookings lists every booking with its event attached.
func (h *BookingHandler) GetBookings(c echo.Context, _ *model.GetBookingsRequest) ([]model.Booking, error) {
	return h.bookingService.GetBookings(c.Request().Context())
}

func (h *BookingHandler) CreateBooking(c echo.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	return h.bookingService.CreateBooking(c.Request().Context(), req)
}
