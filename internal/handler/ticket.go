package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetTicket handles GET /tickets/:booking_code.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	booking, err := h.Store.GetBooking(c.Param("booking_code"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// ListUserTickets handles GET /users/:user_id/tickets and returns the
// user's bookings in creation order.
func (h *BookingHandler) ListUserTickets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListBookingsByUser(c.Param("user_id")))
}
