package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetSeats handles GET /showtimes/:id/seats and returns the seat code to
// status mapping for one showtime.
func (h *PublicHandler) GetSeats(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	seats, err := h.Store.SeatStatuses(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, seats)
}

// GetLayout handles GET /showtimes/:id/layout and returns the 2D seat
// grid with screen side, aisle columns and the display legend.
func (h *PublicHandler) GetLayout(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	layout, err := h.Store.RenderLayout(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, layout)
}
