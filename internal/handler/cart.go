package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/store"
)

// BookingHandler groups the booking workflow endpoints: cart mutation,
// checkout and ticket lookup.  When PublishEvents is set, successful
// checkouts additionally emit a booking-confirmed event to the broker.
type BookingHandler struct {
	Store         *store.Store
	PublishEvents bool
}

// AddToCart handles POST /cart/add.  The requested seats are reserved
// all-or-nothing; on success the created line item (with its subtotal)
// is returned.
func (h *BookingHandler) AddToCart(c echo.Context) error {
	var body struct {
		UserID     string   `json:"user_id"`
		ShowtimeID uint64   `json:"showtime_id"`
		Seats      []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.UserID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	if len(body.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats is required"})
	}
	item, err := h.Store.AddToCart(body.UserID, body.ShowtimeID, body.Seats)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetCart handles GET /cart/:user_id.  Subtotals are recomputed from the
// current showtime prices on every call.
func (h *BookingHandler) GetCart(c echo.Context) error {
	userID := c.Param("user_id")
	return c.JSON(http.StatusOK, h.Store.CartSummary(userID))
}

// RemoveFromCart handles DELETE /cart/remove.  A cart_item_id drops the
// whole line item; a seats list shrinks any line it intersects.  Both
// may apply in one call; matching nothing is a 400.
func (h *BookingHandler) RemoveFromCart(c echo.Context) error {
	var body struct {
		UserID     string   `json:"user_id"`
		CartItemID string   `json:"cart_item_id"`
		Seats      []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.UserID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	if err := h.Store.RemoveFromCart(body.UserID, body.CartItemID, body.Seats); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Updated cart"})
}
