package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	queuepublisher "github.com/iliyamo/movie-ticket-booking/internal/service"
)

// Checkout handles POST /checkout.  It finalizes the user's cart into a
// booking: all seats must still be reserved, the promo code (if any) is
// applied, seats move to booked and the cart is cleared.  The full
// booking payload is returned and, when enabled, a booking-confirmed
// event is published best-effort in the background.
func (h *BookingHandler) Checkout(c echo.Context) error {
	var body struct {
		UserID    string `json:"user_id"`
		PromoCode string `json:"promo_code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.UserID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	booking, err := h.Store.Checkout(body.UserID, body.PromoCode)
	if err != nil {
		return storeError(c, err)
	}
	if h.PublishEvents {
		ev := bookingEvent(booking)
		// Publish outside the request path; a broker outage must never
		// fail a checkout that already committed.
		go func() { _ = queuepublisher.PublishBookingConfirmed(context.Background(), ev) }()
	}
	return c.JSON(http.StatusOK, booking)
}

// bookingEvent converts a finalized booking into its broker payload.
func bookingEvent(b model.Booking) queue.BookingConfirmedEvent {
	lines := make([]queue.BookingLine, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, queue.BookingLine{
			ShowtimeID: item.ShowtimeID,
			Seats:      item.Seats,
			Subtotal:   item.Subtotal,
		})
	}
	return queue.BookingConfirmedEvent{
		BookingCode:         b.BookingCode,
		UserID:              b.UserID,
		TotalBeforeDiscount: b.TotalBeforeDiscount,
		DiscountAmount:      b.DiscountAmount,
		TotalPaid:           b.TotalPaid,
		Lines:               lines,
		ConfirmedAt:         b.Timestamp,
	}
}
