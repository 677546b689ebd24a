// Package handler exposes the HTTP handlers for the booking API: admin
// catalog management, public browsing, seat layouts, carts, checkout and
// tickets.  Handlers bind request payloads, validate them, call into the
// store and translate store errors to HTTP responses.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/store"
)

// storeError maps store failures onto the API's two error kinds: missing
// entities become 404, everything else (seat conflicts, empty cart, no
// matching removal target) becomes 400.  The error message is surfaced
// verbatim to the caller.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrMovieNotFound),
		errors.Is(err, store.ErrShowtimeNotFound),
		errors.Is(err, store.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
}

// parseID parses a numeric path parameter; ok is false when the value is
// not a positive integer.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
