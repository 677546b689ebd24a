package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/store"
)

// PublicHandler groups the unauthenticated browsing endpoints: the movie
// catalog, per-showtime seat statuses and the rendered seat layout.
type PublicHandler struct {
	Store *store.Store
}

// ListMovies handles GET /movies.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListMovies())
}

// ListShowtimesForMovie handles GET /movies/:id/showtimes.  An unknown
// movie id simply yields an empty list, matching the published API.
func (h *PublicHandler) ListShowtimesForMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	return c.JSON(http.StatusOK, h.Store.ListShowtimesByMovie(id))
}
