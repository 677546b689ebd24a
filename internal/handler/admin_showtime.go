package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CreateShowtime handles POST /admin/movies/:id/showtimes.  The showtime
// is created together with its seat inventory in one store operation, so
// no caller can observe a showtime without seats.
func (h *AdminHandler) CreateShowtime(c echo.Context) error {
	movieID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var body struct {
		Day           string   `json:"day"`
		Time          string   `json:"time"`
		Studio        string   `json:"studio"`
		Price         float64  `json:"price"`
		Rows          int      `json:"rows"`
		Cols          int      `json:"cols"`
		ScreenSide    string   `json:"screen_side"`
		AislesCols    []int    `json:"aisles_cols"`
		VIPSeats      []string `json:"vip_seats"`
		DisabledSeats []string `json:"disabled_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateShowtime(body.Day, body.Time, body.Studio, body.Price, body.Rows, body.Cols); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	side := model.ScreenSide(strings.ToLower(strings.TrimSpace(body.ScreenSide)))
	if side == "" {
		side = model.ScreenTop
	}
	if !model.ValidScreenSide(side) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "screen_side must be one of top, bottom, left, right"})
	}
	st, err := h.Store.CreateShowtime(movieID, model.Showtime{
		Day:           body.Day,
		Time:          body.Time,
		Studio:        body.Studio,
		Price:         body.Price,
		Rows:          body.Rows,
		Cols:          body.Cols,
		ScreenSide:    side,
		AislesCols:    body.AislesCols,
		VIPSeats:      body.VIPSeats,
		DisabledSeats: body.DisabledSeats,
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

// ListShowtimes handles GET /admin/showtimes and returns every showtime.
func (h *AdminHandler) ListShowtimes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListShowtimes())
}

// validateShowtime checks the showtime request fields and returns an
// error message, or "" when the payload is valid.  Day and time are only
// shape-checked ("YYYY-MM-DD", "HH:MM"), matching the published API.
func validateShowtime(day, tm, studio string, price float64, rows, cols int) string {
	if len(strings.Split(day, "-")) != 3 {
		return "day must be YYYY-MM-DD"
	}
	if len(strings.Split(tm, ":")) != 2 {
		return "time must be HH:MM 24h"
	}
	if strings.TrimSpace(studio) == "" {
		return "studio is required"
	}
	if price < 0 {
		return "price must not be negative"
	}
	if rows < 1 || rows > 26 {
		return "rows must be between 1 and 26"
	}
	if cols < 1 || cols > 20 {
		return "cols must be between 1 and 20"
	}
	return ""
}
