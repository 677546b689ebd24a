package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/store"
)

// AdminHandler groups the catalog management endpoints.  The API has no
// authentication; "admin" only describes the surface, mirroring the
// /admin route prefix.
type AdminHandler struct {
	Store *store.Store
}

// CreateMovie handles POST /admin/movies.
func (h *AdminHandler) CreateMovie(c echo.Context) error {
	var body struct {
		Title       string  `json:"title"`
		Synopsis    *string `json:"synopsis"`
		DurationMin int     `json:"duration_min"`
		Rating      *string `json:"rating"`
		Genre       *string `json:"genre"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if body.DurationMin < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_min must be at least 1"})
	}
	m := h.Store.CreateMovie(model.Movie{
		Title:       body.Title,
		Synopsis:    body.Synopsis,
		DurationMin: body.DurationMin,
		Rating:      body.Rating,
		Genre:       body.Genre,
	})
	return c.JSON(http.StatusOK, m)
}

// ListMovies handles GET /admin/movies.
func (h *AdminHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListMovies())
}

// GetMovie handles GET /admin/movies/:id.
func (h *AdminHandler) GetMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	m, err := h.Store.GetMovie(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateMovie handles PUT /admin/movies/:id.  Only fields present in the
// body overwrite the stored record.
func (h *AdminHandler) UpdateMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var body model.MovieUpdate
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Title != nil && strings.TrimSpace(*body.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title must not be empty"})
	}
	if body.DurationMin != nil && *body.DurationMin < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_min must be at least 1"})
	}
	m, err := h.Store.UpdateMovie(id, body)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMovie handles DELETE /admin/movies/:id.  Deletion cascades to
// every showtime of the movie together with its seat inventory.
func (h *AdminHandler) DeleteMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if err := h.Store.DeleteMovie(id); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Movie deleted"})
}
