// Package router wires the API's HTTP routes onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
)

// RegisterRoutes registers routes that belong to no functional group.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAdmin registers the catalog management endpoints under /admin.
// Movies support full CRUD with partial updates and cascading deletes;
// showtimes are created per movie and are immutable once created.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler) {
	g := e.Group("/admin")
	g.POST("/movies", a.CreateMovie)
	g.GET("/movies", a.ListMovies)
	g.GET("/movies/:id", a.GetMovie)
	g.PUT("/movies/:id", a.UpdateMovie)
	g.DELETE("/movies/:id", a.DeleteMovie)
	g.POST("/movies/:id/showtimes", a.CreateShowtime)
	g.GET("/showtimes", a.ListShowtimes)
}

// RegisterPublic registers the unauthenticated browsing endpoints: the
// movie catalog plus per-showtime seat statuses and the rendered layout.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/movies", p.ListMovies)
	e.GET("/movies/:id/showtimes", p.ListShowtimesForMovie)
	e.GET("/showtimes/:id/seats", p.GetSeats)
	e.GET("/showtimes/:id/layout", p.GetLayout)
}

// RegisterBooking registers the booking workflow: cart mutation, cart
// summary, checkout and ticket lookup.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	e.POST("/cart/add", b.AddToCart)
	e.GET("/cart/:user_id", b.GetCart)
	e.DELETE("/cart/remove", b.RemoveFromCart)
	e.POST("/checkout", b.Checkout)
	e.GET("/tickets/:booking_code", b.GetTicket)
	e.GET("/users/:user_id/tickets", b.ListUserTickets)
}
