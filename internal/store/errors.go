// Package store owns all in-memory application state: the movie and
// showtime catalog, per-showtime seat inventories, per-user carts and the
// booking ledger.  Sentinel errors defined here let handlers distinguish
// missing entities (HTTP 404) from invalid requests (HTTP 400) without
// inspecting error strings.
package store

import (
	"errors"
	"fmt"
)

// ErrMovieNotFound is returned when a referenced movie does not exist.
var ErrMovieNotFound = errors.New("Movie not found")

// ErrShowtimeNotFound is returned when a referenced showtime (or its seat
// inventory) does not exist.
var ErrShowtimeNotFound = errors.New("Showtime not found")

// ErrBookingNotFound is returned when no booking exists for a code.
var ErrBookingNotFound = errors.New("Ticket not found")

// ErrCartEmpty is returned by checkout when the user's cart has no items.
var ErrCartEmpty = errors.New("Cart is empty")

// ErrNoCartChange is returned by cart removal when neither the item id
// nor the seat list matched anything in the cart.
var ErrNoCartChange = errors.New("No matching cart item or seats to remove")

// Seat-level failure reasons.  They are wrapped in a SeatError carrying
// the offending seat code, so handlers can match with errors.Is while the
// message still names the seat.
var (
	ErrSeatUnknown     = errors.New("does not exist")
	ErrSeatUnavailable = errors.New("is not available")
	ErrSeatNotReserved = errors.New("not reserved anymore")
)

// SeatError records which seat made a cart or checkout operation fail.
type SeatError struct {
	Seat string
	Err  error
}

func (e *SeatError) Error() string { return fmt.Sprintf("Seat %s %s", e.Seat, e.Err) }

func (e *SeatError) Unwrap() error { return e.Err }
