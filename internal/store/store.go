package store

import (
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// showtimeMeta keeps the layout metadata captured at showtime creation:
// aisle columns verbatim, plus VIP/disabled seat codes as sets for O(1)
// classification while rendering.
type showtimeMeta struct {
	aisles   []int
	vip      map[string]struct{}
	disabled map[string]struct{}
}

// Store is the single owner of all application state.  It is constructed
// once at process start and passed to every handler; there are no package
// level singletons.  One RWMutex serializes every mutating operation end
// to end, which keeps the seat state machine race-free (no seat can be
// reserved twice) and makes cascade deletes atomic as observed by any
// caller.
type Store struct {
	mu sync.RWMutex

	movies    map[uint64]model.Movie
	showtimes map[uint64]model.Showtime

	// seats maps showtime ID -> seat code -> status.  An entry exists for
	// a seat code iff it lies inside the showtime's rows x cols grid.
	seats map[uint64]map[string]model.SeatStatus
	meta  map[uint64]*showtimeMeta

	// carts maps user ID to an ordered list of cart line items.
	carts map[string][]model.CartItem

	// bookings maps booking code to the finalized record; byUser is a
	// derived index preserving insertion (creation) order.
	bookings map[string]model.Booking
	byUser   map[string][]string

	nextMovieID    uint64
	nextShowtimeID uint64
}

// New returns an empty Store ready for use.
func New() *Store {
	return &Store{
		movies:    make(map[uint64]model.Movie),
		showtimes: make(map[uint64]model.Showtime),
		seats:     make(map[uint64]map[string]model.SeatStatus),
		meta:      make(map[uint64]*showtimeMeta),
		carts:     make(map[string][]model.CartItem),
		bookings:  make(map[string]model.Booking),
		byUser:    make(map[string][]string),
	}
}
