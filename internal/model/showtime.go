package model

// SeatStatus is the lifecycle state of a single seat within a showtime.
// Transitions: available -> reserved (add to cart), reserved -> available
// (remove from cart), reserved -> booked (checkout).  Blocked seats are
// set at showtime creation and never transition away.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
	SeatBooked    SeatStatus = "booked"
	SeatBlocked   SeatStatus = "blocked"
)

// ScreenSide says which edge of the seat grid the screen is on, so a
// front-end can orient the layout.
type ScreenSide string

const (
	ScreenTop    ScreenSide = "top"
	ScreenBottom ScreenSide = "bottom"
	ScreenLeft   ScreenSide = "left"
	ScreenRight  ScreenSide = "right"
)

// ValidScreenSide reports whether s is one of the four screen positions.
func ValidScreenSide(s ScreenSide) bool {
	switch s {
	case ScreenTop, ScreenBottom, ScreenLeft, ScreenRight:
		return true
	}
	return false
}

// Showtime is a scheduled screening of a movie.  It is immutable once
// created and owns one seat inventory, initialised atomically with it.
//
// Fields:
//  ID            – numeric identifier issued by the store.
//  MovieID       – owning movie; must exist at creation time.
//  Day           – screening date as "YYYY-MM-DD".
//  Time          – start time as "HH:MM" (24h).
//  Studio        – studio/hall name.
//  Price         – per-seat price, non-negative.
//  Rows          – number of seat rows, 1..26 (one letter per row).
//  Cols          – seats per row, 1..20.
//  ScreenSide    – edge of the grid the screen is on.
//  AislesCols    – optional 1-based column numbers that are aisles.
//  VIPSeats      – optional seat codes rendered as VIP.
//  DisabledSeats – optional seat codes blocked from sale.
type Showtime struct {
	ID            uint64     `json:"id"`
	MovieID       uint64     `json:"movie_id"`
	Day           string     `json:"day"`
	Time          string     `json:"time"`
	Studio        string     `json:"studio"`
	Price         float64    `json:"price"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	ScreenSide    ScreenSide `json:"screen_side"`
	AislesCols    []int      `json:"aisles_cols"`
	VIPSeats      []string   `json:"vip_seats"`
	DisabledSeats []string   `json:"disabled_seats"`
}
