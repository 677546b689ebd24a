package model

// SeatCell is one cell of a rendered seat layout.  SeatType is "blocked",
// "vip" or "standard"; blocked wins when a seat is in both the disabled
// and VIP sets.
type SeatCell struct {
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	Code     string     `json:"code"`
	Status   SeatStatus `json:"status"`
	SeatType string     `json:"seat_type"`
}

// SeatLayout is the 2D view of a showtime's seats for display.  Grid is
// row-major with Rows x Cols cells.  Legend is static explanatory text
// keyed by status, seat type and layout metadata fields.
type SeatLayout struct {
	ShowtimeID uint64            `json:"showtime_id"`
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	ScreenSide ScreenSide        `json:"screen_side"`
	AislesCols []int             `json:"aisles_cols"`
	Legend     map[string]string `json:"legend"`
	Grid       [][]SeatCell      `json:"grid"`
}
