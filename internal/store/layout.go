package store

import (
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// layoutLegend explains the statuses, seat types and metadata fields that
// appear in a rendered layout.  It is fixed display text, not computed.
var layoutLegend = map[string]string{
	"available":   "Seat can be booked",
	"reserved":    "Currently in another user's cart",
	"booked":      "Already paid for",
	"blocked":     "Disabled seat",
	"vip":         "VIP seat",
	"standard":    "Standard seat",
	"screen_side": "Screen position relative to the grid",
	"aisles_cols": "1-based column numbers that are aisles",
}

// RenderLayout produces the row-major 2D grid of a showtime's seats for
// display.  Cell (r, c) carries the seat code, its current status from
// the inventory and its type: blocked if the code is in the disabled set,
// else vip if in the VIP set, else standard.
func (s *Store) RenderLayout(showtimeID uint64) (model.SeatLayout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.showtimes[showtimeID]
	if !ok {
		return model.SeatLayout{}, ErrShowtimeNotFound
	}
	seatMap, ok := s.seats[showtimeID]
	if !ok {
		return model.SeatLayout{}, ErrShowtimeNotFound
	}
	meta, ok := s.meta[showtimeID]
	if !ok {
		return model.SeatLayout{}, ErrShowtimeNotFound
	}

	grid := make([][]model.SeatCell, 0, st.Rows)
	for r := 1; r <= st.Rows; r++ {
		row := make([]model.SeatCell, 0, st.Cols)
		for c := 1; c <= st.Cols; c++ {
			code := utils.SeatCode(r, c)
			status, ok := seatMap[code]
			if !ok {
				continue
			}
			row = append(row, model.SeatCell{
				Row:      r,
				Col:      c,
				Code:     code,
				Status:   status,
				SeatType: utils.SeatTypeFor(code, meta.vip, meta.disabled),
			})
		}
		grid = append(grid, row)
	}

	return model.SeatLayout{
		ShowtimeID: st.ID,
		Rows:       st.Rows,
		Cols:       st.Cols,
		ScreenSide: st.ScreenSide,
		AislesCols: append(make([]int, 0, len(meta.aisles)), meta.aisles...),
		Legend:     layoutLegend,
		Grid:       grid,
	}, nil
}
