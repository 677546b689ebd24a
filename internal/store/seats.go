package store

import (
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// newSeatMap builds the full seat inventory for a showtime.  Every code in
// the rows x cols grid starts available; codes listed as disabled become
// blocked.  Disabled codes outside the grid are ignored.
func newSeatMap(st model.Showtime) map[string]model.SeatStatus {
	seatMap := make(map[string]model.SeatStatus, st.Rows*st.Cols)
	for _, code := range utils.SeatCodes(st.Rows, st.Cols) {
		seatMap[code] = model.SeatAvailable
	}
	for _, code := range st.DisabledSeats {
		if _, ok := seatMap[code]; ok {
			seatMap[code] = model.SeatBlocked
		}
	}
	return seatMap
}

// newShowtimeMeta captures the layout metadata alongside the inventory.
func newShowtimeMeta(st model.Showtime) *showtimeMeta {
	meta := &showtimeMeta{
		aisles:   append(make([]int, 0, len(st.AislesCols)), st.AislesCols...),
		vip:      make(map[string]struct{}, len(st.VIPSeats)),
		disabled: make(map[string]struct{}, len(st.DisabledSeats)),
	}
	for _, code := range st.VIPSeats {
		meta.vip[code] = struct{}{}
	}
	for _, code := range st.DisabledSeats {
		meta.disabled[code] = struct{}{}
	}
	return meta
}

// SeatStatuses returns a copy of the seat code -> status mapping for a
// showtime.  The copy keeps callers from mutating inventory outside the
// store's lock.
func (s *Store) SeatStatuses(showtimeID uint64) (map[string]model.SeatStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seatMap, ok := s.seats[showtimeID]
	if !ok {
		return nil, ErrShowtimeNotFound
	}
	out := make(map[string]model.SeatStatus, len(seatMap))
	for code, status := range seatMap {
		out[code] = status
	}
	return out, nil
}
