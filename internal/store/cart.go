package store

import (
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// AddToCart reserves a batch of seats for one showtime and appends a new
// line item to the user's cart.  The whole batch is validated before any
// seat is touched: if any requested code does not exist for the showtime
// or is not currently available, nothing is reserved.  On success every
// listed seat transitions to reserved and the returned item carries a
// fresh opaque id plus subtotal = price * seat count.
func (s *Store) AddToCart(userID string, showtimeID uint64, seats []string) (model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.showtimes[showtimeID]
	if !ok {
		return model.CartItem{}, ErrShowtimeNotFound
	}
	seatMap := s.seats[showtimeID]

	for _, code := range seats {
		status, ok := seatMap[code]
		if !ok {
			return model.CartItem{}, &SeatError{Seat: code, Err: ErrSeatUnknown}
		}
		if status != model.SeatAvailable {
			return model.CartItem{}, &SeatError{Seat: code, Err: ErrSeatUnavailable}
		}
	}
	for _, code := range seats {
		seatMap[code] = model.SeatReserved
	}

	item := model.CartItem{
		ID:         utils.NewCartItemID(),
		ShowtimeID: showtimeID,
		Seats:      append([]string(nil), seats...),
		Subtotal:   st.Price * float64(len(seats)),
	}
	s.carts[userID] = append(s.carts[userID], item)
	return item, nil
}

// RemoveFromCart releases seats back to available in two independently
// triable modes: a matching cartItemID drops the whole line item, and a
// non-empty seats list shrinks any line item it intersects (dropping
// lines that become empty).  Both modes may apply in one call.  If
// neither changed anything the call fails with ErrNoCartChange.
func (s *Store) RemoveFromCart(userID, cartItemID string, seats []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remove := make(map[string]struct{}, len(seats))
	for _, code := range seats {
		remove[code] = struct{}{}
	}

	items := s.carts[userID]
	kept := make([]model.CartItem, 0, len(items))
	changed := false

	for _, item := range items {
		seatMap := s.seats[item.ShowtimeID]

		// Mode (a): drop the whole line item by id.
		if cartItemID != "" && item.ID == cartItemID {
			releaseSeats(seatMap, item.Seats, nil)
			changed = true
			continue
		}

		// Mode (b): shrink the line by the intersecting seats.
		if len(remove) > 0 {
			keep := make([]string, 0, len(item.Seats))
			for _, code := range item.Seats {
				if _, hit := remove[code]; !hit {
					keep = append(keep, code)
				}
			}
			if len(keep) != len(item.Seats) {
				releaseSeats(seatMap, item.Seats, keep)
				changed = true
				if len(keep) > 0 {
					item.Seats = keep
					kept = append(kept, item)
				}
				continue
			}
		}

		kept = append(kept, item)
	}

	if !changed {
		return ErrNoCartChange
	}
	s.carts[userID] = kept
	return nil
}

// releaseSeats sets every seat in all back to available except those in
// keep.  The seat map may be nil when the showtime was cascade-deleted
// while the line item sat in a cart; there is nothing to release then.
func releaseSeats(seatMap map[string]model.SeatStatus, all, keep []string) {
	if seatMap == nil {
		return
	}
	keepSet := make(map[string]struct{}, len(keep))
	for _, code := range keep {
		keepSet[code] = struct{}{}
	}
	for _, code := range all {
		if _, ok := keepSet[code]; !ok {
			seatMap[code] = model.SeatAvailable
		}
	}
}

// CartSummary recomputes each line's subtotal from the current showtime
// price and sums the total.  It never mutates state.  Lines whose
// showtime no longer exists are priced at zero.
func (s *Store) CartSummary(userID string) model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]model.CartItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		subtotal := 0.0
		if st, ok := s.showtimes[item.ShowtimeID]; ok {
			subtotal = st.Price * float64(len(item.Seats))
		}
		item.Subtotal = subtotal
		item.Seats = append([]string(nil), item.Seats...)
		total += subtotal
		out = append(out, item)
	}
	return model.Cart{UserID: userID, Items: out, Total: total}
}
