package store

import (
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// Checkout finalizes the user's cart into an immutable booking.  Every
// seat in every line item must still be reserved; the first seat found in
// any other state fails the whole call and leaves all reservations as
// they are (reservation and checkout are separate requests, so there is
// nothing to roll back).  On success all seats transition to booked, the
// cart is cleared, and the booking is stored in the ledger under a fresh
// unique code.
func (s *Store) Checkout(userID, promoCode string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	if len(items) == 0 {
		return model.Booking{}, ErrCartEmpty
	}

	total := 0.0
	lines := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		st, ok := s.showtimes[item.ShowtimeID]
		seatMap := s.seats[item.ShowtimeID]
		for _, code := range item.Seats {
			if seatMap == nil || seatMap[code] != model.SeatReserved {
				return model.Booking{}, &SeatError{Seat: code, Err: ErrSeatNotReserved}
			}
		}
		subtotal := 0.0
		if ok {
			subtotal = st.Price * float64(len(item.Seats))
		}
		total += subtotal
		item.Subtotal = subtotal
		item.Seats = append([]string(nil), item.Seats...)
		lines = append(lines, item)
	}

	discount := utils.ApplyPromo(total, promoCode)
	paid := total - discount
	if paid < 0 {
		paid = 0
	}

	for _, item := range items {
		seatMap := s.seats[item.ShowtimeID]
		for _, code := range item.Seats {
			seatMap[code] = model.SeatBooked
		}
	}
	s.carts[userID] = nil

	booking := model.Booking{
		BookingCode:         s.uniqueBookingCodeLocked(),
		UserID:              userID,
		TotalBeforeDiscount: total,
		DiscountAmount:      discount,
		TotalPaid:           paid,
		Items:               lines,
		Timestamp:           time.Now().Format("2006-01-02T15:04:05"),
	}
	s.saveBookingLocked(booking)
	return booking, nil
}

// uniqueBookingCodeLocked generates a booking code, re-rolling while it
// collides with one already in the ledger.  Callers hold the write lock.
func (s *Store) uniqueBookingCodeLocked() string {
	for {
		code := utils.NewBookingCode()
		if _, exists := s.bookings[code]; !exists {
			return code
		}
	}
}
