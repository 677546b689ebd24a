package store

import "github.com/iliyamo/movie-ticket-booking/internal/model"

// saveBookingLocked stores a finalized booking and appends its code to
// the per-user index, which preserves creation order.  Callers hold the
// write lock and guarantee the code is unique.
func (s *Store) saveBookingLocked(b model.Booking) {
	s.bookings[b.BookingCode] = b
	s.byUser[b.UserID] = append(s.byUser[b.UserID], b.BookingCode)
}

// GetBooking returns the booking stored under a code.
func (s *Store) GetBooking(code string) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[code]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// ListBookingsByUser returns a user's bookings in the order they were
// created.
func (s *Store) ListBookingsByUser(userID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := s.byUser[userID]
	out := make([]model.Booking, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.bookings[code])
	}
	return out
}
