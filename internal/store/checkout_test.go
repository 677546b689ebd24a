package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func TestCheckoutEmptyCart(t *testing.T) {
	s := New()
	if _, err := s.Checkout("bob", ""); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("err = %v, want ErrCartEmpty", err)
	}
}

func TestCheckoutBooksSeatsAndClearsCart(t *testing.T) {
	s, st := cartFixture(t)
	if _, err := s.AddToCart("alice", st.ID, []string{"A1", "A2"}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	booking, err := s.Checkout("alice", "")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !strings.HasPrefix(booking.BookingCode, "BKG-") {
		t.Errorf("booking code = %q, want BKG- prefix", booking.BookingCode)
	}
	if booking.TotalBeforeDiscount != 80000 || booking.DiscountAmount != 0 || booking.TotalPaid != 80000 {
		t.Errorf("totals = %v/%v/%v, want 80000/0/80000",
			booking.TotalBeforeDiscount, booking.DiscountAmount, booking.TotalPaid)
	}
	if booking.Timestamp == "" {
		t.Errorf("timestamp must be set")
	}
	for _, code := range []string{"A1", "A2"} {
		if got := seatStatus(t, s, st.ID, code); got != model.SeatBooked {
			t.Errorf("%s = %q after checkout, want booked", code, got)
		}
	}
	if got := len(s.CartSummary("alice").Items); got != 0 {
		t.Errorf("cart has %d items after checkout, want 0", got)
	}

	// The booking must be retrievable by code with the same totals.
	stored, err := s.GetBooking(booking.BookingCode)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if stored.TotalPaid != booking.TotalPaid || stored.UserID != "alice" {
		t.Errorf("stored booking differs: %+v", stored)
	}
}

func TestCheckoutPromoCodes(t *testing.T) {
	cases := []struct {
		promo    string
		discount float64
		paid     float64
	}{
		{"DISCOUNT10", 10000, 90000},
		{"discount10", 10000, 90000}, // case-insensitive
		{"STUDENT20", 20000, 80000},
		{"BOGUS", 0, 100000},
		{"", 0, 100000},
	}
	for _, tc := range cases {
		t.Run("promo_"+tc.promo, func(t *testing.T) {
			s := New()
			m := newTestMovie(t, s, "Interstellar")
			// Two showtimes at 50000, one seat each: total 100000.
			st1 := newTestShowtime(t, s, m.ID, model.Showtime{Rows: 1, Cols: 2, Price: 50000})
			st2 := newTestShowtime(t, s, m.ID, model.Showtime{Rows: 1, Cols: 2, Price: 50000})
			if _, err := s.AddToCart("alice", st1.ID, []string{"A1"}); err != nil {
				t.Fatalf("AddToCart: %v", err)
			}
			if _, err := s.AddToCart("alice", st2.ID, []string{"A1"}); err != nil {
				t.Fatalf("AddToCart: %v", err)
			}

			booking, err := s.Checkout("alice", tc.promo)
			if err != nil {
				t.Fatalf("Checkout: %v", err)
			}
			if booking.TotalBeforeDiscount != 100000 {
				t.Errorf("total = %v, want 100000", booking.TotalBeforeDiscount)
			}
			if booking.DiscountAmount != tc.discount {
				t.Errorf("discount = %v, want %v", booking.DiscountAmount, tc.discount)
			}
			if booking.TotalPaid != tc.paid {
				t.Errorf("paid = %v, want %v", booking.TotalPaid, tc.paid)
			}
		})
	}
}

func TestCheckoutFailsWhenSeatNotReserved(t *testing.T) {
	s, st := cartFixture(t)
	if _, err := s.AddToCart("alice", st.ID, []string{"A1", "A2"}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	// Simulate an external race flipping one seat back to available.
	s.mu.Lock()
	s.seats[st.ID]["A2"] = model.SeatAvailable
	s.mu.Unlock()

	_, err := s.Checkout("alice", "")
	if !errors.Is(err, ErrSeatNotReserved) {
		t.Fatalf("err = %v, want ErrSeatNotReserved", err)
	}
	var se *SeatError
	if !errors.As(err, &se) || se.Seat != "A2" {
		t.Errorf("error must name the seat, got %v", err)
	}
	// A failed checkout leaves the other reservation untouched.
	if got := seatStatus(t, s, st.ID, "A1"); got != model.SeatReserved {
		t.Errorf("A1 = %q after failed checkout, want reserved", got)
	}
}

func TestCheckoutFailsWhenShowtimeDeleted(t *testing.T) {
	s := New()
	m := newTestMovie(t, s, "Dune")
	st := newTestShowtime(t, s, m.ID, model.Showtime{Rows: 1, Cols: 2, Price: 1000})
	if _, err := s.AddToCart("alice", st.ID, []string{"A1"}); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := s.DeleteMovie(m.ID); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}

	if _, err := s.Checkout("alice", ""); !errors.Is(err, ErrSeatNotReserved) {
		t.Fatalf("err = %v, want ErrSeatNotReserved after cascade delete", err)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetBooking("BKG-NOPE"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestListBookingsByUserInsertionOrder(t *testing.T) {
	s := New()
	m := newTestMovie(t, s, "Dune")
	st := newTestShowtime(t, s, m.ID, model.Showtime{Rows: 1, Cols: 4, Price: 1000})

	codes := make([]string, 0, 3)
	for _, seat := range []string{"A1", "A2", "A3"} {
		if _, err := s.AddToCart("alice", st.ID, []string{seat}); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
		b, err := s.Checkout("alice", "")
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}
		codes = append(codes, b.BookingCode)
	}

	bookings := s.ListBookingsByUser("alice")
	if len(bookings) != 3 {
		t.Fatalf("bookings = %d, want 3", len(bookings))
	}
	for i, b := range bookings {
		if b.BookingCode != codes[i] {
			t.Errorf("booking %d = %s, want %s (creation order)", i, b.BookingCode, codes[i])
		}
	}
	if got := len(s.ListBookingsByUser("nobody")); got != 0 {
		t.Errorf("bookings for unknown user = %d, want 0", got)
	}
}
