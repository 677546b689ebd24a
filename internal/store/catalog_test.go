package store

import (
	"errors"
	"testing"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func newTestMovie(t *testing.T, s *Store, title string) model.Movie {
	t.Helper()
	return s.CreateMovie(model.Movie{Title: title, DurationMin: 120})
}

func newTestShowtime(t *testing.T, s *Store, movieID uint64, st model.Showtime) model.Showtime {
	t.Helper()
	created, err := s.CreateShowtime(movieID, st)
	if err != nil {
		t.Fatalf("CreateShowtime: %v", err)
	}
	return created
}

func TestCreateMovieAssignsIncreasingIDs(t *testing.T) {
	s := New()
	first := newTestMovie(t, s, "Interstellar")
	second := newTestMovie(t, s, "Dune")
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	got, err := s.GetMovie(first.ID)
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if got.Title != "Interstellar" {
		t.Errorf("title = %q, want Interstellar", got.Title)
	}
}

func TestGetMovieNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetMovie(42); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestUpdateMoviePartial(t *testing.T) {
	s := New()
	m := s.CreateMovie(model.Movie{
		Title:       "Interstellar",
		Synopsis:    strPtr("Space and time"),
		DurationMin: 169,
		Rating:      strPtr("PG-13"),
	})

	updated, err := s.UpdateMovie(m.ID, model.MovieUpdate{
		Title:       strPtr("Interstellar (IMAX)"),
		DurationMin: intPtr(172),
	})
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if updated.Title != "Interstellar (IMAX)" {
		t.Errorf("title = %q, want updated title", updated.Title)
	}
	if updated.DurationMin != 172 {
		t.Errorf("duration = %d, want 172", updated.DurationMin)
	}
	// Fields not present in the update must survive.
	if updated.Synopsis == nil || *updated.Synopsis != "Space and time" {
		t.Errorf("synopsis lost on partial update: %v", updated.Synopsis)
	}
	if updated.Rating == nil || *updated.Rating != "PG-13" {
		t.Errorf("rating lost on partial update: %v", updated.Rating)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	s := New()
	if _, err := s.UpdateMovie(7, model.MovieUpdate{Title: strPtr("x")}); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestCreateShowtimeRequiresMovie(t *testing.T) {
	s := New()
	_, err := s.CreateShowtime(9, model.Showtime{Rows: 2, Cols: 2, Price: 100})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestCreateShowtimeInitializesInventory(t *testing.T) {
	s := New()
	m := newTestMovie(t, s, "Dune")
	st := newTestShowtime(t, s, m.ID, model.Showtime{
		Day: "2025-10-20", Time: "20:00", Studio: "S2", Price: 40000,
		Rows: 2, Cols: 4, ScreenSide: model.ScreenTop,
		DisabledSeats: []string{"B4", "Z9"}, // Z9 is outside the grid and ignored
	})

	seats, err := s.SeatStatuses(st.ID)
	if err != nil {
		t.Fatalf("SeatStatuses: %v", err)
	}
	if len(seats) != 8 {
		t.Fatalf("seat count = %d, want 8", len(seats))
	}
	for _, code := range []string{"A1", "A2", "A3", "A4", "B1", "B2", "B3"} {
		if seats[code] != model.SeatAvailable {
			t.Errorf("seat %s = %q, want available", code, seats[code])
		}
	}
	if seats["B4"] != model.SeatBlocked {
		t.Errorf("seat B4 = %q, want blocked", seats["B4"])
	}
	if _, ok := seats["Z9"]; ok {
		t.Errorf("out-of-grid disabled code Z9 must not create a seat")
	}
}

func TestListShowtimesByMovie(t *testing.T) {
	s := New()
	m1 := newTestMovie(t, s, "Interstellar")
	m2 := newTestMovie(t, s, "Dune")
	newTestShowtime(t, s, m1.ID, model.Showtime{Rows: 1, Cols: 1})
	newTestShowtime(t, s, m2.ID, model.Showtime{Rows: 1, Cols: 1})
	newTestShowtime(t, s, m1.ID, model.Showtime{Rows: 1, Cols: 1})

	if got := len(s.ListShowtimes()); got != 3 {
		t.Errorf("total showtimes = %d, want 3", got)
	}
	byMovie := s.ListShowtimesByMovie(m1.ID)
	if len(byMovie) != 2 {
		t.Fatalf("showtimes for movie 1 = %d, want 2", len(byMovie))
	}
	if byMovie[0].ID > byMovie[1].ID {
		t.Errorf("showtimes must be ordered by id")
	}
}

func TestDeleteMovieCascades(t *testing.T) {
	s := New()
	m := newTestMovie(t, s, "Interstellar")
	other := newTestMovie(t, s, "Dune")
	st := newTestShowtime(t, s, m.ID, model.Showtime{Rows: 2, Cols: 2})
	keep := newTestShowtime(t, s, other.ID, model.Showtime{Rows: 1, Cols: 1})

	if err := s.DeleteMovie(m.ID); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if _, err := s.GetMovie(m.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("movie still present after delete")
	}
	if _, err := s.GetShowtime(st.ID); !errors.Is(err, ErrShowtimeNotFound) {
		t.Errorf("showtime survived cascade delete")
	}
	if _, err := s.SeatStatuses(st.ID); !errors.Is(err, ErrShowtimeNotFound) {
		t.Errorf("seat inventory survived cascade delete")
	}
	if _, err := s.RenderLayout(st.ID); !errors.Is(err, ErrShowtimeNotFound) {
		t.Errorf("layout still renders after cascade delete")
	}
	// The other movie's showtime is untouched.
	if _, err := s.GetShowtime(keep.ID); err != nil {
		t.Errorf("unrelated showtime removed by cascade: %v", err)
	}
}

func TestDeleteMovieNotFound(t *testing.T) {
	s := New()
	if err := s.DeleteMovie(3); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}
