package store

import (
	"sort"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CreateMovie assigns the next movie ID and stores the record.
func (s *Store) CreateMovie(m model.Movie) model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMovieID++
	m.ID = s.nextMovieID
	s.movies[m.ID] = m
	return m
}

// GetMovie returns the movie with the given ID.
func (s *Store) GetMovie(id uint64) (model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, nil
}

// ListMovies returns all movies ordered by ID.
func (s *Store) ListMovies() []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateMovie merges the supplied fields into an existing movie.  Nil
// fields in upd leave the stored value untouched.
func (s *Store) UpdateMovie(id uint64, upd model.MovieUpdate) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Synopsis != nil {
		m.Synopsis = upd.Synopsis
	}
	if upd.DurationMin != nil {
		m.DurationMin = *upd.DurationMin
	}
	if upd.Rating != nil {
		m.Rating = upd.Rating
	}
	if upd.Genre != nil {
		m.Genre = upd.Genre
	}
	s.movies[id] = m
	return m, nil
}

// DeleteMovie removes a movie together with every showtime, seat
// inventory and layout metadata entry that references it.  The whole
// cascade happens under one write lock, so no caller can observe a
// partial state.  Outstanding bookings are left untouched.
func (s *Store) DeleteMovie(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[id]; !ok {
		return ErrMovieNotFound
	}
	for sid, st := range s.showtimes {
		if st.MovieID != id {
			continue
		}
		delete(s.showtimes, sid)
		delete(s.seats, sid)
		delete(s.meta, sid)
	}
	delete(s.movies, id)
	return nil
}

// CreateShowtime stores a new showtime for an existing movie and builds
// its seat inventory in the same critical section: every code inside the
// rows x cols grid starts as available, then codes listed in
// DisabledSeats are marked blocked (unknown codes are ignored).
func (s *Store) CreateShowtime(movieID uint64, st model.Showtime) (model.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movies[movieID]; !ok {
		return model.Showtime{}, ErrMovieNotFound
	}
	s.nextShowtimeID++
	st.ID = s.nextShowtimeID
	st.MovieID = movieID
	s.showtimes[st.ID] = st
	s.seats[st.ID] = newSeatMap(st)
	s.meta[st.ID] = newShowtimeMeta(st)
	return st, nil
}

// GetShowtime returns the showtime with the given ID.
func (s *Store) GetShowtime(id uint64) (model.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.showtimes[id]
	if !ok {
		return model.Showtime{}, ErrShowtimeNotFound
	}
	return st, nil
}

// ListShowtimes returns every showtime ordered by ID.
func (s *Store) ListShowtimes() []model.Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listShowtimesLocked(nil)
}

// ListShowtimesByMovie returns the showtimes of one movie ordered by ID.
func (s *Store) ListShowtimesByMovie(movieID uint64) []model.Showtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listShowtimesLocked(&movieID)
}

func (s *Store) listShowtimesLocked(movieID *uint64) []model.Showtime {
	out := make([]model.Showtime, 0, len(s.showtimes))
	for _, st := range s.showtimes {
		if movieID != nil && st.MovieID != *movieID {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
