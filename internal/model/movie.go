package model

// Movie is a film in the catalog.  Movies are created and maintained via
// the admin API and referenced by showtimes through MovieID.
//
// Fields:
//  ID          – numeric identifier issued by the store.
//  Title       – display title, required.
//  Synopsis    – optional short description.
//  DurationMin – running time in minutes, at least 1.
//  Rating      – optional age rating (e.g. "PG-13").
//  Genre       – optional genre label.
type Movie struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Synopsis    *string `json:"synopsis"`
	DurationMin int     `json:"duration_min"`
	Rating      *string `json:"rating"`
	Genre       *string `json:"genre"`
}

// MovieUpdate carries a partial update for a movie.  Each field is a
// pointer so that nil means "leave unchanged"; only supplied fields
// overwrite the stored record.
type MovieUpdate struct {
	Title       *string `json:"title"`
	Synopsis    *string `json:"synopsis"`
	DurationMin *int    `json:"duration_min"`
	Rating      *string `json:"rating"`
	Genre       *string `json:"genre"`
}
