package model

// CartItem is one line in a user's cart: a batch of seats reserved
// together for a single showtime.  Subtotal is always recomputed from the
// current showtime price, never cached.
type CartItem struct {
	ID         string   `json:"id"`
	ShowtimeID uint64   `json:"showtime_id"`
	Seats      []string `json:"seats"`
	Subtotal   float64  `json:"subtotal"`
}

// Cart is the summary view of a user's cart.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}
