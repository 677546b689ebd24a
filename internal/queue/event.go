// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingLine is one purchased cart line inside a booking event.
type BookingLine struct {
	ShowtimeID uint64   `json:"showtime_id"`
	Seats      []string `json:"seats"`
	Subtotal   float64  `json:"subtotal"`
}

// BookingConfirmedEvent is published after a checkout commits.  It
// carries enough information for downstream consumers to log or notify
// without reading the in-process store.
type BookingConfirmedEvent struct {
	BookingCode         string        `json:"booking_code"`
	UserID              string        `json:"user_id"`
	TotalBeforeDiscount float64       `json:"total_before_discount"`
	DiscountAmount      float64       `json:"discount_amount"`
	TotalPaid           float64       `json:"total_paid"`
	Lines               []BookingLine `json:"items"`
	ConfirmedAt         string        `json:"confirmed_at"`
}
