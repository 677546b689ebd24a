package model

// Booking is the immutable record produced by a successful checkout.  It
// is stored in the booking ledger under BookingCode and never mutated or
// deleted afterwards.
//
// Fields:
//  BookingCode         – unique code of the form "BKG-XXXXXXXXXX".
//  UserID              – user who checked out.
//  TotalBeforeDiscount – sum of line subtotals at checkout time.
//  DiscountAmount      – promo discount applied (0 for unknown codes).
//  TotalPaid           – total after discount, never negative.
//  Items               – the purchased cart lines with their subtotals.
//  Timestamp           – checkout time, second precision.
type Booking struct {
	BookingCode         string     `json:"booking_code"`
	UserID              string     `json:"user_id"`
	TotalBeforeDiscount float64    `json:"total_before_discount"`
	DiscountAmount      float64    `json:"discount_amount"`
	TotalPaid           float64    `json:"total_paid"`
	Items               []CartItem `json:"items"`
	Timestamp           string     `json:"timestamp"`
}
