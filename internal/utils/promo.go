package utils

import "strings"

// ApplyPromo returns the discount amount for a promo code applied to a
// cart total.  Codes are matched case-insensitively against a fixed
// table; unknown or empty codes yield no discount.
func ApplyPromo(total float64, code string) float64 {
	switch strings.ToUpper(code) {
	case "DISCOUNT10":
		return 0.10 * total
	case "STUDENT20":
		return 0.20 * total
	default:
		return 0
	}
}
