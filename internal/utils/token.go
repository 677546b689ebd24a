package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewCartItemID returns a short opaque identifier for a cart line item.
// Eight hex characters of a random UUID are plenty for a per-user cart.
func NewCartItemID() string {
	return uuid.NewString()[:8]
}

// NewBookingCode returns a human-readable booking code of the form
// "BKG-XXXXXXXXXX".  The ledger re-rolls the code on the unlikely event
// of a collision, so this function does not need to guarantee uniqueness.
func NewBookingCode() string {
	hexID := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BKG-" + strings.ToUpper(hexID[:10])
}
