package receipt

import (
	"time"

	"github.com/zstore/storefront/internal/cart"
)

// Transaction is the immutable record of one checkout: a snapshot of the cart's
// lines and aggregate figures at the moment Checkout was called. It is never
// mutated afterwards; the cart it was taken from remains free to change.
type Transaction struct {
	ID            string
	Timestamp     time.Time
	Lines         []cart.Line
	Subtotal      float64
	Tax           float64
	TotalDiscount float64
	Total         float64
	AppliedCodes  []string
}
