package discount

import "time"

// Kind identifies one of the closed set of promotional rule variants. The kind
// is fixed at construction; ApplyTo dispatches on it exhaustively.
type Kind string

const (
	// Flat deducts an absolute currency amount once, regardless of quantity.
	Flat Kind = "FLAT"
	// Percentage deducts a fraction of the amount.
	Percentage Kind = "PERCENTAGE"
	// BOGO grants one unit free, at the average per-unit price, per qualifying
	// group of RequiredQuantity units.
	BOGO Kind = "BOGO"
	// BOGOPercentage grants a fractional deduction on one unit per qualifying
	// group of RequiredQuantity units.
	BOGOPercentage Kind = "BOGO_PERCENTAGE"
)

// Discount is an immutable promotional rule keyed by its code. Only the
// parameters relevant to the kind are meaningful; the rest are zero.
type Discount struct {
	Code                 string
	Kind                 Kind
	Amount               float64
	RequiredQuantity     int
	DiscountOnAdditional float64
	ItemSpecific         bool
	ApplicableUPCs       map[string]struct{}
	ValidFrom            *time.Time
	ValidTo              *time.Time
}

// ApplyTo transforms an amount given the purchased quantity. Quantity must be
// at least 1 for the BOGO kinds; lower values leave the amount unchanged, which
// is the call-site contract for empty lines.
func (d Discount) ApplyTo(amount float64, quantity int) float64 {
	switch d.Kind {
	case Flat:
		return amount - d.Amount
	case Percentage:
		return amount * (1 - d.Amount)
	case BOGO:
		if quantity < 1 || d.RequiredQuantity < 1 {
			return amount
		}
		eligibleFree := quantity / d.RequiredQuantity
		return amount - float64(eligibleFree)*(amount/float64(quantity))
	case BOGOPercentage:
		if quantity < 1 || d.RequiredQuantity < 1 {
			return amount
		}
		discountUnits := quantity / d.RequiredQuantity
		return amount - (amount/float64(quantity))*float64(discountUnits)*d.DiscountOnAdditional
	default:
		return amount
	}
}

// AppliesTo reports whether an item-specific discount covers the given product.
// Cart-scoped discounts apply to no individual line.
func (d Discount) AppliesTo(upc string) bool {
	if !d.ItemSpecific {
		return false
	}
	_, ok := d.ApplicableUPCs[upc]
	return ok
}

// ActiveAt reports whether the discount's validity window covers the instant.
// Discounts without an explicit window are always active.
func (d Discount) ActiveAt(now time.Time) bool {
	if d.ValidFrom != nil && now.Before(*d.ValidFrom) {
		return false
	}
	if d.ValidTo != nil && now.After(*d.ValidTo) {
		return false
	}
	return true
}
