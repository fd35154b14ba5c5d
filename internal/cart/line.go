package cart

import "github.com/zstore/storefront/internal/discount"

// Line is one product/options selection in the cart. It keeps the marked-up
// unit price and the options snapshot taken when the line was created, so two
// selections of the same product with different options stay separate lines.
//
// The discounted subtotal is cached: it changes only when the quantity changes
// or a discount is (re)applied. The Cart refreshes it whenever it mutates the
// line; external callers changing quantity must re-apply the discount
// themselves.
type Line struct {
	UPC          string
	Name         string
	OptionsLabel string
	UnitPrice    float64
	Quantity     int

	applied            *discount.Discount
	discountedSubtotal float64
}

// NewLine creates a line for the given product snapshot.
func NewLine(upc, name, optionsLabel string, unitPrice float64, quantity int) *Line {
	if quantity < 0 {
		quantity = 0
	}
	return &Line{UPC: upc, Name: name, OptionsLabel: optionsLabel, UnitPrice: unitPrice, Quantity: quantity}
}

// BaseSubtotal is the pre-discount marked-up subtotal for the line.
func (l *Line) BaseSubtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// AddQuantity adjusts the quantity by n, clamping the result at zero, and
// refreshes the cached discounted subtotal.
func (l *Line) AddQuantity(n int) {
	l.Quantity += n
	if l.Quantity < 0 {
		l.Quantity = 0
	}
	l.refresh()
}

// DecrementOne lowers the quantity by one, floored at zero.
func (l *Line) DecrementOne() {
	if l.Quantity > 0 {
		l.Quantity--
	}
	l.refresh()
}

// ApplyDiscount stores the discount and caches the discounted subtotal. A line
// with no quantity keeps its base subtotal; the discount becomes effective when
// quantity is next refreshed.
func (l *Line) ApplyDiscount(d discount.Discount) {
	l.applied = &d
	l.refresh()
}

// RemoveDiscount clears the discount; the subtotal reverts to the base value.
func (l *Line) RemoveDiscount() {
	l.applied = nil
	l.discountedSubtotal = 0
}

// Discount returns the applied discount, if any.
func (l *Line) Discount() *discount.Discount {
	return l.applied
}

// DiscountedSubtotal returns the cached discounted value, or the plain
// marked-up subtotal when no discount is applied.
func (l *Line) DiscountedSubtotal() float64 {
	if l.applied == nil {
		return l.BaseSubtotal()
	}
	return l.discountedSubtotal
}

func (l *Line) refresh() {
	if l.applied == nil {
		return
	}
	if l.Quantity < 1 {
		l.discountedSubtotal = l.BaseSubtotal()
		return
	}
	l.discountedSubtotal = l.applied.ApplyTo(l.BaseSubtotal(), l.Quantity)
}
