package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zstore/storefront/internal/discount"
	"github.com/zstore/storefront/internal/inventory"
	"github.com/zstore/storefront/internal/pricing"
)

// ErrInsufficientStock is returned when the requested quantity exceeds the
// product's available stock. The cart and the stock are left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidQuantity is returned for non-positive add quantities.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// ErrDiscountNotActive indicates the promo code exists but is outside its
// validity window.
var ErrDiscountNotActive = errors.New("discount not active")

// Cart aggregates lines, at most one cart-scoped discount, and the record of
// applied promo codes. One coarse lock covers all operations; the core is
// synchronous and needs no finer-grained coordination.
type Cart struct {
	mu sync.Mutex

	engine  pricing.Engine
	catalog *discount.Catalog
	inv     *inventory.Inventory

	lines        []*Line
	cartDiscount *discount.Discount
	applied      map[string]discount.Discount
	appliedOrder []string

	Now func() time.Time
}

// New returns an empty cart backed by the given collaborators.
func New(engine pricing.Engine, catalog *discount.Catalog, inv *inventory.Inventory) *Cart {
	return &Cart{
		engine:  engine,
		catalog: catalog,
		inv:     inv,
		applied: make(map[string]discount.Discount),
	}
}

func (c *Cart) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// AddProduct reserves stock and adds the product to the cart under its current
// option selections. A selection matching an existing line increments that
// line; otherwise a new line is created. The operation is all-or-nothing: on
// any failure neither the cart nor the stock changes.
func (c *Cart) AddProduct(upc string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("add %d of %q: %w", qty, upc, ErrInvalidQuantity)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.inv.ProductByUPC(upc)
	if err != nil {
		return err
	}
	optionsLabel := p.SelectedOptionsLabel()
	line := c.findLine(upc, optionsLabel)

	if line != nil {
		if line.Quantity+qty > p.Stock {
			return fmt.Errorf("add %d of %q (have %d, stock %d): %w", qty, upc, line.Quantity, p.Stock, ErrInsufficientStock)
		}
	} else if qty > p.Stock {
		return fmt.Errorf("add %d of %q (stock %d): %w", qty, upc, p.Stock, ErrInsufficientStock)
	}
	if err := c.inv.Reserve(upc, qty); err != nil {
		if errors.Is(err, inventory.ErrInsufficientStock) {
			return fmt.Errorf("add %d of %q: %w", qty, upc, ErrInsufficientStock)
		}
		return err
	}

	if line != nil {
		line.AddQuantity(qty)
		return nil
	}
	c.lines = append(c.lines, NewLine(upc, p.Name, optionsLabel, c.engine.MarkedUpPrice(p.BasePrice), qty))
	return nil
}

// RemoveProduct drops every line for the UPC, regardless of option selection.
// Stock is not restored; hosts that want restock-on-removal call
// inventory.Release themselves.
func (c *Cart) RemoveProduct(upc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.UPC != upc {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// DecrementLine lowers a line's quantity by one, floored at zero. Zero-quantity
// lines are pruned.
func (c *Cart) DecrementLine(upc, optionsLabel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line := c.findLine(upc, optionsLabel)
	if line == nil {
		return
	}
	line.DecrementOne()
	if line.Quantity == 0 {
		kept := c.lines[:0]
		for _, l := range c.lines {
			if l != line {
				kept = append(kept, l)
			}
		}
		c.lines = kept
	}
}

// ApplyDiscountCode resolves a promo code and applies it: item-specific
// discounts fan out to every matching line, cart-scoped discounts become the
// single active cart discount. Unknown codes are reported, not fatal.
func (c *Cart) ApplyDiscountCode(code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.catalog.Lookup(code)
	if err != nil {
		return fmt.Errorf("apply code %q: %w", code, err)
	}
	if !d.ActiveAt(c.now()) {
		return fmt.Errorf("apply code %q: %w", code, ErrDiscountNotActive)
	}

	if d.ItemSpecific {
		for _, l := range c.lines {
			if l.Quantity >= 1 && d.AppliesTo(l.UPC) {
				l.ApplyDiscount(d)
			}
		}
	} else {
		c.cartDiscount = &d
	}

	if _, seen := c.applied[code]; !seen {
		c.appliedOrder = append(c.appliedOrder, code)
	}
	c.applied[code] = d
	return nil
}

// ClearDiscounts removes the cart-wide discount, every per-line discount, and
// the applied-codes record.
func (c *Cart) ClearDiscounts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartDiscount = nil
	c.applied = make(map[string]discount.Discount)
	c.appliedOrder = nil
	for _, l := range c.lines {
		l.RemoveDiscount()
	}
}

// Subtotal is the pre-discount marked-up sum over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

// TotalTax is the sales tax on the pre-discount subtotal.
func (c *Cart) TotalTax() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SalesTax(c.subtotalLocked())
}

// TotalDiscountAmount is the sum of per-line deductions plus the cart-wide
// discount's effect, measured as the difference the cart discount makes on the
// final total.
func (c *Cart) TotalDiscountAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		if l.Quantity < 1 {
			continue
		}
		total += l.BaseSubtotal() - l.DiscountedSubtotal()
	}
	before := c.totalBeforeCartDiscountLocked()
	total += before - c.applyCartDiscountLocked(before)
	return total
}

// TotalAfterDiscounts is the grand total: discounted line subtotals plus tax,
// passed once through the cart-wide discount when one is active.
func (c *Cart) TotalAfterDiscounts() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyCartDiscountLocked(c.totalBeforeCartDiscountLocked())
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Clear drops all lines. Discounts and stock are untouched.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a snapshot copy of the line values in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// AppliedCodes lists the applied promo codes in first-applied order.
func (c *Cart) AppliedCodes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.appliedOrder...)
}

// CartDiscount returns the active cart-scoped discount, if any.
func (c *Cart) CartDiscount() *discount.Discount {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cartDiscount == nil {
		return nil
	}
	d := *c.cartDiscount
	return &d
}

func (c *Cart) findLine(upc, optionsLabel string) *Line {
	for _, l := range c.lines {
		if l.UPC == upc && l.OptionsLabel == optionsLabel {
			return l
		}
	}
	return nil
}

func (c *Cart) subtotalLocked() float64 {
	var total float64
	for _, l := range c.lines {
		if l.Quantity < 1 {
			continue
		}
		total += l.BaseSubtotal()
	}
	return total
}

func (c *Cart) totalBeforeCartDiscountLocked() float64 {
	var total float64
	for _, l := range c.lines {
		if l.Quantity < 1 {
			continue
		}
		total += l.DiscountedSubtotal()
	}
	return total + c.engine.SalesTax(c.subtotalLocked())
}

// applyCartDiscountLocked runs the cart-scoped discount over the aggregate once,
// with quantity fixed at 1.
func (c *Cart) applyCartDiscountLocked(total float64) float64 {
	if c.cartDiscount == nil {
		return total
	}
	return c.cartDiscount.ApplyTo(total, 1)
}
