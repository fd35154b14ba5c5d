package inventory

import (
	"errors"
	"fmt"
	"sync"
)

// ErrProductNotFound indicates the UPC does not exist in the inventory.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock indicates a reservation exceeded the available stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// Inventory owns the store's products for the process lifetime. A single
// coarse lock covers stock movements; everything else is read-only after
// seeding.
type Inventory struct {
	mu         sync.Mutex
	byUPC      map[string]*Product
	byCategory map[string][]*Product
	categories []string
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{
		byUPC:      make(map[string]*Product),
		byCategory: make(map[string][]*Product),
	}
}

// Add registers products, indexing them by UPC and category.
func (inv *Inventory) Add(products ...*Product) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, p := range products {
		if _, seen := inv.byCategory[p.Category]; !seen && p.Category != "" {
			inv.categories = append(inv.categories, p.Category)
		}
		inv.byUPC[p.UPC] = p
		if p.Category != "" {
			inv.byCategory[p.Category] = append(inv.byCategory[p.Category], p)
		}
	}
}

// ProductByUPC resolves a product by its identifier.
func (inv *Inventory) ProductByUPC(upc string) (*Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, ok := inv.byUPC[upc]
	if !ok {
		return nil, fmt.Errorf("upc %q: %w", upc, ErrProductNotFound)
	}
	return p, nil
}

// ProductsByCategory lists the products of one category in seed order.
func (inv *Inventory) ProductsByCategory(category string) []*Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]*Product(nil), inv.byCategory[category]...)
}

// AllProducts lists every product grouped by category seed order.
func (inv *Inventory) AllProducts() []*Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	var all []*Product
	for _, category := range inv.categories {
		all = append(all, inv.byCategory[category]...)
	}
	return all
}

// Categories returns the category names in seed order.
func (inv *Inventory) Categories() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]string(nil), inv.categories...)
}

// Reserve decrements stock for a sale. The operation is all-or-nothing: stock
// never goes negative and a failed reservation leaves it untouched.
func (inv *Inventory) Reserve(upc string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("reserve quantity %d: must not be negative", qty)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, ok := inv.byUPC[upc]
	if !ok {
		return fmt.Errorf("upc %q: %w", upc, ErrProductNotFound)
	}
	if qty > p.Stock {
		return fmt.Errorf("upc %q: requested %d, available %d: %w", upc, qty, p.Stock, ErrInsufficientStock)
	}
	p.Stock -= qty
	return nil
}

// Release returns previously reserved stock, e.g. when a host chooses to
// restock on cart-line removal.
func (inv *Inventory) Release(upc string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("release quantity %d: must not be negative", qty)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, ok := inv.byUPC[upc]
	if !ok {
		return fmt.Errorf("upc %q: %w", upc, ErrProductNotFound)
	}
	p.Stock += qty
	return nil
}
