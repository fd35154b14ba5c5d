package inventory

import (
	"sort"
	"strings"
)

// Product is a catalog entry identified by its UPC. Stock is mutated only
// through the owning Inventory's Reserve/Release; option selection state is
// per-product display state, not stock.
type Product struct {
	UPC         string
	Name        string
	Description string
	Category    string
	BasePrice   float64
	Stock       int
	Options     map[string][]string
	Selected    map[string]string
}

// NewProduct constructs a product with empty option sets.
func NewProduct(name, upc string, basePrice float64, stock int, category string) *Product {
	return &Product{
		UPC:       upc,
		Name:      name,
		Category:  category,
		BasePrice: basePrice,
		Stock:     stock,
		Options:   make(map[string][]string),
		Selected:  make(map[string]string),
	}
}

// AddOption registers an option category with its selectable values.
func (p *Product) AddOption(category string, values []string) {
	p.Options[category] = append([]string(nil), values...)
}

// SetSelectedOption records the currently selected value for an option
// category. Unknown values are accepted; validation is a front-end concern.
func (p *Product) SetSelectedOption(category, value string) {
	if p.Selected == nil {
		p.Selected = make(map[string]string)
	}
	p.Selected[category] = value
}

// SelectedOptionsLabel returns a stable snapshot string of the current option
// selections, e.g. "Color: Black, Storage: 256GB SSD". Lines in a cart use this
// snapshot to tell otherwise-identical products apart.
func (p *Product) SelectedOptionsLabel() string {
	if len(p.Selected) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p.Selected))
	for k := range p.Selected {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+p.Selected[k])
	}
	return strings.Join(parts, ", ")
}
