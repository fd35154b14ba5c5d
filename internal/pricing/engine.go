package pricing

import "fmt"

// Default rates applied store-wide. The markup is the fractional increase over
// the manufacturer's price; the tax rate is the sales tax fraction.
const (
	DefaultMarkup  = 0.50
	DefaultTaxRate = 0.07
)

// Engine converts manufacturer prices into customer-facing prices and computes
// sales tax. All operations are pure and total; rounding to currency precision
// is a presentation concern handled by FormatUSD only.
type Engine struct {
	Markup  float64
	TaxRate float64
}

// NewEngine returns an engine with the store default rates.
func NewEngine() Engine {
	return Engine{Markup: DefaultMarkup, TaxRate: DefaultTaxRate}
}

// MarkedUpPrice returns the customer-facing unit price for a manufacturer price.
func (e Engine) MarkedUpPrice(base float64) float64 {
	return base * (1 + e.Markup)
}

// SalesTax returns the tax owed on the provided amount.
func (e Engine) SalesTax(amount float64) float64 {
	return amount * e.TaxRate
}

// AfterTaxPrice returns the marked-up, after-tax price for a single unit.
func (e Engine) AfterTaxPrice(base float64) float64 {
	return e.MarkedUpPrice(base) * (1 + e.TaxRate)
}

// FormatUSD renders an amount as a display currency string with two decimals.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
