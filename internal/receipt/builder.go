package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zstore/storefront/internal/cart"
	"github.com/zstore/storefront/internal/pricing"
)

const divider = "----------------------------------"

// Builder turns finalized carts into transactions and renders them as
// plain-text receipts.
type Builder struct {
	StoreName string
	Now       func() time.Time
}

// NewBuilder returns a builder stamping receipts with the store name.
func NewBuilder(storeName string) *Builder {
	return &Builder{StoreName: storeName}
}

func (b *Builder) now() time.Time {
	if b != nil && b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Checkout captures a transaction snapshot from the cart. The cart is not
// cleared; that remains the caller's decision.
func (b *Builder) Checkout(c *cart.Cart) Transaction {
	return Transaction{
		ID:            uuid.NewString(),
		Timestamp:     b.now(),
		Lines:         c.Lines(),
		Subtotal:      c.Subtotal(),
		Tax:           c.TotalTax(),
		TotalDiscount: c.TotalDiscountAmount(),
		Total:         c.TotalAfterDiscounts(),
		AppliedCodes:  c.AppliedCodes(),
	}
}

// Render produces the fixed-layout plain-text receipt.
func (b *Builder) Render(tx Transaction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", b.StoreName)
	fmt.Fprintf(&sb, "Transaction ID: %s\n", tx.ID)
	fmt.Fprintf(&sb, "Timestamp: %s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))

	sb.WriteString("\nItems Purchased:\n")
	for _, l := range tx.Lines {
		if l.Quantity < 1 {
			continue
		}
		options := l.OptionsLabel
		if options == "" {
			options = "standard"
		}
		fmt.Fprintf(&sb, "- %s (%s) x %d: %s\n", l.Name, options, l.Quantity, pricing.FormatUSD(l.DiscountedSubtotal()))
	}

	sb.WriteString("\nDiscounts:\n")
	if len(tx.AppliedCodes) == 0 {
		sb.WriteString("None\n")
	} else {
		sb.WriteString(strings.Join(tx.AppliedCodes, ", ") + "\n")
	}

	sb.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&sb, "Subtotal:            %s\n", pricing.FormatUSD(tx.Subtotal))
	fmt.Fprintf(&sb, "Tax:                 %s\n", pricing.FormatUSD(tx.Tax))
	fmt.Fprintf(&sb, "Total Discount:      -%s\n", pricing.FormatUSD(tx.TotalDiscount))
	fmt.Fprintf(&sb, "Total:               %s\n", pricing.FormatUSD(tx.Total))
	sb.WriteString(divider + "\n")
	sb.WriteString("\n!!!THANK YOU!!!\n")
	return sb.String()
}

// Save writes the rendered receipt to <dir>/<transaction id>.txt, creating the
// directory when needed, and returns the written path.
func (b *Builder) Save(tx Transaction, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipts dir: %w", err)
	}
	path := filepath.Join(dir, tx.ID+".txt")
	if err := os.WriteFile(path, []byte(b.Render(tx)), 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}
