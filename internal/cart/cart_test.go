package cart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zstore/storefront/internal/discount"
	"github.com/zstore/storefront/internal/inventory"
	"github.com/zstore/storefront/internal/pricing"
)

const testCatalog = `[
  {"code": "TEN", "discount_type": "PERCENTAGE", "discount_amount": 0.10, "is_percentage": true},
  {"code": "FLAT15", "discount_type": "FLAT", "discount_amount": 15},
  {
    "code": "CAMDEAL",
    "discount_type": "BOGO",
    "required_quantity": 2,
    "is_item_specific": true,
    "applicable_product_upcs": ["100"]
  }
]`

func newFixture(t *testing.T) (*Cart, *inventory.Inventory) {
	t.Helper()
	catalog, err := discount.Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	inv := inventory.New()
	camera := inventory.NewProduct("Camera", "100", 100, 10, "Cameras")
	laptop := inventory.NewProduct("Laptop", "200", 1000, 3, "Laptops")
	laptop.AddOption("Color", []string{"Black", "Silver"})
	inv.Add(camera, laptop)

	return New(pricing.NewEngine(), catalog, inv), inv
}

func TestAddProduct(t *testing.T) {
	c, inv := newFixture(t)
	require.NoError(t, c.AddProduct("100", 2))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, 150.0, lines[0].UnitPrice)

	p, _ := inv.ProductByUPC("100")
	require.Equal(t, 8, p.Stock)
}

func TestAddProductInvalidQuantity(t *testing.T) {
	c, _ := newFixture(t)
	require.ErrorIs(t, c.AddProduct("100", 0), ErrInvalidQuantity)
	require.ErrorIs(t, c.AddProduct("100", -1), ErrInvalidQuantity)
}

func TestAddProductInsufficientStockIsNoOp(t *testing.T) {
	c, inv := newFixture(t)
	err := c.AddProduct("200", 5)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Empty(t, c.Lines())

	p, _ := inv.ProductByUPC("200")
	require.Equal(t, 3, p.Stock)
}

func TestAddProductCombinedQuantityCheck(t *testing.T) {
	c, inv := newFixture(t)
	require.NoError(t, c.AddProduct("200", 2))
	// Existing line holds 2; combined 2+1 exceeds the remaining stock of 1.
	err := c.AddProduct("200", 1)
	require.ErrorIs(t, err, ErrInsufficientStock)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	p, _ := inv.ProductByUPC("200")
	require.Equal(t, 1, p.Stock)
}

func TestAddProductOptionSnapshotsMakeSeparateLines(t *testing.T) {
	c, inv := newFixture(t)
	p, _ := inv.ProductByUPC("200")

	p.SetSelectedOption("Color", "Black")
	require.NoError(t, c.AddProduct("200", 1))
	p.SetSelectedOption("Color", "Silver")
	require.NoError(t, c.AddProduct("200", 1))
	require.Len(t, c.Lines(), 2)

	// Same selection again merges into the existing line.
	require.NoError(t, c.AddProduct("200", 1))
	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, 2, lines[1].Quantity)
}

func TestRemoveProductDropsAllSelections(t *testing.T) {
	c, inv := newFixture(t)
	p, _ := inv.ProductByUPC("200")
	p.SetSelectedOption("Color", "Black")
	require.NoError(t, c.AddProduct("200", 1))
	p.SetSelectedOption("Color", "Silver")
	require.NoError(t, c.AddProduct("200", 1))
	require.NoError(t, c.AddProduct("100", 1))

	c.RemoveProduct("200")
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "100", lines[0].UPC)
}

func TestDecrementLinePrunesAtZero(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 1))
	c.DecrementLine("100", "")
	require.Empty(t, c.Lines())
	require.Equal(t, 0, c.ItemCount())
}

func TestApplyDiscountCodeUnknown(t *testing.T) {
	c, _ := newFixture(t)
	err := c.ApplyDiscountCode("NOPE")
	require.ErrorIs(t, err, discount.ErrNotFound)
	// Codes are case-sensitive.
	require.ErrorIs(t, c.ApplyDiscountCode("ten"), discount.ErrNotFound)
}

func TestApplyItemSpecificDiscount(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 4)) // 4 x 150 = 600
	require.NoError(t, c.AddProduct("200", 1))
	require.NoError(t, c.ApplyDiscountCode("CAMDEAL"))

	lines := c.Lines()
	// BOGO buy-2: two free units at the average unit price of 150.
	require.InDelta(t, 300, lines[0].DiscountedSubtotal(), 1e-9)
	// Non-matching line untouched.
	require.InDelta(t, 1500, lines[1].DiscountedSubtotal(), 1e-9)
	require.InDelta(t, 300, c.TotalDiscountAmount(), 1e-9)
	require.Equal(t, []string{"CAMDEAL"}, c.AppliedCodes())
}

func TestDiscountRefreshedWhenQuantityGrows(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 2))
	require.NoError(t, c.ApplyDiscountCode("CAMDEAL"))
	require.InDelta(t, 150, c.Lines()[0].DiscountedSubtotal(), 1e-9)

	// Adding to the line must re-run the discount against the new quantity.
	require.NoError(t, c.AddProduct("100", 2))
	require.InDelta(t, 300, c.Lines()[0].DiscountedSubtotal(), 1e-9)
}

func TestCartWideDiscountEndToEnd(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 2)) // base 100, marked up 150 each

	require.InDelta(t, 300, c.Subtotal(), 1e-9)
	require.InDelta(t, 21, c.TotalTax(), 1e-9)
	require.InDelta(t, 321, c.TotalAfterDiscounts(), 1e-9)

	require.NoError(t, c.ApplyDiscountCode("TEN"))
	require.InDelta(t, 288.90, c.TotalAfterDiscounts(), 1e-9)
	// The cart-wide percentage effect is tracked as before-minus-after.
	require.InDelta(t, 32.10, c.TotalDiscountAmount(), 1e-9)
}

func TestClearDiscountsRestoresLines(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 4))
	require.NoError(t, c.ApplyDiscountCode("CAMDEAL"))
	require.NoError(t, c.ApplyDiscountCode("TEN"))
	require.NotEmpty(t, c.AppliedCodes())

	c.ClearDiscounts()
	require.Empty(t, c.AppliedCodes())
	require.Nil(t, c.CartDiscount())
	lines := c.Lines()
	require.InDelta(t, lines[0].BaseSubtotal(), lines[0].DiscountedSubtotal(), 1e-9)
	require.InDelta(t, 0, c.TotalDiscountAmount(), 1e-9)
}

func TestReapplyingCodeIsIdempotent(t *testing.T) {
	c, _ := newFixture(t)
	require.NoError(t, c.AddProduct("100", 2))
	require.NoError(t, c.ApplyDiscountCode("TEN"))
	require.NoError(t, c.ApplyDiscountCode("TEN"))
	require.Equal(t, []string{"TEN"}, c.AppliedCodes())
	require.InDelta(t, 288.90, c.TotalAfterDiscounts(), 1e-9)
}

func TestClearDropsLinesWithoutRestock(t *testing.T) {
	c, inv := newFixture(t)
	require.NoError(t, c.AddProduct("100", 3))
	c.Clear()
	require.Empty(t, c.Lines())

	p, _ := inv.ProductByUPC("100")
	require.Equal(t, 7, p.Stock)
}

func TestUnknownProduct(t *testing.T) {
	c, _ := newFixture(t)
	err := c.AddProduct("999", 1)
	require.True(t, errors.Is(err, inventory.ErrProductNotFound))
}
