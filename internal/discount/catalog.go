package discount

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ErrNotFound indicates the promo code does not exist in the catalog.
var ErrNotFound = errors.New("discount code not found")

// Record is the wire shape of one catalog entry. Field names mirror the
// discount catalog file format.
type Record struct {
	Code                 string     `json:"code" validate:"required"`
	DiscountType         string     `json:"discount_type" validate:"required,oneof=FLAT PERCENTAGE BOGO BOGO_PERCENTAGE"`
	Amount               float64    `json:"discount_amount" validate:"gte=0"`
	IsPercentage         bool       `json:"is_percentage"`
	RequiredQuantity     int        `json:"required_quantity" validate:"gte=0"`
	DiscountOnAdditional float64    `json:"discount_on_additional" validate:"gte=0,lte=1"`
	IsItemSpecific       bool       `json:"is_item_specific"`
	ApplicableUPCs       []string   `json:"applicable_product_upcs"`
	ValidFrom            *time.Time `json:"valid_from"`
	ValidTo              *time.Time `json:"valid_to"`
}

// Catalog is an immutable promo code lookup table, populated once at load time.
type Catalog struct {
	byCode map[string]Discount
	Now    func() time.Time
}

// Load reads and parses the catalog file. A missing or malformed file is a
// fatal startup condition for the caller.
func Load(path string, logger zerolog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open discount catalog: %w", err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse discount catalog %s: %w", path, err)
	}
	for code, d := range c.byCode {
		logger.Debug().Str("code", code).Str("kind", string(d.Kind)).Bool("item_specific", d.ItemSpecific).Msg("discount loaded")
	}
	logger.Info().Int("count", len(c.byCode)).Str("path", path).Msg("discount catalog loaded")
	return c, nil
}

// Parse decodes catalog records from the reader and builds the lookup table.
// Duplicate codes and invalid records fail the whole load.
func Parse(r io.Reader) (*Catalog, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	validate := validator.New()
	byCode := make(map[string]Discount, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Code, err)
		}
		d, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Code, err)
		}
		if _, exists := byCode[d.Code]; exists {
			return nil, fmt.Errorf("record %d: duplicate code %q", i, d.Code)
		}
		byCode[d.Code] = d
	}
	return &Catalog{byCode: byCode}, nil
}

func fromRecord(rec Record) (Discount, error) {
	kind := Kind(rec.DiscountType)
	switch kind {
	case BOGO, BOGOPercentage:
		if rec.RequiredQuantity < 1 {
			return Discount{}, fmt.Errorf("%s requires required_quantity >= 1", kind)
		}
	case Percentage:
		if rec.Amount > 1 {
			return Discount{}, fmt.Errorf("percentage rate %v out of range", rec.Amount)
		}
	case Flat:
	default:
		return Discount{}, fmt.Errorf("unknown discount_type %q", rec.DiscountType)
	}
	var upcs map[string]struct{}
	if len(rec.ApplicableUPCs) > 0 {
		upcs = make(map[string]struct{}, len(rec.ApplicableUPCs))
		for _, upc := range rec.ApplicableUPCs {
			upcs[upc] = struct{}{}
		}
	}
	return Discount{
		Code:                 rec.Code,
		Kind:                 kind,
		Amount:               rec.Amount,
		RequiredQuantity:     rec.RequiredQuantity,
		DiscountOnAdditional: rec.DiscountOnAdditional,
		ItemSpecific:         rec.IsItemSpecific,
		ApplicableUPCs:       upcs,
		ValidFrom:            rec.ValidFrom,
		ValidTo:              rec.ValidTo,
	}, nil
}

func (c *Catalog) now() time.Time {
	if c != nil && c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Lookup resolves a promo code. Codes are case-sensitive exact matches.
func (c *Catalog) Lookup(code string) (Discount, error) {
	if c == nil {
		return Discount{}, ErrNotFound
	}
	d, ok := c.byCode[code]
	if !ok {
		return Discount{}, ErrNotFound
	}
	return d, nil
}

// IsValid reports whether the code exists and is inside its validity window.
func (c *Catalog) IsValid(code string) bool {
	d, err := c.Lookup(code)
	if err != nil {
		return false
	}
	return d.ActiveAt(c.now())
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byCode)
}
