// Package cart keeps a diner's selections before checkout. Prices are captured
// when a line is added and never follow later menu edits.
package cart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/pricing"
)

var (
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrUnknownVariant  = errors.New("unknown variant for menu item")
	ErrUnknownAddOn    = errors.New("unknown add-on for menu item")
	ErrLineNotFound    = errors.New("cart line not found")
)

type Outcome string

const (
	Added                    Outcome = "added"
	VariantSelectionRequired Outcome = "variant_selection_required"
)

// AddResult tells the caller whether a line was created or whether the diner
// has to pick a variant first.
type AddResult struct {
	Outcome Outcome          `json:"outcome"`
	Line    *Line            `json:"line,omitempty"`
	Item    *domain.MenuItem `json:"item,omitempty"`
}

type Line struct {
	ID        string          `json:"id"`
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	Variant   *domain.Variant `json:"variant,omitempty"`
	AddOns    []domain.AddOn  `json:"add_ons"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddLine appends a line with quantity 1. An item that declares variants is
// not added until one is named; the result asks for a variant instead.
func (c *Cart) AddLine(item domain.MenuItem, variantName string, addOnNames []string) (AddResult, error) {
	if !item.Available {
		return AddResult{}, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}

	var variant *domain.Variant
	if item.HasVariants() {
		if variantName == "" {
			return AddResult{Outcome: VariantSelectionRequired, Item: &item}, nil
		}
		v, ok := item.FindVariant(variantName)
		if !ok {
			return AddResult{}, fmt.Errorf("%w: %q on %s", ErrUnknownVariant, variantName, item.Name)
		}
		variant = &v
	} else if variantName != "" {
		return AddResult{}, fmt.Errorf("%w: %q on %s", ErrUnknownVariant, variantName, item.Name)
	}

	addOns := make([]domain.AddOn, 0, len(addOnNames))
	seen := make(map[string]bool, len(addOnNames))
	for _, name := range addOnNames {
		a, ok := item.FindAddOn(name)
		if !ok {
			return AddResult{}, fmt.Errorf("%w: %q on %s", ErrUnknownAddOn, name, item.Name)
		}
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		addOns = append(addOns, a)
	}

	unit := pricing.UnitPrice(item, variant, addOns)
	line := Line{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		Name:      item.Name,
		Variant:   variant,
		AddOns:    addOns,
		Quantity:  1,
		UnitPrice: unit,
		LineTotal: pricing.LineTotal(unit, 1),
	}
	c.Lines = append(c.Lines, line)

	return AddResult{Outcome: Added, Line: &line}, nil
}

// SetLineQuantity updates a line; zero or less removes it.
func (c *Cart) SetLineQuantity(lineID string, qty int) error {
	for i := range c.Lines {
		if c.Lines[i].ID != lineID {
			continue
		}
		if qty <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
		c.Lines[i].Quantity = qty
		c.Lines[i].LineTotal = pricing.LineTotal(c.Lines[i].UnitPrice, qty)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(pricing.LineTotal(l.UnitPrice, l.Quantity))
	}
	return sum
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// Snapshot converts the lines into the copy stored on an order.
func (c *Cart) Snapshot() []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		ol := domain.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			AddOns:    append([]domain.AddOn{}, l.AddOns...),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: pricing.LineTotal(l.UnitPrice, l.Quantity),
		}
		if l.Variant != nil {
			ol.Variant = l.Variant.Name
		}
		out = append(out, ol)
	}
	return out
}
