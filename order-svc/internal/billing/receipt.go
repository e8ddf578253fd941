// Package billing renders a persisted order as a bill for the screen and as a
// printable PDF. Totals are always derived through pricing.ComputeTotals.
package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/pricing"
)

const (
	BadgePaid      = "PAID"
	BadgeUnpaid    = "UNPAID"
	BadgeCancelled = "CANCELLED"
)

type ReceiptLine struct {
	Name      string          `json:"name"`
	Variant   string          `json:"variant,omitempty"`
	AddOns    []string        `json:"add_ons,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Receipt struct {
	OrderID           int                     `json:"order_id"`
	BillID            int                     `json:"bill_id,omitempty"`
	RestaurantName    string                  `json:"restaurant_name"`
	RestaurantAddress string                  `json:"restaurant_address,omitempty"`
	TableID           *int                    `json:"table_id,omitempty"`
	CustomerName      string                  `json:"customer_name"`
	PlacedAt          time.Time               `json:"placed_at"`
	Lines             []ReceiptLine           `json:"lines"`
	Tax               domain.TaxConfiguration `json:"tax"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	TaxLines          []pricing.TaxLine       `json:"tax_lines"`
	GrandTotal        decimal.Decimal         `json:"grand_total"`
	OrderStatus       domain.OrderStatus      `json:"order_status"`
	Badge             string                  `json:"badge"`
	AmountInWords     string                  `json:"amount_in_words"`
}

// TaxFor returns the rates an order was placed under, or the restaurant's
// current rates for orders stored before rates were captured.
func TaxFor(order domain.Order, restaurant domain.Restaurant) domain.TaxConfiguration {
	if order.TaxSnapshot != nil {
		return *order.TaxSnapshot
	}
	return restaurant.Tax
}

// Render builds the bill view for an order. bill may be nil when the order has
// not been billed yet.
func Render(restaurant domain.Restaurant, order domain.Order, bill *domain.Bill) Receipt {
	tax := TaxFor(order, restaurant)
	totals := pricing.ComputeTotals(order.Subtotal, tax)

	lines := make([]ReceiptLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		addOns := make([]string, 0, len(l.AddOns))
		for _, a := range l.AddOns {
			addOns = append(addOns, a.Name)
		}
		lines = append(lines, ReceiptLine{
			Name:      l.Name,
			Variant:   l.Variant,
			AddOns:    addOns,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: pricing.LineTotal(l.UnitPrice, l.Quantity),
		})
	}

	receipt := Receipt{
		OrderID:           order.ID,
		RestaurantName:    restaurant.Name,
		RestaurantAddress: restaurant.Address,
		TableID:           order.TableID,
		CustomerName:      order.CustomerName,
		PlacedAt:          order.CreatedAt,
		Lines:             lines,
		Tax:               tax,
		Subtotal:          totals.Subtotal,
		TaxLines:          totals.TaxLines(tax),
		GrandTotal:        totals.GrandTotal,
		OrderStatus:       order.Status,
		Badge:             badge(order, bill),
		AmountInWords:     AmountInWords(totals.GrandTotal),
	}
	if bill != nil {
		receipt.BillID = bill.ID
	}
	return receipt
}

func badge(order domain.Order, bill *domain.Bill) string {
	switch {
	case order.Status == domain.StatusCancelled:
		return BadgeCancelled
	case bill != nil && bill.Status == domain.BillPaid:
		return BadgePaid
	default:
		return BadgeUnpaid
	}
}

func (l ReceiptLine) Description() string {
	var b strings.Builder
	b.WriteString(l.Name)
	if l.Variant != "" {
		b.WriteString(" (" + l.Variant + ")")
	}
	if len(l.AddOns) > 0 {
		b.WriteString(" + " + strings.Join(l.AddOns, ", "))
	}
	return b.String()
}
