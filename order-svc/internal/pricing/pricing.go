// Package pricing holds the one formula used to turn a subtotal into taxes and
// a grand total. Cart summaries, order placement, bills and receipts all call
// ComputeTotals so the amount shown is the amount charged.
package pricing

import (
	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	CGSTAmount decimal.Decimal `json:"cgst_amount"`
	SGSTAmount decimal.Decimal `json:"sgst_amount"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type TaxLine struct {
	Label  string          `json:"label"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// ComputeTotals applies CGST and SGST to subtotal. Amounts are exact; rounding
// to two places happens only when formatting.
func ComputeTotals(subtotal decimal.Decimal, tax domain.TaxConfiguration) Totals {
	cgst := subtotal.Mul(tax.CGSTRate).Div(hundred)
	sgst := subtotal.Mul(tax.SGSTRate).Div(hundred)
	return Totals{
		Subtotal:   subtotal,
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		GrandTotal: subtotal.Add(cgst).Add(sgst),
	}
}

// TaxLines lists the taxes to itemize. A zero rate is left out rather than
// shown as 0.00.
func (t Totals) TaxLines(tax domain.TaxConfiguration) []TaxLine {
	lines := make([]TaxLine, 0, 2)
	if tax.CGSTRate.IsPositive() {
		lines = append(lines, TaxLine{Label: "CGST", Rate: tax.CGSTRate, Amount: t.CGSTAmount})
	}
	if tax.SGSTRate.IsPositive() {
		lines = append(lines, TaxLine{Label: "SGST", Rate: tax.SGSTRate, Amount: t.SGSTAmount})
	}
	return lines
}

// UnitPrice is the variant price when one is chosen, otherwise the base price,
// plus every add-on.
func UnitPrice(item domain.MenuItem, variant *domain.Variant, addOns []domain.AddOn) decimal.Decimal {
	price := item.Price
	if variant != nil {
		price = variant.Price
	}
	for _, a := range addOns {
		price = price.Add(a.Price)
	}
	return price
}

func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the line totals of an order snapshot.
func Subtotal(lines []domain.OrderLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineTotal(l.UnitPrice, l.Quantity))
	}
	return sum
}

// Money formats an amount for display with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
