package billing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"qr-dine/order-svc/internal/pricing"
)

const (
	colItem  = 95.0
	colQty   = 20.0
	colUnit  = 35.0
	colTotal = 40.0
	rowH     = 7.0
)

// WritePDF lays the receipt out on a single A4 page. The core fonts have no
// rupee glyph, so amounts are prefixed with "Rs.".
func WritePDF(w io.Writer, r Receipt) error {
	return newBillPDF(r).Output(w)
}

// newBillPDF builds the document. Free text is UTF-8 and the core fonts are
// cp1252, so it goes through the cp1252 translator.
func newBillPDF(r Receipt) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	text := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Bill for order #%d", r.OrderID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text(r.RestaurantName), "", 1, "C", false, 0, "")
	if r.RestaurantAddress != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, text(r.RestaurantAddress), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	header := fmt.Sprintf("Order #%d", r.OrderID)
	if r.BillID != 0 {
		header += fmt.Sprintf("   Bill #%d", r.BillID)
	}
	if r.TableID != nil {
		header += "   Table " + strconv.Itoa(*r.TableID)
	}
	pdf.CellFormat(120, 6, header, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, r.PlacedAt.Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 6, "Customer: "+text(r.CustomerName), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, r.Badge, "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colItem, rowH, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowH, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colUnit, rowH, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, rowH, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range r.Lines {
		pdf.CellFormat(colItem, rowH, text(l.Description()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowH, strconv.Itoa(l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colUnit, rowH, rupees(pricing.Money(l.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowH, rupees(pricing.Money(l.LineTotal)), "1", 1, "R", false, 0, "")
	}

	summary := func(label, amount string) {
		pdf.CellFormat(colItem+colQty+colUnit, rowH, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowH, amount, "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	summary("Subtotal", rupees(pricing.Money(r.Subtotal)))
	for _, t := range r.TaxLines {
		summary(fmt.Sprintf("%s @ %s%%", t.Label, t.Rate.String()), rupees(pricing.Money(t.Amount)))
	}
	pdf.SetFont("Helvetica", "B", 11)
	summary("Grand Total", rupees(pricing.Money(r.GrandTotal)))

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, r.AmountInWords, "", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Thank you for dining with us.", "", 1, "C", false, 0, "")

	return pdf
}

func rupees(amount string) string {
	return "Rs. " + amount
}
