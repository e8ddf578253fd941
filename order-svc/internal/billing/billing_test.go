package billing

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-dine/order-svc/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func burgerOrder() domain.Order {
	table := 3
	return domain.Order{
		ID:           17,
		RestaurantID: 1,
		TableID:      &table,
		CustomerName: "Asha",
		Lines: []domain.OrderLine{
			{Name: "Burger", UnitPrice: d("150"), Quantity: 2, LineTotal: d("300")},
		},
		Subtotal:  d("300"),
		Status:    domain.StatusCompleted,
		CreatedAt: time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	snapshot := domain.TaxConfiguration{CGSTRate: d("2.5"), SGSTRate: d("2.5")}
	live := domain.TaxConfiguration{CGSTRate: d("9"), SGSTRate: d("9")}

	tests := []struct {
		name         string
		snapshot     *domain.TaxConfiguration
		restaurant   domain.TaxConfiguration
		bill         *domain.Bill
		wantTotal    string
		wantTaxLines int
		wantBadge    string
	}{
		{name: "snapshot wins over live rates", snapshot: &snapshot, restaurant: live, wantTotal: "315", wantTaxLines: 2, wantBadge: BadgeUnpaid},
		{name: "legacy order uses live rates", restaurant: live, wantTotal: "354", wantTaxLines: 2, wantBadge: BadgeUnpaid},
		{name: "zero rates render no tax lines", restaurant: domain.TaxConfiguration{}, wantTotal: "300", wantTaxLines: 0, wantBadge: BadgeUnpaid},
		{name: "paid bill", snapshot: &snapshot, bill: &domain.Bill{ID: 5, Status: domain.BillPaid}, wantTotal: "315", wantTaxLines: 2, wantBadge: BadgePaid},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := burgerOrder()
			order.TaxSnapshot = testCase.snapshot
			restaurant := domain.Restaurant{Name: "Spice Route", Tax: testCase.restaurant}

			receipt := Render(restaurant, order, testCase.bill)

			assert.True(t, d(testCase.wantTotal).Equal(receipt.GrandTotal), "grand total %s", receipt.GrandTotal)
			assert.Len(t, receipt.TaxLines, testCase.wantTaxLines)
			assert.Equal(t, testCase.wantBadge, receipt.Badge)
			require.Len(t, receipt.Lines, 1)
			assert.True(t, receipt.Lines[0].LineTotal.Equal(d("300")))
			if testCase.bill != nil {
				assert.Equal(t, testCase.bill.ID, receipt.BillID)
			}
		})
	}
}

func TestRender_CancelledBadge(t *testing.T) {
	order := burgerOrder()
	order.Status = domain.StatusCancelled
	receipt := Render(domain.Restaurant{}, order, nil)
	assert.Equal(t, BadgeCancelled, receipt.Badge)
}

func TestReceiptLineDescription(t *testing.T) {
	line := ReceiptLine{Name: "Pizza", Variant: "Large", AddOns: []string{"Cheese", "Olives"}}
	assert.Equal(t, "Pizza (Large) + Cheese, Olives", line.Description())
	assert.Equal(t, "Tea", ReceiptLine{Name: "Tea"}.Description())
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"315", "Rupees Three Hundred Fifteen Only"},
		{"7.5", "Rupees Seven and Fifty Paise Only"},
		{"1000", "Rupees One Thousand Only"},
		{"125000.05", "Rupees One Lakh Twenty Five Thousand and Five Paise Only"},
		{"10000000", "Rupees One Crore Only"},
		{"2345678901", "Rupees Two Hundred Thirty Four Crore Fifty Six Lakh Seventy Eight Thousand Nine Hundred One Only"},
		{"99.999", "Rupees One Hundred Only"},
	}

	for _, testCase := range tests {
		t.Run(testCase.amount, func(t *testing.T) {
			assert.Equal(t, testCase.want, AmountInWords(d(testCase.amount)))
		})
	}
}

func TestWritePDF(t *testing.T) {
	snapshot := domain.TaxConfiguration{CGSTRate: d("2.5"), SGSTRate: d("2.5")}
	order := burgerOrder()
	order.TaxSnapshot = &snapshot
	receipt := Render(domain.Restaurant{Name: "Spice Route", Address: "MG Road"}, order, &domain.Bill{ID: 9})

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, receipt))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestBillPDFEncodesNamesAsCP1252(t *testing.T) {
	order := burgerOrder()
	order.CustomerName = "Zoë"
	receipt := Render(domain.Restaurant{Name: "Café Déjà Vu"}, order, nil)

	pdf := newBillPDF(receipt)
	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	assert.Contains(t, buf.String(), "Caf\xe9 D\xe9j\xe0 Vu")
	assert.Contains(t, buf.String(), "Customer: Zo\xeb")
	assert.NotContains(t, buf.String(), "Café", "raw UTF-8 bytes must not reach the core font")
}
