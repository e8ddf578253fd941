package service

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	MenuURL(slug string, tableID int) string
	TableMenu(slug string, tableID int) ([]byte, error)
	UPIPayment(upiID, payee string, amount decimal.Decimal) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

// MenuURL is the diner landing page printed on a table card.
func (g DefaultQRGenerator) MenuURL(slug string, tableID int) string {
	return fmt.Sprintf("%s/r/%s?table=%d", g.BaseURL, url.PathEscape(slug), tableID)
}

func (g DefaultQRGenerator) TableMenu(slug string, tableID int) ([]byte, error) {
	return qrcode.Encode(g.MenuURL(slug, tableID), qrcode.Medium, 256)
}

// UPIPayment encodes a UPI deep link any UPI app can scan to pay amount.
func (g DefaultQRGenerator) UPIPayment(upiID, payee string, amount decimal.Decimal) ([]byte, error) {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payee)
	params.Set("am", amount.StringFixed(2))
	params.Set("cu", "INR")
	return qrcode.Encode("upi://pay?"+params.Encode(), qrcode.Medium, 256)
}
