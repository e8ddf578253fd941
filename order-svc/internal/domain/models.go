package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaxConfiguration holds the restaurant GST split as percentages. Zero means
// the tax is not charged.
type TaxConfiguration struct {
	CGSTRate decimal.Decimal `json:"cgst_rate"`
	SGSTRate decimal.Decimal `json:"sgst_rate"`
}

type Restaurant struct {
	ID                   int              `json:"id"`
	Slug                 string           `json:"slug"`
	Name                 string           `json:"name"`
	Address              string           `json:"address"`
	Description          string           `json:"description"`
	ImageURL             string           `json:"image_url"`
	Tax                  TaxConfiguration `json:"tax"`
	UPIID                string           `json:"upi_id,omitempty"`
	OnlinePaymentEnabled bool             `json:"online_payment_enabled"`
	CreatedAt            time.Time        `json:"created_at"`
}

// RestaurantSettings is the owner-editable billing configuration.
type RestaurantSettings struct {
	Tax                  TaxConfiguration `json:"tax"`
	UPIID                string           `json:"upi_id"`
	OnlinePaymentEnabled bool             `json:"online_payment_enabled"`
}

type Table struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	BranchID     int       `json:"branch_id"`
	Label        string    `json:"label"`
	CreatedAt    time.Time `json:"created_at"`
}

// Variant replaces the item's base price when chosen.
type Variant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AddOn is added on top of the base or variant price.
type AddOn struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	Variants     []Variant       `json:"variants"`
	AddOns       []AddOn         `json:"add_ons"`
	ImageURL     string          `json:"image_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (m MenuItem) HasVariants() bool {
	return len(m.Variants) > 0
}

func (m MenuItem) FindVariant(name string) (Variant, bool) {
	for _, v := range m.Variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

func (m MenuItem) FindAddOn(name string) (AddOn, bool) {
	for _, a := range m.AddOns {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return AddOn{}, false
}

type OrderSource string

const (
	SourceOnline OrderSource = "online"
	SourcePOS    OrderSource = "pos"
)

// OrderLine is the snapshot of a cart line kept on the order. Later menu edits
// never touch it.
type OrderLine struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	Variant   string          `json:"variant,omitempty"`
	AddOns    []AddOn         `json:"add_ons"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Order struct {
	ID                  int               `json:"id"`
	RestaurantID        int               `json:"restaurant_id"`
	BranchID            int               `json:"branch_id"`
	TableID             *int              `json:"table_id,omitempty"`
	CustomerName        string            `json:"customer_name"`
	CustomerPhone       string            `json:"customer_phone,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	Lines               []OrderLine       `json:"line_items"`
	Subtotal            decimal.Decimal   `json:"total"`
	TaxSnapshot         *TaxConfiguration `json:"tax_snapshot,omitempty"`
	Status              OrderStatus       `json:"status"`
	Source              OrderSource       `json:"source"`
	IdempotencyKey      string            `json:"-"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
)

type Bill struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Status       BillStatus      `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentFailed   PaymentStatus = "failed"
)

// Payment is a diner's claim of an online transfer. It is only trusted after a
// staff member verifies the UTR reference.
type Payment struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	RestaurantID int             `json:"restaurant_id"`
	TableID      *int            `json:"table_id,omitempty"`
	CustomerName string          `json:"customer_name"`
	UTRReference string          `json:"utr_reference"`
	Amount       decimal.Decimal `json:"amount"`
	Status       PaymentStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PaymentMethod string

const (
	PayAtCounter PaymentMethod = "counter"
	PayOnline    PaymentMethod = "online"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PayAtCounter:
		return PayAtCounter, true
	case PayOnline:
		return PayOnline, true
	}
	return "", false
}

// PlaceOrderCommand is everything needed to persist one checkout attempt.
// Line totals and amounts are recomputed by the order service.
type PlaceOrderCommand struct {
	IdempotencyKey      string        `json:"idempotency_key"`
	RestaurantID        int           `json:"restaurant_id"`
	BranchID            int           `json:"branch_id"`
	TableID             *int          `json:"table_id,omitempty"`
	CustomerName        string        `json:"customer_name"`
	CustomerPhone       string        `json:"customer_phone,omitempty"`
	SpecialInstructions string        `json:"special_instructions,omitempty"`
	Lines               []OrderLine   `json:"line_items"`
	Source              OrderSource   `json:"source"`
	Method              PaymentMethod `json:"payment_method"`
	UTRReference        string        `json:"utr_reference,omitempty"`
}
