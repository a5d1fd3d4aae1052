package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         int             `db:"id"`
	Enrollment string          `db:"enrollment"`
	Name       string          `db:"name"`
	BrandName  string          `db:"brand_name"`
	Email      string          `db:"email"`
	Manager    string          `db:"manager"`
	Address    string          `db:"address"`
	Pincode    string          `db:"pincode"`
	State      string          `db:"state"`
	Country    string          `db:"country"`
	GST        string          `db:"gst"`
	Balance    decimal.Decimal `db:"balance"`
	CreatedAt  time.Time       `db:"created_at"`
}

// HasShippingProfile reports whether the account carries the fields
// required before any chargeable order may be fulfilled.
func (a *Account) HasShippingProfile() bool {
	return a.Address != "" && a.Pincode != "" && a.State != ""
}

// Transaction is an append-only ledger entry. Exactly one of Credit
// and Debit is true; Amount is always positive.
type Transaction struct {
	ID                string          `db:"id"`
	AccountID         int             `db:"account_id"`
	Amount            decimal.Decimal `db:"amount"`
	Credit            bool            `db:"credit"`
	Debit             bool            `db:"debit"`
	Description       string          `db:"description"`
	ExternalPaymentID string          `db:"external_payment_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

type FulfillmentMode string

const (
	// FulfillmentCarrier orders arrive from the carrier sync and ship
	// through the carrier pipeline (AWB, manifest, pickup, label).
	FulfillmentCarrier FulfillmentMode = "carrier"
	// FulfillmentEasyShip orders are created manually and tracked by hand.
	FulfillmentEasyShip FulfillmentMode = "easyship"
)

func (m FulfillmentMode) Valid() bool {
	return m == FulfillmentCarrier || m == FulfillmentEasyShip
}

type Order struct {
	ID                 int             `db:"id"`
	OrderID            string          `db:"order_id"`
	AccountID          int             `db:"account_id"`
	Enrollment         string          `db:"enrollment"`
	FulfillmentMode    FulfillmentMode `db:"fulfillment_mode"`
	Status             Status          `db:"status"`
	ShipmentID         string          `db:"shipment_id"`
	TrackingID         string          `db:"tracking_id"`
	LastmileTrackingID string          `db:"lastmile_tracking_id"`
	DeliveryPartner    string          `db:"delivery_partner"`
	LastmilePartner    string          `db:"lastmile_partner"`
	// FinalAmount is set exactly once, when the order is billed, and is
	// never recomputed afterwards.
	FinalAmount    decimal.NullDecimal `db:"final_amount"`
	OrderAmount    decimal.Decimal     `db:"order_amount"`
	ShippingAmount decimal.Decimal     `db:"shipping_amount"`
	Items          []OrderItem         `db:"-"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
}

// Priced reports whether the order has been billed already.
func (o *Order) Priced() bool {
	return o.FinalAmount.Valid
}

// OrderItem captures the catalog attributes at add time; once the
// order is billed the line items are immutable.
type OrderItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Shipping  decimal.Decimal `db:"shipping"`
	GSTRate   decimal.Decimal `db:"gst_rate"`
	Quantity  int             `db:"quantity"`
	Weight    decimal.Decimal `db:"weight"`
	Dimension string          `db:"dimension"`
	HSN       string          `db:"hsn"`
}

// Product is a catalog item. Read-only from this service's
// perspective; inventory management mutates it elsewhere.
type Product struct {
	ID        int             `db:"id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Shipping  decimal.Decimal `db:"shipping"`
	GSTRate   decimal.Decimal `db:"gst_rate"`
	Weight    decimal.Decimal `db:"weight"`
	Dimension string          `db:"dimension"`
	HSN       string          `db:"hsn"`
}
