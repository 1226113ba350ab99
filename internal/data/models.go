package data

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sizing defaults for the synthetic dataset. The validator always checks
// identifier ranges against these schema-level bounds.
const (
	NumOrders    = 10000
	NumCustomers = 3000
	NumProducts  = 1000
)

const (
	QuantityMin = 1
	QuantityMax = 10

	ShippingDelayMinDays = 1
	ShippingDelayMaxDays = 7

	// OrderDateWindowDays is the number of calendar days before "now" that
	// order dates are drawn from.
	OrderDateWindowDays = 365
)

// Fixed catalogs shared by the generator and the validator.
var (
	Categories       = []string{"Electronics", "Clothing", "Home", "Books", "Beauty", "Toys"}
	DeliveryStatuses = []string{"Delivered", "Shipped", "Pending", "Returned"}
	PaymentMethods   = []string{"Credit Card", "PayPal", "Debit Card", "Apple Pay", "Google Pay"}
	DeviceTypes      = []string{"Desktop", "Mobile", "Tablet"}
	Channels         = []string{"Organic", "Paid Search", "Email", "Social"}

	// DeliveryStatusWeights pairs with DeliveryStatuses by index: most orders
	// end up delivered, returns and pending are rare.
	DeliveryStatusWeights = []float64{0.70, 0.20, 0.05, 0.05}
)

// Price bounds, inclusive on both ends.
var (
	PriceMin = decimal.NewFromFloat(5.0)
	PriceMax = decimal.NewFromFloat(500.0)
)

// Order is one row of the dataset. Pointer fields distinguish a null cell
// from a zero value; string fields use "" for null.
type Order struct {
	OrderID         string
	CustomerID      *int64
	ProductID       *int64
	Category        string
	Price           *decimal.Decimal
	Quantity        *int64
	OrderDate       *time.Time
	ShippingDate    *time.Time
	DeliveryStatus  string
	PaymentMethod   string
	DeviceType      string
	Channel         string
	ShippingAddress string
	BillingAddress  string
	CustomerSegment string
}

// Table is an in-memory order dataset. It has no identity beyond its rows:
// the generator builds one fresh, the cleaner derives a new one.
type Table []Order

// Columns is the exported column order, one name per Order field.
var Columns = []string{
	"order_id",
	"customer_id",
	"product_id",
	"category",
	"price",
	"quantity",
	"order_date",
	"shipping_date",
	"delivery_status",
	"payment_method",
	"device_type",
	"channel",
	"shipping_address",
	"billing_address",
	"customer_segment",
}

// Customer segment labels derived from order counts within one table.
const (
	SegmentVIP       = "VIP"
	SegmentReturning = "Returning"
	SegmentNew       = "New"
)

// NullColumns reports which columns of the row hold a null cell, in column
// order.
func (o Order) NullColumns() []string {
	var cols []string
	add := func(name string, null bool) {
		if null {
			cols = append(cols, name)
		}
	}
	add("order_id", o.OrderID == "")
	add("customer_id", o.CustomerID == nil)
	add("product_id", o.ProductID == nil)
	add("category", o.Category == "")
	add("price", o.Price == nil)
	add("quantity", o.Quantity == nil)
	add("order_date", o.OrderDate == nil)
	add("shipping_date", o.ShippingDate == nil)
	add("delivery_status", o.DeliveryStatus == "")
	add("payment_method", o.PaymentMethod == "")
	add("device_type", o.DeviceType == "")
	add("channel", o.Channel == "")
	add("shipping_address", o.ShippingAddress == "")
	add("billing_address", o.BillingAddress == "")
	add("customer_segment", o.CustomerSegment == "")
	return cols
}

// Frequencies counts orders per customer_id across the table. Rows with a
// null customer_id are skipped.
func (t Table) Frequencies() map[int64]int {
	freq := make(map[int64]int, len(t))
	for _, o := range t {
		if o.CustomerID != nil {
			freq[*o.CustomerID]++
		}
	}
	return freq
}

// SegmentFor maps a customer's total order count to its segment label.
func SegmentFor(count int) string {
	switch {
	case count >= 5:
		return SegmentVIP
	case count >= 2:
		return SegmentReturning
	default:
		return SegmentNew
	}
}

// ApplySegments recomputes customer_segment for every row from the table's
// own customer composition. The frequency table is built once and each row
// derives its segment by lookup, so segments always agree with actual order
// counts.
func (t Table) ApplySegments() {
	freq := t.Frequencies()
	for i := range t {
		if t[i].CustomerID != nil {
			t[i].CustomerSegment = SegmentFor(freq[*t[i].CustomerID])
		}
	}
}
