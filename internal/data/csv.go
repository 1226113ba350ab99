package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// WriteTableFile exports the table as CSV: one header row, then one row per
// order in canonical form (two-decimal prices, second-precision timestamps).
func WriteTableFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, o := range t {
		if err := w.Write(encodeRow(o)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ReadTableFile imports a CSV table. The header must match Columns exactly
// and every row must have the full column count. Empty cells decode as
// nulls; a non-empty cell that does not parse for its column type makes the
// whole file unreadable.
func ReadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(Columns) {
		return nil, fmt.Errorf("unexpected columns: got %d, want %d", len(header), len(Columns))
	}
	for i, col := range Columns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], col)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	t := make(Table, 0, len(records))
	for i, rec := range records {
		o, err := decodeRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		t = append(t, o)
	}
	return t, nil
}

func encodeRow(o Order) []string {
	return []string{
		o.OrderID,
		formatInt(o.CustomerID),
		formatInt(o.ProductID),
		o.Category,
		formatPrice(o.Price),
		formatInt(o.Quantity),
		formatTime(o.OrderDate),
		formatTime(o.ShippingDate),
		o.DeliveryStatus,
		o.PaymentMethod,
		o.DeviceType,
		o.Channel,
		o.ShippingAddress,
		o.BillingAddress,
		o.CustomerSegment,
	}
}

func decodeRow(rec []string) (Order, error) {
	var (
		o   Order
		err error
	)
	o.OrderID = rec[0]
	if o.CustomerID, err = parseInt(rec[1]); err != nil {
		return Order{}, fmt.Errorf("customer_id: %w", err)
	}
	if o.ProductID, err = parseInt(rec[2]); err != nil {
		return Order{}, fmt.Errorf("product_id: %w", err)
	}
	o.Category = rec[3]
	if o.Price, err = parsePrice(rec[4]); err != nil {
		return Order{}, fmt.Errorf("price: %w", err)
	}
	if o.Quantity, err = parseInt(rec[5]); err != nil {
		return Order{}, fmt.Errorf("quantity: %w", err)
	}
	if o.OrderDate, err = parseTime(rec[6]); err != nil {
		return Order{}, fmt.Errorf("order_date: %w", err)
	}
	if o.ShippingDate, err = parseTime(rec[7]); err != nil {
		return Order{}, fmt.Errorf("shipping_date: %w", err)
	}
	o.DeliveryStatus = rec[8]
	o.PaymentMethod = rec[9]
	o.DeviceType = rec[10]
	o.Channel = rec[11]
	o.ShippingAddress = rec[12]
	o.BillingAddress = rec[13]
	o.CustomerSegment = rec[14]
	return o, nil
}

func formatInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func formatPrice(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func parseInt(cell string) (*int64, error) {
	if cell == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parsePrice(cell string) (*decimal.Decimal, error) {
	if cell == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseTime(cell string) (*time.Time, error) {
	if cell == "" {
		return nil, nil
	}
	t, err := time.Parse(dateTimeLayout, cell)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
