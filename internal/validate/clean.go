package validate

import (
	"github.com/google/uuid"

	"ecommerce-orders-lab/internal/data"
)

// Clean derives a new table holding only the rows that pass every validation
// rule, plus the number of rows removed. Duplicated order_ids keep their
// first occurrence. Surviving rows are carried over unchanged.
func Clean(t data.Table) (data.Table, int) {
	out := make(data.Table, 0, len(t))
	seen := make(map[string]bool, len(t))
	for _, o := range t {
		if !rowConforms(o) {
			continue
		}
		if seen[o.OrderID] {
			continue
		}
		seen[o.OrderID] = true
		out = append(out, o)
	}
	return out, len(t) - len(out)
}

// rowConforms is the AND of every row-local validation predicate. Pointer
// fields are safe to dereference past the null check.
func rowConforms(o data.Order) bool {
	if len(o.NullColumns()) > 0 {
		return false
	}
	if *o.CustomerID < 1 || *o.CustomerID > data.NumCustomers {
		return false
	}
	if *o.ProductID < 1 || *o.ProductID > data.NumProducts {
		return false
	}
	if o.Price.LessThan(data.PriceMin) || o.Price.GreaterThan(data.PriceMax) {
		return false
	}
	if *o.Quantity < data.QuantityMin || *o.Quantity > data.QuantityMax {
		return false
	}
	if !inCatalog(o.Category, data.Categories) {
		return false
	}
	if !inCatalog(o.DeliveryStatus, data.DeliveryStatuses) {
		return false
	}
	if !inCatalog(o.PaymentMethod, data.PaymentMethods) {
		return false
	}
	if _, err := uuid.Parse(o.OrderID); err != nil {
		return false
	}
	if !o.ShippingDate.After(*o.OrderDate) {
		return false
	}
	if d := shippingDelayDays(o); d < data.ShippingDelayMinDays || d > data.ShippingDelayMaxDays {
		return false
	}
	return true
}
