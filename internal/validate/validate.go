package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"ecommerce-orders-lab/internal/data"
)

// Rule names, in the order the validator reports them.
const (
	RuleNulls           = "null values"
	RuleCustomerRange   = "customer_id range"
	RuleProductRange    = "product_id range"
	RulePriceRange      = "price range"
	RuleQuantityRange   = "quantity range"
	RuleCategoryCatalog = "category catalog"
	RuleStatusCatalog   = "delivery_status catalog"
	RulePaymentCatalog  = "payment_method catalog"
	RuleDuplicateIDs    = "duplicate order_ids"
	RuleMalformedIDs    = "malformed order_ids"
	RuleDateOrder       = "shipping after order"
	RuleDelayRange      = "shipping delay range"
)

// Issue is one validation finding: which rule fired, how many cells or rows
// it affects, and a human-readable description.
type Issue struct {
	Rule   string
	Count  int
	Detail string
}

func (i Issue) String() string { return i.Detail }

// Validate runs every check over the table and returns the findings in rule
// order, empty for a conformant table. Checks are independent and none
// short-circuits; the table is never mutated. Null cells are counted once by
// the null-value check, the remaining checks evaluate non-null cells only.
func Validate(t data.Table) []Issue {
	var issues []Issue

	if issue, found := checkNulls(t); found {
		issues = append(issues, issue)
	}

	if n := countRows(t, func(o data.Order) bool {
		return o.CustomerID != nil && (*o.CustomerID < 1 || *o.CustomerID > data.NumCustomers)
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleCustomerRange,
			Count:  n,
			Detail: fmt.Sprintf("found %d customer_ids outside valid range (1-%d)", n, data.NumCustomers),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		return o.ProductID != nil && (*o.ProductID < 1 || *o.ProductID > data.NumProducts)
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleProductRange,
			Count:  n,
			Detail: fmt.Sprintf("found %d product_ids outside valid range (1-%d)", n, data.NumProducts),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		return o.Price != nil && (o.Price.LessThan(data.PriceMin) || o.Price.GreaterThan(data.PriceMax))
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RulePriceRange,
			Count:  n,
			Detail: fmt.Sprintf("found %d prices outside valid range (%s-%s)", n, data.PriceMin, data.PriceMax),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		return o.Quantity != nil && (*o.Quantity < data.QuantityMin || *o.Quantity > data.QuantityMax)
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleQuantityRange,
			Count:  n,
			Detail: fmt.Sprintf("found %d quantities outside valid range (%d-%d)", n, data.QuantityMin, data.QuantityMax),
		})
	}

	catalogChecks := []struct {
		rule    string
		label   string
		field   func(data.Order) string
		catalog []string
	}{
		{RuleCategoryCatalog, "categories", func(o data.Order) string { return o.Category }, data.Categories},
		{RuleStatusCatalog, "delivery statuses", func(o data.Order) string { return o.DeliveryStatus }, data.DeliveryStatuses},
		{RulePaymentCatalog, "payment methods", func(o data.Order) string { return o.PaymentMethod }, data.PaymentMethods},
	}
	for _, c := range catalogChecks {
		if values, rows := invalidValues(t, c.field, c.catalog); rows > 0 {
			issues = append(issues, Issue{
				Rule:   c.rule,
				Count:  rows,
				Detail: fmt.Sprintf("found invalid %s: %s", c.label, strings.Join(values, ", ")),
			})
		}
	}

	if n := countDuplicateIDs(t); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleDuplicateIDs,
			Count:  n,
			Detail: fmt.Sprintf("found %d duplicate order_ids", n),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		if o.OrderID == "" {
			return false
		}
		_, err := uuid.Parse(o.OrderID)
		return err != nil
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleMalformedIDs,
			Count:  n,
			Detail: fmt.Sprintf("found %d invalid UUIDs", n),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		return o.OrderDate != nil && o.ShippingDate != nil && !o.ShippingDate.After(*o.OrderDate)
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleDateOrder,
			Count:  n,
			Detail: fmt.Sprintf("found %d orders with shipping_date <= order_date", n),
		})
	}

	if n := countRows(t, func(o data.Order) bool {
		if o.OrderDate == nil || o.ShippingDate == nil {
			return false
		}
		d := shippingDelayDays(o)
		return d < data.ShippingDelayMinDays || d > data.ShippingDelayMaxDays
	}); n > 0 {
		issues = append(issues, Issue{
			Rule:   RuleDelayRange,
			Count:  n,
			Detail: fmt.Sprintf("found %d orders with shipping delays outside %d-%d days", n, data.ShippingDelayMinDays, data.ShippingDelayMaxDays),
		})
	}

	return issues
}

func checkNulls(t data.Table) (Issue, bool) {
	counts := make(map[string]int)
	total := 0
	for _, o := range t {
		for _, col := range o.NullColumns() {
			counts[col]++
			total++
		}
	}
	if total == 0 {
		return Issue{}, false
	}
	parts := make([]string, 0, len(counts))
	for _, col := range data.Columns {
		if n := counts[col]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", col, n))
		}
	}
	return Issue{
		Rule:   RuleNulls,
		Count:  total,
		Detail: fmt.Sprintf("found null values: %s", strings.Join(parts, ", ")),
	}, true
}

func countRows(t data.Table, violates func(data.Order) bool) int {
	n := 0
	for _, o := range t {
		if violates(o) {
			n++
		}
	}
	return n
}

// invalidValues returns the sorted distinct non-null values that fall
// outside the catalog, plus the number of rows carrying one.
func invalidValues(t data.Table, field func(data.Order) string, catalog []string) ([]string, int) {
	var (
		values []string
		rows   int
		seen   = make(map[string]bool)
	)
	for _, o := range t {
		v := field(o)
		if v == "" || inCatalog(v, catalog) {
			continue
		}
		rows++
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values, rows
}

// countDuplicateIDs counts every occurrence of an order_id beyond its first.
func countDuplicateIDs(t data.Table) int {
	seen := make(map[string]bool, len(t))
	dups := 0
	for _, o := range t {
		if o.OrderID == "" {
			continue
		}
		if seen[o.OrderID] {
			dups++
		} else {
			seen[o.OrderID] = true
		}
	}
	return dups
}

func inCatalog(v string, catalog []string) bool {
	for _, c := range catalog {
		if v == c {
			return true
		}
	}
	return false
}

// shippingDelayDays is the whole-day difference between shipping and order
// dates, floored, so a negative delay stays negative.
func shippingDelayDays(o data.Order) int {
	return int(math.Floor(o.ShippingDate.Sub(*o.OrderDate).Hours() / 24))
}
