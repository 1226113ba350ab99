package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ecommerce-orders-lab/internal/data"
)

func validOrder() data.Order {
	customer := int64(42)
	product := int64(7)
	qty := int64(2)
	price := decimal.NewFromFloat(19.99)
	orderDate := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	shippingDate := orderDate.AddDate(0, 0, 3)
	return data.Order{
		OrderID:         uuid.NewString(),
		CustomerID:      &customer,
		ProductID:       &product,
		Category:        "Books",
		Price:           &price,
		Quantity:        &qty,
		OrderDate:       &orderDate,
		ShippingDate:    &shippingDate,
		DeliveryStatus:  "Delivered",
		PaymentMethod:   "PayPal",
		DeviceType:      "Mobile",
		Channel:         "Email",
		ShippingAddress: "12 Main St, Springfield, Ohio 45501",
		BillingAddress:  "34 Oak Ave, Dayton, Ohio 45402",
		CustomerSegment: "New",
	}
}

func validTable(n int) data.Table {
	t := make(data.Table, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, validOrder())
	}
	return t
}

func findIssue(issues []Issue, rule string) (Issue, bool) {
	for _, i := range issues {
		if i.Rule == rule {
			return i, true
		}
	}
	return Issue{}, false
}

func TestValidateCleanTableNoIssues(t *testing.T) {
	if issues := Validate(validTable(10)); len(issues) != 0 {
		t.Fatalf("clean table should have no issues, got %v", issues)
	}
}

func TestValidateReportsInjectedProblems(t *testing.T) {
	table := validTable(10)

	// three null cells across two columns
	table[0].CustomerID = nil
	table[1].CustomerID = nil
	table[2].Price = nil
	// two duplicates of row 3's order_id
	table[4].OrderID = table[3].OrderID
	table[5].OrderID = table[3].OrderID
	// one out-of-range price
	bad := decimal.NewFromFloat(1000.00)
	table[6].Price = &bad

	issues := Validate(table)
	if len(issues) != 3 {
		t.Fatalf("want 3 issues, got %d: %v", len(issues), issues)
	}

	nulls, ok := findIssue(issues, RuleNulls)
	if !ok || nulls.Count != 3 {
		t.Fatalf("null issue wrong: %+v", nulls)
	}
	if !strings.Contains(nulls.Detail, "customer_id=2") || !strings.Contains(nulls.Detail, "price=1") {
		t.Fatalf("null detail missing per-column counts: %s", nulls.Detail)
	}

	dups, ok := findIssue(issues, RuleDuplicateIDs)
	if !ok || dups.Count != 2 {
		t.Fatalf("duplicate issue wrong: %+v", dups)
	}

	prices, ok := findIssue(issues, RulePriceRange)
	if !ok || prices.Count != 1 {
		t.Fatalf("price issue wrong: %+v", prices)
	}
}

func TestValidateReportsUnrecognizedCatalogValues(t *testing.T) {
	table := validTable(4)
	table[1].Category = "Gadgets"
	table[2].Category = "Gadgets"
	table[3].DeliveryStatus = "Lost"

	issues := Validate(table)

	cat, ok := findIssue(issues, RuleCategoryCatalog)
	if !ok || cat.Count != 2 || !strings.Contains(cat.Detail, "Gadgets") {
		t.Fatalf("category issue wrong: %+v", cat)
	}
	status, ok := findIssue(issues, RuleStatusCatalog)
	if !ok || status.Count != 1 || !strings.Contains(status.Detail, "Lost") {
		t.Fatalf("status issue wrong: %+v", status)
	}
}

func TestValidateReportsMalformedUUIDs(t *testing.T) {
	table := validTable(3)
	table[1].OrderID = "not-a-uuid"

	issue, ok := findIssue(Validate(table), RuleMalformedIDs)
	if !ok || issue.Count != 1 {
		t.Fatalf("malformed uuid issue wrong: %+v", issue)
	}
}

func TestValidateQuantityAndDelayScenario(t *testing.T) {
	table := validTable(5)
	qty := int64(15)
	table[2].Quantity = &qty
	late := table[4].OrderDate.AddDate(0, 0, 9)
	table[4].ShippingDate = &late

	issues := Validate(table)
	if len(issues) != 2 {
		t.Fatalf("want 2 issues, got %d: %v", len(issues), issues)
	}
	if q, ok := findIssue(issues, RuleQuantityRange); !ok || q.Count != 1 {
		t.Fatalf("quantity issue wrong: %+v", q)
	}
	if d, ok := findIssue(issues, RuleDelayRange); !ok || d.Count != 1 {
		t.Fatalf("delay issue wrong: %+v", d)
	}

	clean, removed := Clean(table)
	if len(clean) != 3 || removed != 2 {
		t.Fatalf("clean: %d rows, removed %d; want 3 and 2", len(clean), removed)
	}
}

func TestValidateEqualDatesHitBothTemporalChecks(t *testing.T) {
	table := validTable(2)
	table[1].ShippingDate = table[1].OrderDate

	issues := Validate(table)
	if _, ok := findIssue(issues, RuleDateOrder); !ok {
		t.Fatalf("missing date-order issue: %v", issues)
	}
	if _, ok := findIssue(issues, RuleDelayRange); !ok {
		t.Fatalf("missing delay-range issue: %v", issues)
	}
}

func TestValidateDoesNotMutateTable(t *testing.T) {
	table := validTable(3)
	table[1].Category = "Gadgets"
	before := table[1]
	Validate(table)
	if table[1] != before {
		t.Fatal("validator mutated the table")
	}
	if len(table) != 3 {
		t.Fatal("validator changed row count")
	}
}
