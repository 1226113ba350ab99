package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
)

const poissonQuantityMean = 2

// Generate builds a synthetic order table of the requested size. Customer
// assignment follows a heavy-tailed repeat-purchase distribution, dates fall
// in the last year with a 1-7 day shipping delay, and the remaining columns
// are filled from the fixed catalogs. Rows come back sorted by order date
// with customer segments already derived.
//
// A zero seed derives one from the wall clock, matching the non-reproducible
// reference behavior.
func Generate(numOrders, numCustomers, numProducts int, seed uint64) (Table, error) {
	if numOrders <= 0 || numCustomers <= 0 || numProducts <= 0 {
		return nil, fmt.Errorf("generate: sizes must be positive (orders=%d customers=%d products=%d)",
			numOrders, numCustomers, numProducts)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewSource(seed))

	g := &generator{
		rnd:      rnd,
		faker:    gofakeit.New(seed),
		status:   NewWeightedChoice(DeliveryStatuses, DeliveryStatusWeights, rnd),
		quantity: NewClippedPoisson(poissonQuantityMean, QuantityMin, QuantityMax, rnd),
		products: numProducts,
		now:      time.Now().UTC().Truncate(time.Second),
	}

	customerIDs := CustomerIDs(rnd, numCustomers, numOrders)

	t := make(Table, 0, numOrders)
	for i := 0; i < numOrders; i++ {
		t = append(t, g.buildOrder(customerIDs[i]))
	}

	t.ApplySegments()
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].OrderDate.Before(*t[j].OrderDate)
	})
	return t, nil
}

// CustomerIDs assigns a customer to each of n orders. Draws come from a
// power-law distribution (alpha=0.5) over [0,1), scaled to the customer
// range and clamped into [1, customers], so a minority of customers place
// most of the repeat orders.
func CustomerIDs(rnd *rand.Rand, customers, n int) []int64 {
	pl := PowerLaw{Alpha: 0.5, Rnd: rnd}
	ids := make([]int64, n)
	for i := range ids {
		id := int64(pl.Rand() * float64(customers))
		if id < 1 {
			id = 1
		}
		if id > int64(customers) {
			id = int64(customers)
		}
		ids[i] = id
	}
	return ids
}

type generator struct {
	rnd      *rand.Rand
	faker    *gofakeit.Faker
	status   WeightedChoice
	quantity ClippedPoisson
	products int
	now      time.Time
}

func (g *generator) buildOrder(customerID int64) Order {
	orderDate := g.now.AddDate(0, 0, -g.rnd.Intn(OrderDateWindowDays))
	delay := ShippingDelayMinDays + g.rnd.Intn(ShippingDelayMaxDays-ShippingDelayMinDays+1)
	shippingDate := orderDate.AddDate(0, 0, delay)

	productID := int64(1 + g.rnd.Intn(g.products))
	price := decimal.NewFromFloat(5.0 + g.rnd.Float64()*495.0).Round(2)
	qty := g.quantity.Draw()

	return Order{
		OrderID:         uuid.NewString(),
		CustomerID:      &customerID,
		ProductID:       &productID,
		Category:        randomChoice(Categories, g.rnd),
		Price:           &price,
		Quantity:        &qty,
		OrderDate:       &orderDate,
		ShippingDate:    &shippingDate,
		DeliveryStatus:  g.status.Draw(),
		PaymentMethod:   randomChoice(PaymentMethods, g.rnd),
		DeviceType:      randomChoice(DeviceTypes, g.rnd),
		Channel:         randomChoice(Channels, g.rnd),
		ShippingAddress: g.address(),
		BillingAddress:  g.address(),
	}
}

// address synthesizes one free-text postal address. The rest of the pipeline
// treats it as an opaque non-empty string.
func (g *generator) address() string {
	return fmt.Sprintf("%s, %s, %s %s", g.faker.Street(), g.faker.City(), g.faker.State(), g.faker.Zip())
}
