package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

const (
	// CorpusOrderCount is the size of every served corpus
	CorpusOrderCount = 2000
	// LookbackDays bounds how far back generated orders may fall
	LookbackDays = 90
	// MinOrderTotal and MaxOrderTotal bound generated order amounts
	MinOrderTotal = 800.0
	MaxOrderTotal = 4500.0
	// ReturningThreshold marks a customer as returning when the draw exceeds it
	ReturningThreshold = 0.6

	orderIDBase = 10000
	day         = 24 * time.Hour
)

var firstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason", "Isabella",
	"William", "Mia", "James", "Charlotte", "Benjamin", "Amelia", "Lucas", "Harper", "Henry",
	"Evelyn", "Alexander", "Abigail", "Michael", "Emily", "Daniel", "Elizabeth", "Matthew",
	"Sofia", "Jackson", "Avery", "David", "Ella", "Joseph", "Scarlett", "Samuel", "Grace",
	"Sebastian",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez",
	"Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor",
	"Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
	"Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
}

// Paid is listed five times so roughly 5 in 7 orders are paid
var weightedStatuses = []models.OrderStatus{
	models.StatusPaid, models.StatusPaid, models.StatusPaid, models.StatusPaid, models.StatusPaid,
	models.StatusPending, models.StatusRefunded,
}

// GenerateOrders builds count synthetic orders from seed, dated relative to now.
// Each order draws, in this order: days ago, first name, last name, status,
// category, total, region, traffic source and the returning-customer flag.
// The result is sorted newest first; orders on the same day keep generation order.
func GenerateOrders(seed int64, count int, now time.Time) []models.Order {
	rng := NewSeededRandom(seed)
	now = now.UTC().Truncate(time.Millisecond)
	orders := make([]models.Order, 0, count)

	for i := 0; i < count; i++ {
		daysAgo := rng.NextInt(0, LookbackDays-1)
		firstName := Pick(rng, firstNames)
		lastName := Pick(rng, lastNames)

		orders = append(orders, models.Order{
			ID:                  fmt.Sprintf("ORD-%d", orderIDBase+i),
			CustomerName:        firstName + " " + lastName,
			Date:                now.Add(-time.Duration(daysAgo) * day),
			Status:              Pick(rng, weightedStatuses),
			Category:            Pick(rng, models.Categories),
			Total:               rng.NextFloat(MinOrderTotal, MaxOrderTotal),
			Region:              Pick(rng, models.Regions),
			TrafficSource:       Pick(rng, models.TrafficSources),
			IsReturningCustomer: rng.Next() > ReturningThreshold,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})

	return orders
}

// OrderCorpus builds the order set once and serves the same slice afterwards
type OrderCorpus struct {
	seed  int64
	count int
	now   func() time.Time

	once        sync.Once
	orders      []models.Order
	generatedAt time.Time
}

// NewOrderCorpus creates a lazily generated corpus. now is read once, at generation time.
func NewOrderCorpus(seed int64, count int, now func() time.Time) *OrderCorpus {
	if now == nil {
		now = time.Now
	}
	return &OrderCorpus{seed: seed, count: count, now: now}
}

// Orders returns the corpus, generating it on first use. Callers must not modify it.
func (c *OrderCorpus) Orders() []models.Order {
	c.once.Do(func() {
		c.generatedAt = c.now().UTC().Truncate(time.Millisecond)
		c.orders = GenerateOrders(c.seed, c.count, c.generatedAt)
	})
	return c.orders
}

// Identity distinguishes this corpus from corpora built with another seed,
// size or generation instant. It generates the corpus if needed.
func (c *OrderCorpus) Identity() CorpusIdentity {
	c.Orders()
	return CorpusIdentity{Seed: c.seed, Count: c.count, GeneratedAt: c.generatedAt}
}

// CorpusIdentity is what a cached payload depends on besides the filters
type CorpusIdentity struct {
	Seed        int64
	Count       int
	GeneratedAt time.Time
}

// Size returns the number of orders in the corpus
func (c *OrderCorpus) Size() int {
	return len(c.Orders())
}
