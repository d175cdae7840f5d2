package services

import (
	"sync"
	"testing"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestGenerateOrdersFirstOrder(t *testing.T) {
	orders := GenerateOrders(42, 2000, fixedNow)
	require.Len(t, orders, 2000)

	var first models.Order
	for _, o := range orders {
		if o.ID == "ORD-10000" {
			first = o
		}
	}

	assert.Equal(t, "David Allen", first.CustomerName)
	assert.Equal(t, fixedNow.Add(-79*24*time.Hour), first.Date)
	assert.Equal(t, models.StatusPending, first.Status)
	assert.Equal(t, models.CategoryAddOns, first.Category)
	assert.InDelta(t, 3467.8446502057614, first.Total, 1e-9)
	assert.Equal(t, models.RegionEU, first.Region)
	assert.Equal(t, models.SourceOrganic, first.TrafficSource)
	assert.True(t, first.IsReturningCustomer)
}

func TestGenerateOrdersDeterministic(t *testing.T) {
	a := GenerateOrders(42, 2000, fixedNow)
	b := GenerateOrders(42, 2000, fixedNow)
	assert.Equal(t, a, b)

	c := GenerateOrders(43, 2000, fixedNow)
	assert.NotEqual(t, a, c)
}

func TestGenerateOrdersOutOfRangeSeed(t *testing.T) {
	var orders []models.Order
	require.NotPanics(t, func() {
		orders = GenerateOrders(-100, 50, fixedNow)
	})

	assert.Len(t, orders, 50)
	assert.Equal(t, GenerateOrders(lcgModulus-100, 50, fixedNow), orders)
}

func TestGenerateOrdersBounds(t *testing.T) {
	orders := GenerateOrders(42, 2000, fixedNow)

	ids := make(map[string]bool)
	statuses := make(map[models.OrderStatus]int)
	returning := 0
	for _, o := range orders {
		assert.False(t, ids[o.ID], "duplicate id %s", o.ID)
		ids[o.ID] = true

		assert.False(t, o.Date.After(fixedNow))
		assert.False(t, o.Date.Before(fixedNow.Add(-(LookbackDays-1)*24*time.Hour)))
		assert.GreaterOrEqual(t, o.Total, MinOrderTotal)
		assert.Less(t, o.Total, MaxOrderTotal)
		assert.Contains(t, models.Categories, o.Category)
		assert.Contains(t, models.Regions, o.Region)
		assert.Contains(t, models.TrafficSources, o.TrafficSource)

		statuses[o.Status]++
		if o.IsReturningCustomer {
			returning++
		}
	}

	assert.Equal(t, 1421, statuses[models.StatusPaid])
	assert.Equal(t, 294, statuses[models.StatusPending])
	assert.Equal(t, 285, statuses[models.StatusRefunded])
	assert.Equal(t, 797, returning)
}

func TestGenerateOrdersSortedNewestFirst(t *testing.T) {
	orders := GenerateOrders(42, 2000, fixedNow)

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].Date.After(orders[i-1].Date), "orders %d and %d out of order", i-1, i)
	}
	// Same-day orders keep generation order
	assert.Equal(t, []string{"ORD-10025", "ORD-10239", "ORD-10305"},
		[]string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrderCorpusGeneratesOnce(t *testing.T) {
	calls := 0
	corpus := NewOrderCorpus(42, 100, func() time.Time {
		calls++
		return fixedNow
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, corpus.Orders(), 100)
		}()
	}
	wg.Wait()

	first := corpus.Orders()
	second := corpus.Orders()
	assert.Same(t, &first[0], &second[0], "the cached slice should be reused")
	assert.Equal(t, 1, calls, "the clock should only be read at generation time")
	assert.Equal(t, 100, corpus.Size())
}

func TestOrderCorpusIdentity(t *testing.T) {
	corpus := NewOrderCorpus(42, 100, func() time.Time {
		return fixedNow.Add(123456789 * time.Nanosecond)
	})

	identity := corpus.Identity()
	assert.Equal(t, int64(42), identity.Seed)
	assert.Equal(t, 100, identity.Count)
	assert.Equal(t, fixedNow.Add(123*time.Millisecond), identity.GeneratedAt)
	assert.Equal(t, identity, corpus.Identity())
}
