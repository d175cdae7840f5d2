package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// Dashboard answers every dashboard view from the generated corpus
type Dashboard interface {
	// GetDashboardData builds the KPI, chart and orders payload for filters
	GetDashboardData(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error)

	// CurrentOrders returns the current-period orders selected by filters, newest first
	CurrentOrders(ctx context.Context, filters models.DashboardFilters) ([]models.Order, error)

	// CorpusSize returns the number of generated orders
	CorpusSize() int

	// Now returns the service clock
	Now() time.Time
}

// DashboardService implements Dashboard over an OrderCorpus
type DashboardService struct {
	corpus           *OrderCorpus
	cache            DashboardCache
	now              func() time.Time
	growthMultiplier float64
}

// DashboardOption customizes a DashboardService
type DashboardOption func(*DashboardService)

// WithCache stores computed payloads in cache
func WithCache(cache DashboardCache) DashboardOption {
	return func(s *DashboardService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithClock replaces time.Now for filtering
func WithClock(now func() time.Time) DashboardOption {
	return func(s *DashboardService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithGrowthMultiplier scales current values before percent changes are computed
func WithGrowthMultiplier(multiplier float64) DashboardOption {
	return func(s *DashboardService) {
		s.growthMultiplier = multiplier
	}
}

var dashboardServiceInstance Dashboard

// NewDashboardService creates a service reading from corpus
func NewDashboardService(corpus *OrderCorpus, opts ...DashboardOption) *DashboardService {
	s := &DashboardService{
		corpus:           corpus,
		cache:            NoopDashboardCache{},
		now:              time.Now,
		growthMultiplier: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitDashboardService creates the process-wide dashboard service
func InitDashboardService(corpus *OrderCorpus, opts ...DashboardOption) Dashboard {
	dashboardServiceInstance = NewDashboardService(corpus, opts...)
	return dashboardServiceInstance
}

// GetDashboardService returns the initialized dashboard service instance
func GetDashboardService() Dashboard {
	return dashboardServiceInstance
}

// SetDashboardService sets the dashboard service instance (primarily for testing)
func SetDashboardService(service Dashboard) {
	dashboardServiceInstance = service
}

// Now returns the service clock
func (s *DashboardService) Now() time.Time {
	return s.now()
}

// CorpusSize returns the number of generated orders
func (s *DashboardService) CorpusSize() int {
	return s.corpus.Size()
}

// CurrentOrders returns the orders of the current period selected by filters
func (s *DashboardService) CurrentOrders(ctx context.Context, filters models.DashboardFilters) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dashboard query aborted: %w", err)
	}
	return ApplyFilters(s.corpus.Orders(), filters.Normalize(), s.now()), nil
}

// GetDashboardData filters the corpus for the current and previous periods and
// assembles KPIs, charts and the current orders
func (s *DashboardService) GetDashboardData(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dashboard query aborted: %w", err)
	}

	filters = filters.Normalize()
	now := s.now()
	key := DashboardCacheKey(s.corpus.Identity(), filters, now)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("warning: dashboard cache read failed: %v", err)
	} else if ok {
		return cached, nil
	}

	data := s.build(filters, now)

	if err := s.cache.Set(ctx, key, data); err != nil {
		log.Printf("warning: dashboard cache write failed: %v", err)
	}

	return data, nil
}

func (s *DashboardService) build(filters models.DashboardFilters, now time.Time) *models.DashboardData {
	orders := s.corpus.Orders()
	current := ApplyFilters(orders, filters, now)
	previous := ApplyPreviousPeriodFilters(orders, filters, now)
	charts := AggregateCharts(current)

	return &models.DashboardData{
		KPIs:             CalculateKPIs(current, previous, s.growthMultiplier),
		RevenueOverTime:  charts.RevenueOverTime,
		OrdersByCategory: charts.OrdersByCategory,
		TrafficSources:   charts.TrafficSources,
		Orders:           current,
	}
}
