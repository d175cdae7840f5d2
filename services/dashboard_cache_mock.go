package services

import (
	"context"
	"sync"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// MockDashboardCache is an in-memory DashboardCache for testing
type MockDashboardCache struct {
	entries map[string]*models.DashboardData
	mu      sync.RWMutex

	// Err, when set, is returned from every call
	Err error

	Hits   int
	Misses int
}

// NewMockDashboardCache creates an empty mock cache
func NewMockDashboardCache() *MockDashboardCache {
	return &MockDashboardCache{entries: make(map[string]*models.DashboardData)}
}

// Get returns a stored payload
func (m *MockDashboardCache) Get(ctx context.Context, key string) (*models.DashboardData, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, false, m.Err
	}
	data, ok := m.entries[key]
	if ok {
		m.Hits++
	} else {
		m.Misses++
	}
	return data, ok, nil
}

// Set stores a payload
func (m *MockDashboardCache) Set(ctx context.Context, key string, data *models.DashboardData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.entries[key] = data
	return nil
}

// Keys returns every stored key
func (m *MockDashboardCache) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}
