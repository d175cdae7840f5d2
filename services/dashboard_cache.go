package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
	"github.com/redis/go-redis/v9"
)

// DashboardCache stores computed dashboard payloads
type DashboardCache interface {
	// Get returns the cached payload for key, or ok=false on a miss
	Get(ctx context.Context, key string) (data *models.DashboardData, ok bool, err error)

	// Set stores the payload under key
	Set(ctx context.Context, key string, data *models.DashboardData) error
}

// DashboardCacheKey identifies a payload by the corpus it was computed from, its
// normalized filters and the UTC minute it was computed in, so cached windows
// never drift far from now
func DashboardCacheKey(corpus CorpusIdentity, filters models.DashboardFilters, now time.Time) string {
	return fmt.Sprintf("dashboard:v2:%d:%d:%d:%s|%s|%s:%s",
		corpus.Seed, corpus.Count, corpus.GeneratedAt.UnixMilli(),
		filters.DateRange, filters.Segment, filters.Region,
		now.UTC().Format("200601021504"))
}

// NoopDashboardCache never stores anything
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(ctx context.Context, key string) (*models.DashboardData, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(ctx context.Context, key string, data *models.DashboardData) error {
	return nil
}

// RedisDashboardCache keeps JSON encoded payloads in Redis with a fixed TTL
type RedisDashboardCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisDashboardCache creates a cache backed by client
func NewRedisDashboardCache(client redis.Cmdable, ttl time.Duration) *RedisDashboardCache {
	return &RedisDashboardCache{client: client, ttl: ttl}
}

// Get reads and decodes a cached payload
func (c *RedisDashboardCache) Get(ctx context.Context, key string) (*models.DashboardData, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read dashboard cache: %w", err)
	}

	var data models.DashboardData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached dashboard: %w", err)
	}
	return &data, true, nil
}

// Set encodes and stores a payload
func (c *RedisDashboardCache) Set(ctx context.Context, key string, data *models.DashboardData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dashboard cache: %w", err)
	}
	return nil
}
