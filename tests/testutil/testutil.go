package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/config"
	"github.com/kendall-kelly/business-dashboard-api/services"
)

// FixedNow is the clock every deterministic test runs at
var FixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// FixedClock returns FixedNow
func FixedClock() time.Time { return FixedNow }

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}

	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// TestConfig returns the default configuration in the test environment
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.GoEnv = "test"
	return cfg
}

// UseFixedDashboard installs a dashboard service over the default corpus at FixedNow
func UseFixedDashboard(opts ...services.DashboardOption) *services.DashboardService {
	corpus := services.NewOrderCorpus(config.DefaultSeed, services.CorpusOrderCount, FixedClock)
	dashboard := services.NewDashboardService(corpus, append([]services.DashboardOption{services.WithClock(FixedClock)}, opts...)...)
	services.SetDashboardService(dashboard)
	return dashboard
}
