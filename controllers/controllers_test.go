package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/models"
	"github.com/kendall-kelly/business-dashboard-api/services"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// setupTestRouter creates a gin router backed by the seed 42 corpus at fixedNow
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	corpus := services.NewOrderCorpus(42, 2000, fixedClock)
	services.SetDashboardService(services.NewDashboardService(corpus, services.WithClock(fixedClock)))

	router := gin.New()
	return router
}

// failingDashboard fails every query
type failingDashboard struct{}

var errCorpusUnavailable = errors.New("corpus unavailable")

func (failingDashboard) GetDashboardData(ctx context.Context, filters models.DashboardFilters) (*models.DashboardData, error) {
	return nil, errCorpusUnavailable
}

func (failingDashboard) CurrentOrders(ctx context.Context, filters models.DashboardFilters) ([]models.Order, error) {
	return nil, errCorpusUnavailable
}

func (failingDashboard) CorpusSize() int { return 0 }

func (failingDashboard) Now() time.Time { return fixedNow }
