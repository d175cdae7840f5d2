package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/middleware"
	"github.com/kendall-kelly/business-dashboard-api/services"
	"github.com/kendall-kelly/business-dashboard-api/utils"
)

// GetDashboard handles GET /api/dashboard - returns KPIs, charts and orders for the filters
func GetDashboard(c *gin.Context) {
	filters := utils.ParseFilters(c.Query)

	data, err := services.GetDashboardService().GetDashboardData(c.Request.Context(), filters)
	if err != nil {
		log.Printf("[%s] failed to build dashboard for %+v: %v", middleware.GetRequestID(c), filters, err)
		c.JSON(http.StatusInternalServerError, middleware.InternalServerErrorBody)
		return
	}

	c.JSON(http.StatusOK, data)
}

// DashboardOptions handles OPTIONS /api/dashboard - CORS preflight without an Origin
func DashboardOptions(c *gin.Context) {
	c.Status(http.StatusOK)
}

// MethodNotAllowed answers any unsupported method on a known route
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// HealthCheck handles GET /api/health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Business Dashboard API is running",
		"orders":  services.GetDashboardService().CorpusSize(),
	})
}
