package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/middleware"
	"github.com/kendall-kelly/business-dashboard-api/models"
	"github.com/kendall-kelly/business-dashboard-api/services"
	"github.com/kendall-kelly/business-dashboard-api/utils"
)

// DownloadOrdersCSV handles GET /api/orders/export.csv - the filtered orders as a CSV attachment
func DownloadOrdersCSV(c *gin.Context) {
	dashboard := services.GetDashboardService()
	filters := utils.ParseFilters(c.Query)

	orders, err := dashboard.CurrentOrders(c.Request.Context(), filters)
	if err != nil {
		internalError(c, err)
		return
	}

	content, err := services.OrdersCSV(orders)
	if err != nil {
		internalError(c, err)
		return
	}

	filename := services.ExportFilename(dashboard.Now().UTC().Format(models.ISODateFormat))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ArchiveOrdersCSV handles POST /api/orders/exports - uploads the filtered orders CSV to S3
func ArchiveOrdersCSV(c *gin.Context) {
	dashboard := services.GetDashboardService()
	filters := utils.ParseFilters(c.Query)

	orders, err := dashboard.CurrentOrders(c.Request.Context(), filters)
	if err != nil {
		internalError(c, err)
		return
	}

	result, err := services.ArchiveOrdersCSV(c.Request.Context(), services.GetS3Service(), orders, dashboard.Now())
	if errors.Is(err, services.ErrExportsDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORTS_DISABLED",
				"message": "Order exports are not configured",
			},
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	requester := "anonymous"
	if userID, err := middleware.GetUserID(c); err == nil {
		requester = userID
	}
	log.Printf("[%s] %s archived %d orders to %s", middleware.GetRequestID(c), requester, result.Count, result.Key)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}
