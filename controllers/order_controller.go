package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/middleware"
	"github.com/kendall-kelly/business-dashboard-api/services"
	"github.com/kendall-kelly/business-dashboard-api/utils"
)

func sortDirection(c *gin.Context) services.SortDirection {
	if utils.ParseSortAsc(c.Query("sortDir")) {
		return services.SortAsc
	}
	return services.SortDesc
}

func pagination(c *gin.Context) (services.Pagination, bool) {
	page, pageSize, err := utils.ParsePagination(c.Query("page"), c.Query("pageSize"))
	if err != nil {
		var queryErr *utils.QueryError
		if errors.As(err, &queryErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    queryErr.Code,
					"message": queryErr.Message,
				},
			})
			return services.Pagination{}, false
		}
		internalError(c, err)
		return services.Pagination{}, false
	}
	return services.Pagination{Page: page, PageSize: pageSize}, true
}

func internalError(c *gin.Context, err error) {
	log.Printf("[%s] %s %s failed: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Internal server error",
		},
	})
}

// ListOrders handles GET /api/orders - the orders table with drilldown, search, sort and pages
func ListOrders(c *gin.Context) {
	p, ok := pagination(c)
	if !ok {
		return
	}

	filters := utils.ParseFilters(c.Query)
	orders, err := services.GetDashboardService().CurrentOrders(c.Request.Context(), filters)
	if err != nil {
		internalError(c, err)
		return
	}

	result := services.QueryOrders(orders, services.OrderQuery{
		Drilldown: services.Drilldown{
			Type:  c.Query("drilldownType"),
			Value: utils.DecodeParam(c.Query("drilldownValue")),
		},
		Search:     c.Query("search"),
		SortBy:     utils.ParseSortField(c.Query("sortBy"), services.OrderSortFields, "date"),
		SortDir:    sortDirection(c),
		Pagination: p,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"filters":    filters,
			"orders":     result.Items,
			"page":       result.Page,
			"pageSize":   result.PageSize,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}

// ListCustomers handles GET /api/customers - paid orders rolled up per customer
func ListCustomers(c *gin.Context) {
	p, ok := pagination(c)
	if !ok {
		return
	}

	filters := utils.ParseFilters(c.Query)
	orders, err := services.GetDashboardService().CurrentOrders(c.Request.Context(), filters)
	if err != nil {
		internalError(c, err)
		return
	}

	result := services.QueryCustomers(orders, services.CustomerQuery{
		Search:     c.Query("search"),
		SortBy:     utils.ParseSortField(c.Query("sortBy"), services.CustomerSortFields, "totalSpent"),
		SortDir:    sortDirection(c),
		Pagination: p,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"filters":    filters,
			"customers":  result.Items,
			"page":       result.Page,
			"pageSize":   result.PageSize,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}
