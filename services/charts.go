package services

import (
	"sort"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// ChartData holds the three chart projections of a filtered order set
type ChartData struct {
	RevenueOverTime  []models.RevenueDataPoint
	OrdersByCategory []models.CategoryDataPoint
	TrafficSources   []models.TrafficSourceDataPoint
}

// AggregateCharts builds every chart from the paid orders of the set
func AggregateCharts(orders []models.Order) ChartData {
	paid := PaidOrders(orders)
	return ChartData{
		RevenueOverTime:  RevenueOverTime(paid),
		OrdersByCategory: OrdersByCategory(paid),
		TrafficSources:   TrafficSourceCounts(paid),
	}
}

// RevenueOverTime sums totals per UTC calendar day, oldest day first
func RevenueOverTime(orders []models.Order) []models.RevenueDataPoint {
	daily := make(map[string]float64)
	for _, order := range orders {
		daily[order.Day()] += order.Total
	}

	points := make([]models.RevenueDataPoint, 0, len(daily))
	for date, revenue := range daily {
		points = append(points, models.RevenueDataPoint{Date: date, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// OrdersByCategory counts orders per category. Every category is present, zero or not.
func OrdersByCategory(orders []models.Order) []models.CategoryDataPoint {
	counts := make(map[models.OrderCategory]int, len(models.Categories))
	for _, order := range orders {
		counts[order.Category]++
	}

	points := make([]models.CategoryDataPoint, 0, len(models.Categories))
	for _, category := range models.Categories {
		points = append(points, models.CategoryDataPoint{Category: category, Orders: counts[category]})
	}
	return points
}

// TrafficSourceCounts counts orders per traffic source, listing only sources
// that occur, in order of first appearance
func TrafficSourceCounts(orders []models.Order) []models.TrafficSourceDataPoint {
	index := make(map[models.TrafficSource]int)
	points := make([]models.TrafficSourceDataPoint, 0, len(models.TrafficSources))
	for _, order := range orders {
		i, ok := index[order.TrafficSource]
		if !ok {
			i = len(points)
			index[order.TrafficSource] = i
			points = append(points, models.TrafficSourceDataPoint{Source: order.TrafficSource})
		}
		points[i].Value++
	}
	return points
}
