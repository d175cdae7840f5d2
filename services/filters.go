package services

import (
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// Window is a half-open time span [Start, End). A zero End leaves it open-ended.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return w.End.IsZero() || t.Before(w.End)
}

// CurrentWindow is the trailing window for dateRange ending now
func CurrentWindow(dateRange models.DateRange, now time.Time) Window {
	return Window{Start: now.Add(-time.Duration(dateRange.Days()) * day)}
}

// PreviousWindow is the equal-length window immediately before CurrentWindow
func PreviousWindow(dateRange models.DateRange, now time.Time) Window {
	span := time.Duration(dateRange.Days()) * day
	return Window{Start: now.Add(-2 * span), End: now.Add(-span)}
}

// MatchesSegment reports whether the order belongs to segment
func MatchesSegment(order models.Order, segment models.Segment) bool {
	switch segment {
	case models.SegmentNew:
		return !order.IsReturningCustomer
	case models.SegmentReturning:
		return order.IsReturningCustomer
	default:
		return true
	}
}

// MatchesRegion reports whether the order belongs to region
func MatchesRegion(order models.Order, region models.RegionFilter) bool {
	return region == models.RegionAll || models.RegionFilter(order.Region) == region
}

// FilterWindow keeps orders inside window that match the segment and region of
// filters, preserving their relative order
func FilterWindow(orders []models.Order, filters models.DashboardFilters, window Window) []models.Order {
	result := make([]models.Order, 0)
	for _, order := range orders {
		if window.Contains(order.Date) &&
			MatchesSegment(order, filters.Segment) &&
			MatchesRegion(order, filters.Region) {
			result = append(result, order)
		}
	}
	return result
}

// ApplyFilters returns the orders of the current period selected by filters
func ApplyFilters(orders []models.Order, filters models.DashboardFilters, now time.Time) []models.Order {
	return FilterWindow(orders, filters, CurrentWindow(filters.DateRange, now))
}

// ApplyPreviousPeriodFilters returns the orders of the comparison period selected by filters
func ApplyPreviousPeriodFilters(orders []models.Order, filters models.DashboardFilters, now time.Time) []models.Order {
	return FilterWindow(orders, filters, PreviousWindow(filters.DateRange, now))
}
