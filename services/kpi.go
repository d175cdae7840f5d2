package services

import "github.com/kendall-kelly/business-dashboard-api/models"

// Conversion rates are synthetic display constants. The demo has no visitor
// data, so any period with paid orders reports the same fixed rate.
const (
	CurrentConversionRate  = 2.4
	PreviousConversionRate = 2.1
)

// PeriodTotals are the paid-order aggregates of one period
type PeriodTotals struct {
	Revenue        float64
	OrderCount     int
	AvgOrderValue  float64
	ConversionRate float64
}

// PaidOrders keeps only orders that count toward revenue. KPIs and every chart
// are computed over this subset.
func PaidOrders(orders []models.Order) []models.Order {
	paid := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.IsPaid() {
			paid = append(paid, order)
		}
	}
	return paid
}

func summarize(orders []models.Order, conversionRate float64) PeriodTotals {
	var totals PeriodTotals
	for _, order := range PaidOrders(orders) {
		totals.Revenue += order.Total
		totals.OrderCount++
	}
	if totals.OrderCount > 0 {
		totals.AvgOrderValue = totals.Revenue / float64(totals.OrderCount)
		totals.ConversionRate = conversionRate
	}
	return totals
}

// PercentChange is (current - previous) / previous * 100, or 0 without a previous value
func PercentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// CalculateKPIs compares the current period against the previous one.
// growthMultiplier scales current values before the change is computed; the
// reported values themselves are never scaled. Use 1.0 for honest deltas.
func CalculateKPIs(current, previous []models.Order, growthMultiplier float64) models.KPIData {
	cur := summarize(current, CurrentConversionRate)
	prev := summarize(previous, PreviousConversionRate)

	metric := func(value, previousValue float64) models.Metric {
		return models.Metric{
			Value:  value,
			Change: PercentChange(value*growthMultiplier, previousValue),
		}
	}

	return models.KPIData{
		Revenue:        metric(cur.Revenue, prev.Revenue),
		Orders:         metric(float64(cur.OrderCount), float64(prev.OrderCount)),
		ConversionRate: metric(cur.ConversionRate, prev.ConversionRate),
		AvgOrderValue:  metric(cur.AvgOrderValue, prev.AvgOrderValue),
	}
}
