package models

// DateRange is a trailing window selectable on the dashboard
type DateRange string

// Segment splits customers by whether they have ordered before
type Segment string

// RegionFilter is a Region or "All"
type RegionFilter string

const (
	Last7Days  DateRange = "Last 7 days"
	Last30Days DateRange = "Last 30 days"
	Last90Days DateRange = "Last 90 days"
)

const (
	SegmentAll       Segment = "All"
	SegmentNew       Segment = "New customers"
	SegmentReturning Segment = "Returning customers"
)

const (
	RegionAll        RegionFilter = "All"
	RegionFilterNA   RegionFilter = RegionFilter(RegionNA)
	RegionFilterEU   RegionFilter = RegionFilter(RegionEU)
	RegionFilterAPAC RegionFilter = RegionFilter(RegionAPAC)
)

// Defaults applied when a query value is missing or not recognized
const (
	DefaultDateRange = Last30Days
	DefaultSegment   = SegmentAll
	DefaultRegion    = RegionAll
)

// Days returns the window length in days. Unknown ranges use the widest window.
func (d DateRange) Days() int {
	switch d {
	case Last7Days:
		return 7
	case Last30Days:
		return 30
	default:
		return 90
	}
}

// Valid reports whether d is one of the selectable ranges
func (d DateRange) Valid() bool {
	return d == Last7Days || d == Last30Days || d == Last90Days
}

// Valid reports whether s is one of the selectable segments
func (s Segment) Valid() bool {
	return s == SegmentAll || s == SegmentNew || s == SegmentReturning
}

// Valid reports whether r is "All" or a known region
func (r RegionFilter) Valid() bool {
	return r == RegionAll || r == RegionFilterNA || r == RegionFilterEU || r == RegionFilterAPAC
}

// DashboardFilters is the filter triple shared by every dashboard view
type DashboardFilters struct {
	DateRange DateRange    `json:"dateRange"`
	Segment   Segment      `json:"segment"`
	Region    RegionFilter `json:"region"`
}

// DefaultFilters returns the filters used when nothing is selected
func DefaultFilters() DashboardFilters {
	return DashboardFilters{
		DateRange: DefaultDateRange,
		Segment:   DefaultSegment,
		Region:    DefaultRegion,
	}
}

// Normalize replaces any unrecognized value with its default
func (f DashboardFilters) Normalize() DashboardFilters {
	if !f.DateRange.Valid() {
		f.DateRange = DefaultDateRange
	}
	if !f.Segment.Valid() {
		f.Segment = DefaultSegment
	}
	if !f.Region.Valid() {
		f.Region = DefaultRegion
	}
	return f
}

// Metric is a current value paired with its percent change vs. the previous period
type Metric struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// KPIData holds the four headline metrics
type KPIData struct {
	Revenue        Metric `json:"revenue"`
	Orders         Metric `json:"orders"`
	ConversionRate Metric `json:"conversionRate"`
	AvgOrderValue  Metric `json:"avgOrderValue"`
}

// RevenueDataPoint is one day of paid revenue
type RevenueDataPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CategoryDataPoint is the paid order count for one category
type CategoryDataPoint struct {
	Category OrderCategory `json:"category"`
	Orders   int           `json:"orders"`
}

// TrafficSourceDataPoint is the paid order count for one acquisition channel
type TrafficSourceDataPoint struct {
	Source TrafficSource `json:"source"`
	Value  int           `json:"value"`
}

// DashboardData is the full payload served by /api/dashboard
type DashboardData struct {
	KPIs             KPIData                  `json:"kpis"`
	RevenueOverTime  []RevenueDataPoint       `json:"revenueOverTime"`
	OrdersByCategory []CategoryDataPoint      `json:"ordersByCategory"`
	TrafficSources   []TrafficSourceDataPoint `json:"trafficSources"`
	Orders           []Order                  `json:"orders"`
}

// CustomerSummary rolls up a customer's paid orders for the customers table
type CustomerSummary struct {
	Name        string  `json:"name"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`
	IsReturning bool    `json:"isReturning"`
	Region      Region  `json:"region"`
}
