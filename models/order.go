package models

import (
	"encoding/json"
	"time"
)

// OrderStatus is the payment state of an order
type OrderStatus string

// OrderCategory is the product line an order belongs to
type OrderCategory string

// Region is the sales region an order was placed in
type Region string

// TrafficSource is the acquisition channel that brought the order in
type TrafficSource string

const (
	StatusPaid     OrderStatus = "Paid"
	StatusPending  OrderStatus = "Pending"
	StatusRefunded OrderStatus = "Refunded"
)

const (
	CategorySubscriptions OrderCategory = "Subscriptions"
	CategoryServices      OrderCategory = "Services"
	CategoryAddOns        OrderCategory = "Add-ons"
	CategoryOther         OrderCategory = "Other"
)

const (
	RegionNA   Region = "NA"
	RegionEU   Region = "EU"
	RegionAPAC Region = "APAC"
)

const (
	SourceOrganic  TrafficSource = "Organic"
	SourcePaid     TrafficSource = "Paid"
	SourceReferral TrafficSource = "Referral"
	SourceEmail    TrafficSource = "Email"
)

// Categories lists every order category in display order
var Categories = []OrderCategory{CategorySubscriptions, CategoryServices, CategoryAddOns, CategoryOther}

// Regions lists every sales region
var Regions = []Region{RegionNA, RegionEU, RegionAPAC}

// TrafficSources lists every acquisition channel
var TrafficSources = []TrafficSource{SourceOrganic, SourcePaid, SourceReferral, SourceEmail}

// ISODateTimeFormat matches the millisecond precision UTC timestamps the dashboard UI parses
const ISODateTimeFormat = "2006-01-02T15:04:05.000Z"

// ISODateFormat is the calendar-day key used for time series and day drilldowns
const ISODateFormat = "2006-01-02"

// Order represents a single synthetic e-commerce order
type Order struct {
	ID                  string        `json:"id"`
	CustomerName        string        `json:"customerName"`
	Date                time.Time     `json:"date"`
	Status              OrderStatus   `json:"status"`
	Category            OrderCategory `json:"category"`
	Total               float64       `json:"total"`
	Region              Region        `json:"region"`
	TrafficSource       TrafficSource `json:"trafficSource"`
	IsReturningCustomer bool          `json:"isReturningCustomer"`
}

// IsPaid reports whether the order counts toward revenue
func (o Order) IsPaid() bool {
	return o.Status == StatusPaid
}

// Day returns the UTC calendar date of the order as YYYY-MM-DD
func (o Order) Day() string {
	return o.Date.UTC().Format(ISODateFormat)
}

// MarshalJSON serializes the order date as an ISO-8601 UTC string
func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(o),
		Date:  o.Date.UTC().Format(ISODateTimeFormat),
	})
}

// UnmarshalJSON parses an order produced by MarshalJSON
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		Date string `json:"date"`
	}{
		alias: (*alias)(o),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339Nano, aux.Date)
	if err != nil {
		return err
	}
	o.Date = parsed.UTC()
	return nil
}
