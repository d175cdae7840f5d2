package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// SortDirection orders table rows
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Drilldown kinds applied on top of the filtered orders
const (
	DrilldownDay      = "day"
	DrilldownCategory = "category"
)

// Drilldown narrows the orders table to one chart bucket
type Drilldown struct {
	Type  string
	Value string
}

// Pagination selects one page of rows. Page is 1-based.
type Pagination struct {
	Page     int
	PageSize int
}

// Page is one page of table rows
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// OrderQuery drives the orders table
type OrderQuery struct {
	Drilldown Drilldown
	Search    string
	SortBy    string
	SortDir   SortDirection
	Pagination
}

// CustomerQuery drives the customers table
type CustomerQuery struct {
	Search  string
	SortBy  string
	SortDir SortDirection
	Pagination
}

// OrderSortFields are the accepted orders table sort keys
var OrderSortFields = []string{"id", "customerName", "date", "status", "category", "total", "region"}

// CustomerSortFields are the accepted customers table sort keys
var CustomerSortFields = []string{"name", "totalOrders", "totalSpent", "region"}

// ApplyDrilldown keeps orders from one day (YYYY-MM-DD) or one category.
// An unknown type or empty value leaves orders unchanged.
func ApplyDrilldown(orders []models.Order, drilldown Drilldown) []models.Order {
	if drilldown.Value == "" {
		return orders
	}

	var keep func(models.Order) bool
	switch drilldown.Type {
	case DrilldownDay:
		keep = func(o models.Order) bool { return o.Day() == drilldown.Value }
	case DrilldownCategory:
		keep = func(o models.Order) bool { return string(o.Category) == drilldown.Value }
	default:
		return orders
	}

	result := make([]models.Order, 0)
	for _, order := range orders {
		if keep(order) {
			result = append(result, order)
		}
	}
	return result
}

// SearchOrders keeps orders whose id or customer name contains query, ignoring case
func SearchOrders(orders []models.Order, query string) []models.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return orders
	}

	result := make([]models.Order, 0)
	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.ID), query) ||
			strings.Contains(strings.ToLower(order.CustomerName), query) {
			result = append(result, order)
		}
	}
	return result
}

func orderComparator(field string) func(a, b models.Order) int {
	switch field {
	case "id":
		return func(a, b models.Order) int { return cmp.Compare(a.ID, b.ID) }
	case "customerName":
		return func(a, b models.Order) int { return cmp.Compare(a.CustomerName, b.CustomerName) }
	case "status":
		return func(a, b models.Order) int { return cmp.Compare(a.Status, b.Status) }
	case "category":
		return func(a, b models.Order) int { return cmp.Compare(a.Category, b.Category) }
	case "total":
		return func(a, b models.Order) int { return cmp.Compare(a.Total, b.Total) }
	case "region":
		return func(a, b models.Order) int { return cmp.Compare(a.Region, b.Region) }
	default:
		return func(a, b models.Order) int { return a.Date.Compare(b.Date) }
	}
}

func customerComparator(field string) func(a, b models.CustomerSummary) int {
	switch field {
	case "name":
		return func(a, b models.CustomerSummary) int { return cmp.Compare(a.Name, b.Name) }
	case "totalOrders":
		return func(a, b models.CustomerSummary) int { return cmp.Compare(a.TotalOrders, b.TotalOrders) }
	case "region":
		return func(a, b models.CustomerSummary) int { return cmp.Compare(a.Region, b.Region) }
	default:
		return func(a, b models.CustomerSummary) int { return cmp.Compare(a.TotalSpent, b.TotalSpent) }
	}
}

func sortRows[T any](rows []T, compare func(a, b T) int, dir SortDirection) []T {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if dir == SortAsc {
			return compare(a, b)
		}
		return -compare(a, b)
	})
	return sorted
}

// Paginate slices rows into the requested page. Pages past the end are empty.
func Paginate[T any](rows []T, p Pagination) Page[T] {
	total := len(rows)
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}

	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}

	items := make([]T, 0, end-start)
	items = append(items, rows[start:end]...)

	return Page[T]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// QueryOrders applies drilldown, search, sort and pagination to orders
func QueryOrders(orders []models.Order, q OrderQuery) Page[models.Order] {
	rows := ApplyDrilldown(orders, q.Drilldown)
	rows = SearchOrders(rows, q.Search)
	rows = sortRows(rows, orderComparator(q.SortBy), q.SortDir)
	return Paginate(rows, q.Pagination)
}

// SummarizeCustomers rolls paid orders up by customer name, in order of first
// appearance. Returning flag and region come from the first order seen.
func SummarizeCustomers(orders []models.Order) []models.CustomerSummary {
	index := make(map[string]int)
	customers := make([]models.CustomerSummary, 0)
	for _, order := range PaidOrders(orders) {
		i, ok := index[order.CustomerName]
		if !ok {
			i = len(customers)
			index[order.CustomerName] = i
			customers = append(customers, models.CustomerSummary{
				Name:        order.CustomerName,
				IsReturning: order.IsReturningCustomer,
				Region:      order.Region,
			})
		}
		customers[i].TotalOrders++
		customers[i].TotalSpent += order.Total
	}
	return customers
}

// QueryCustomers summarizes orders and applies search, sort and pagination
func QueryCustomers(orders []models.Order, q CustomerQuery) Page[models.CustomerSummary] {
	customers := SummarizeCustomers(orders)

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		matched := make([]models.CustomerSummary, 0)
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.Name), search) {
				matched = append(matched, c)
			}
		}
		customers = matched
	}

	customers = sortRows(customers, customerComparator(q.SortBy), q.SortDir)
	return Paginate(customers, q.Pagination)
}
