package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

const (
	// DefaultPageSize matches the dashboard tables
	DefaultPageSize = 10
	// MaxPageSize caps a single table page
	MaxPageSize = 100
)

// QueryError represents an invalid query parameter
type QueryError struct {
	Code    string
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// DecodeParam decodes a query value, treating '+' as a space. Values that are
// not valid percent-encoding are returned with only the '+' replacement applied.
func DecodeParam(value string) string {
	replaced := strings.ReplaceAll(value, "+", " ")
	decoded, err := url.PathUnescape(replaced)
	if err != nil {
		return replaced
	}
	return decoded
}

// ParseFilters reads the dashboard filter triple, falling back to defaults for
// missing or unrecognized values
func ParseFilters(get func(key string) string) models.DashboardFilters {
	filters := models.DashboardFilters{
		DateRange: models.DateRange(DecodeParam(get("dateRange"))),
		Segment:   models.Segment(DecodeParam(get("segment"))),
		Region:    models.RegionFilter(DecodeParam(get("region"))),
	}
	return filters.Normalize()
}

// ParsePagination reads page and pageSize, applying defaults when empty
func ParsePagination(page, pageSize string) (int, int, error) {
	p := 1
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return 0, 0, &QueryError{
				Code:    "INVALID_PAGE",
				Message: "page must be a positive integer",
			}
		}
		p = n
	}

	size := DefaultPageSize
	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil || n < 1 || n > MaxPageSize {
			return 0, 0, &QueryError{
				Code:    "INVALID_PAGE_SIZE",
				Message: fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize),
			}
		}
		size = n
	}

	return p, size, nil
}

// ParseSortField returns field when it is allowed, otherwise fallback
func ParseSortField(field string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if field == a {
			return field
		}
	}
	return fallback
}

// ParseSortAsc reports whether dir requests ascending order. Anything but "asc" sorts descending.
func ParseSortAsc(dir string) bool {
	return strings.EqualFold(strings.TrimSpace(dir), "asc")
}
