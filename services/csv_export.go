package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// CSVHeader is the first row of every orders export
var CSVHeader = []string{"Order ID", "Customer", "Date", "Status", "Category", "Total", "Region", "Traffic Source"}

// ShortDateFormat renders dates as M/D/YYYY
const ShortDateFormat = "1/2/2006"

// WriteOrdersCSV writes orders as CSV, one row per order
func WriteOrdersCSV(w io.Writer, orders []models.Order) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, order := range orders {
		row := []string{
			order.ID,
			order.CustomerName,
			order.Date.UTC().Format(ShortDateFormat),
			string(order.Status),
			string(order.Category),
			strconv.FormatFloat(order.Total, 'f', 2, 64),
			string(order.Region),
			string(order.TrafficSource),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write order %s: %w", order.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// OrdersCSV renders orders to an in-memory CSV document
func OrdersCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteOrdersCSV(&buf, orders); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names a CSV export by its UTC date
func ExportFilename(date string) string {
	return fmt.Sprintf("orders_%s.csv", date)
}
