package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kendall-kelly/business-dashboard-api/models"
)

// ErrExportsDisabled is returned when no export store is configured
var ErrExportsDisabled = errors.New("order exports are not configured")

// ExportResult locates an archived CSV export
type ExportResult struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// ExportKey builds the object key for an export written at now
func ExportKey(now time.Time) string {
	return fmt.Sprintf("exports/orders_%s.csv", now.UTC().Format("20060102T150405Z"))
}

// ArchiveOrdersCSV renders orders to CSV, uploads them to store and returns a download link
func ArchiveOrdersCSV(ctx context.Context, store S3Interface, orders []models.Order, now time.Time) (*ExportResult, error) {
	if store == nil {
		return nil, ErrExportsDisabled
	}

	content, err := OrdersCSV(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	key := ExportKey(now)
	if err := store.UploadCSV(ctx, key, content); err != nil {
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}

	url, err := store.GetPresignedURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign export: %w", err)
	}

	return &ExportResult{Key: key, URL: url, Count: len(orders)}, nil
}
