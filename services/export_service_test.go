package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveOrdersCSV(t *testing.T) {
	store := NewMockS3Service()
	orders := GenerateOrders(42, 20, fixedNow)

	result, err := ArchiveOrdersCSV(context.Background(), store, orders, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "exports/orders_20261014T120000Z.csv", result.Key)
	assert.Equal(t, 20, result.Count)
	assert.Contains(t, result.URL, result.Key)
	assert.True(t, store.FileExists(result.Key))

	want, err := OrdersCSV(orders)
	require.NoError(t, err)
	assert.Equal(t, want, store.GetUploadedFiles()[result.Key])
}

func TestArchiveOrdersCSVWithoutStore(t *testing.T) {
	result, err := ArchiveOrdersCSV(context.Background(), nil, nil, fixedNow)
	assert.ErrorIs(t, err, ErrExportsDisabled)
	assert.Nil(t, result)
}

func TestArchiveOrdersCSVUploadFailure(t *testing.T) {
	store := NewMockS3Service()
	store.UploadErr = errors.New("access denied")

	result, err := ArchiveOrdersCSV(context.Background(), store, nil, fixedNow)
	assert.ErrorContains(t, err, "access denied")
	assert.Nil(t, result)
	assert.Empty(t, store.GetUploadedFiles())
}

func TestMockS3ServicePresignMissingKey(t *testing.T) {
	store := NewMockS3Service()

	url, err := store.GetPresignedURL(context.Background(), "")
	assert.NoError(t, err)
	assert.Empty(t, url)

	_, err = store.GetPresignedURL(context.Background(), "exports/missing.csv")
	assert.Error(t, err)
}
