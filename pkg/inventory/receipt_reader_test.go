package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedReceiptReaderSampleSize(t *testing.T) {
	reader := NewSimulatedReceiptReader(1)

	items, err := reader.ReadItems(context.Background(), "https://example.com/receipt.jpg")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(items), 3)
	assert.LessOrEqual(t, len(items), 5)
}

func TestSimulatedReceiptReaderDeterministicForSeed(t *testing.T) {
	first, err := NewSimulatedReceiptReader(42).ReadItems(context.Background(), "")
	require.NoError(t, err)
	second, err := NewSimulatedReceiptReader(42).ReadItems(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulatedReceiptReaderNoDuplicates(t *testing.T) {
	items, err := NewSimulatedReceiptReader(7).ReadItems(context.Background(), "")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, name := range items {
		assert.False(t, seen[name], "duplicate item %s", name)
		seen[name] = true
	}
}

func TestSimulatedReceiptReaderDrawsFromCatalog(t *testing.T) {
	catalog := make(map[string]bool)
	for _, name := range receiptCatalog {
		catalog[name] = true
	}

	items, err := NewSimulatedReceiptReader(99).ReadItems(context.Background(), "")
	require.NoError(t, err)
	for _, name := range items {
		assert.True(t, catalog[name])
	}
}
