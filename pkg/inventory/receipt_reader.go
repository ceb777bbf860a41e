package inventory

import (
	"context"
	"math/rand"
	"sync"
)

// ReceiptReader extracts item names from an uploaded receipt image.
type ReceiptReader interface {
	ReadItems(ctx context.Context, imageURL string) ([]string, error)
}

// receiptCatalog holds the grocery names the simulated reader samples from.
var receiptCatalog = []string{
	"Milk",
	"Eggs",
	"Bread",
	"Chicken Breast",
	"Spinach",
	"Apples",
	"Rice",
	"Yogurt",
	"Tomatoes",
	"Cheese",
}

type simulatedReceiptReader struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSimulatedReceiptReader returns a ReceiptReader that produces a random
// sample of catalog items instead of running real OCR. A fixed seed makes
// the output reproducible in tests.
func NewSimulatedReceiptReader(seed int64) ReceiptReader {
	return &simulatedReceiptReader{r: rand.New(rand.NewSource(seed))}
}

func (s *simulatedReceiptReader) ReadItems(_ context.Context, _ string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 3 + s.r.Intn(3)
	perm := s.r.Perm(len(receiptCatalog))

	items := make([]string, 0, count)
	for _, idx := range perm[:count] {
		items = append(items, receiptCatalog[idx])
	}
	return items, nil
}
