package sqlite

import (
	"fmt"
	"testing"
	"time"

	"vitrine/internal/domain"
)

func benchItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			ID:     fmt.Sprintf("id-%d", i),
			Title:  fmt.Sprintf("Item %d", i),
			URL:    fmt.Sprintf("https://host%d.example/%d", i%20, i),
			Status: domain.StatusActive,
			Tags:   []string{"tag" + fmt.Sprint(i%50), "tag" + fmt.Sprint(i%7)},
			Images: []string{fmt.Sprintf("https://img.example/%d.png", i)},
		}
	}
	return items
}

// BenchmarkRebuild benchmarks just the rebuild (DB already open)
func BenchmarkRebuild(b *testing.B) {
	b.Setenv("XDG_DATA_HOME", b.TempDir())
	items := benchItems(2000)

	idx := NewIndex(nil)
	if err := idx.Open("/bench/catalog.json"); err != nil {
		b.Fatalf("failed to open index: %v", err)
	}
	defer func() {
		if err := idx.Close(); err != nil {
			b.Fatalf("failed to close index: %v", err)
		}
	}()

	for b.Loop() {
		if _, err := idx.Rebuild(items, time.Unix(1, 0)); err != nil {
			b.Fatalf("rebuild failed: %v", err)
		}
	}
}

// BenchmarkWarmLoad benchmarks reading a built index back into memory
func BenchmarkWarmLoad(b *testing.B) {
	b.Setenv("XDG_DATA_HOME", b.TempDir())

	idx := NewIndex(nil)
	if err := idx.Open("/bench/catalog.json"); err != nil {
		b.Fatalf("failed to open index: %v", err)
	}
	defer idx.Close()

	if _, err := idx.Rebuild(benchItems(2000), time.Unix(1, 0)); err != nil {
		b.Fatalf("rebuild failed: %v", err)
	}

	for b.Loop() {
		if _, err := idx.LoadItems(); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
