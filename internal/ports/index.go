package ports

import (
	"time"

	"vitrine/internal/domain"
)

// CatalogIndex provides cached access to a parsed catalog.
// Queries are served from the cache without re-reading the catalog file.
type CatalogIndex interface {
	// Lifecycle
	Open(catalogPath string) error
	Close() error

	// Sync operations
	NeedsRebuild(catalogModTime time.Time) bool
	Rebuild(items []domain.Item, catalogModTime time.Time) (*domain.SyncStats, error)

	// Queries
	LoadItems() ([]domain.Item, error)
	TagCounts() ([]domain.TagCount, error)
	Domains() ([]string, error)
}
