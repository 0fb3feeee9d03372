package ports

import (
	"context"
	"time"

	"vitrine/internal/domain"
)

// Catalog is the source the item store is loaded from
type Catalog interface {
	// Path returns the location of the catalog file
	Path() string

	// ModTime returns the last modification time of the catalog
	ModTime() (time.Time, error)

	// LoadItems reads every record of the catalog
	LoadItems(ctx context.Context) ([]domain.Item, error)
}
