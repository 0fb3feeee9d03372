package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// LoadCatalogCommand loads the item store, preferring a fresh index over
// re-reading the catalog. A nil index reads the catalog every time.
type LoadCatalogCommand struct {
	catalog ports.Catalog
	index   ports.CatalogIndex
	log     *logrus.Entry
}

// NewLoadCatalogCommand creates a new LoadCatalogCommand
func NewLoadCatalogCommand(catalog ports.Catalog, index ports.CatalogIndex, log *logrus.Entry) *LoadCatalogCommand {
	return &LoadCatalogCommand{
		catalog: catalog,
		index:   index,
		log:     entryOrDiscard(log).WithField("component", "loader"),
	}
}

// Execute returns every item of the catalog in catalog order
func (c *LoadCatalogCommand) Execute(ctx context.Context) ([]domain.Item, error) {
	if c.index == nil {
		return c.readCatalog(ctx)
	}

	if _, err := syncIndex(ctx, c.catalog, c.index, false, c.log); err != nil {
		c.log.WithError(err).Warn("index unavailable, reading catalog directly")
		return c.readCatalog(ctx)
	}

	items, err := c.index.LoadItems()
	if err != nil {
		c.log.WithError(err).Warn("index read failed, reading catalog directly")
		return c.readCatalog(ctx)
	}
	return items, nil
}

func (c *LoadCatalogCommand) readCatalog(ctx context.Context) ([]domain.Item, error) {
	items, err := c.catalog.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", c.catalog.Path(), err)
	}
	c.log.WithField("items", len(items)).Debug("catalog loaded")
	return items, nil
}

// RebuildIndexCommand forces a full rebuild of the index from the catalog
type RebuildIndexCommand struct {
	catalog ports.Catalog
	index   ports.CatalogIndex
	log     *logrus.Entry
}

// NewRebuildIndexCommand creates a new RebuildIndexCommand
func NewRebuildIndexCommand(catalog ports.Catalog, index ports.CatalogIndex, log *logrus.Entry) *RebuildIndexCommand {
	return &RebuildIndexCommand{
		catalog: catalog,
		index:   index,
		log:     entryOrDiscard(log).WithField("component", "indexer"),
	}
}

// Execute rebuilds the index and returns the sync statistics
func (c *RebuildIndexCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	if c.index == nil {
		return nil, fmt.Errorf("index is disabled")
	}
	return syncIndex(ctx, c.catalog, c.index, true, c.log)
}

// syncIndex rebuilds the index when forced or stale. Returns nil stats when
// the index was already fresh.
func syncIndex(ctx context.Context, catalog ports.Catalog, index ports.CatalogIndex, force bool, log *logrus.Entry) (*domain.SyncStats, error) {
	modTime, err := catalog.ModTime()
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}

	if !force && !index.NeedsRebuild(modTime) {
		log.Debug("index is fresh")
		return nil, nil
	}

	items, err := catalog.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", catalog.Path(), err)
	}

	stats, err := index.Rebuild(items, modTime)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}

	log.WithFields(logrus.Fields{
		"items":    stats.ItemsIndexed,
		"tags":     stats.TagsIndexed,
		"images":   stats.ImagesIndexed,
		"duration": stats.Duration,
	}).Info("index rebuilt")
	return stats, nil
}

func entryOrDiscard(e *logrus.Entry) *logrus.Entry {
	if e != nil {
		return e
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
