package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"vitrine/internal/domain"
)

// Rebuild replaces the cached data with items in a single transaction and
// stamps it with catalogModTime
func (idx *Index) Rebuild(items []domain.Item, catalogModTime time.Time) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin rebuild: %w", err)
	}

	if err := idx.fill(tx, items, stats); err != nil {
		tx.Rollback()
		return nil, err
	}

	meta := map[string]string{
		"schema_version":    schemaVersion,
		"catalog_path_hash": hashCatalogPath(idx.catalogPath),
		"catalog_mtime":     strconv.FormatInt(catalogModTime.UnixNano(), 10),
		"last_sync_time":    strconv.FormatInt(time.Now().Unix(), 10),
	}
	for key, value := range meta {
		if err := tx.setMeta(key, value); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update metadata: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rebuild: %w", err)
	}

	stats.Duration = time.Since(start)
	idx.log.WithFields(logrus.Fields{
		"items":    stats.ItemsIndexed,
		"duration": stats.Duration,
	}).Debug("rebuild committed")
	return stats, nil
}

func (idx *Index) fill(tx *indexTx, items []domain.Item, stats *domain.SyncStats) error {
	if err := tx.clear(); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	tags := make(map[string]struct{})
	for i, item := range items {
		if err := tx.insertItem(i, item); err != nil {
			return fmt.Errorf("failed to index item %s: %w", item.ID, err)
		}
		if _, err := item.Host(); err != nil {
			idx.log.WithField("item", item.ID).Debugf("no host for %q", item.URL)
		}
		for _, tag := range item.Tags {
			tags[tag] = struct{}{}
		}
		stats.ItemsIndexed++
		stats.ImagesIndexed += len(item.Images)
	}
	stats.TagsIndexed = len(tags)
	return nil
}
