package domain

import "time"

// SyncStats holds statistics from an index rebuild
type SyncStats struct {
	ItemsIndexed  int
	TagsIndexed   int
	ImagesIndexed int
	Duration      time.Duration
}
