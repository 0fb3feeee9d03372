package commands

import (
	"context"
	"errors"
	"time"

	"vitrine/internal/domain"
)

type fakeCatalog struct {
	items   []domain.Item
	modTime time.Time
	err     error
	loads   int
}

func (f *fakeCatalog) Path() string { return "/tmp/catalog.json" }

func (f *fakeCatalog) ModTime() (time.Time, error) { return f.modTime, f.err }

func (f *fakeCatalog) LoadItems(ctx context.Context) ([]domain.Item, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Item(nil), f.items...), nil
}

type fakeIndex struct {
	items    []domain.Item
	modTime  time.Time
	built    bool
	rebuilds int
	readErr  error
}

func (f *fakeIndex) Open(string) error { return nil }
func (f *fakeIndex) Close() error      { return nil }

func (f *fakeIndex) NeedsRebuild(modTime time.Time) bool {
	return !f.built || !f.modTime.Equal(modTime)
}

func (f *fakeIndex) Rebuild(items []domain.Item, modTime time.Time) (*domain.SyncStats, error) {
	f.items = append([]domain.Item(nil), items...)
	f.modTime = modTime
	f.built = true
	f.rebuilds++
	return &domain.SyncStats{ItemsIndexed: len(items)}, nil
}

func (f *fakeIndex) LoadItems() ([]domain.Item, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeIndex) TagCounts() ([]domain.TagCount, error) {
	return domain.TagCounts(f.items), nil
}

func (f *fakeIndex) Domains() ([]string, error) {
	d, _ := domain.Domains(f.items)
	return d, nil
}

var errBroken = errors.New("broken")

func catalogItems() []domain.Item {
	return []domain.Item{
		{ID: "a", Title: "Alpha", URL: "https://one.example/a", Status: domain.StatusActive, Tags: []string{"x"}, Published: "2023-01-01"},
		{ID: "b", Title: "Beta", URL: "https://two.example/b", Status: domain.StatusCompleted, Tags: []string{"x", "y"}, Published: "2024-01-01"},
		{ID: "c", Title: "Gamma", URL: "https://one.example/c", Status: domain.StatusAbandoned, Tags: []string{"z"}, Published: "2022-06-01"},
	}
}
