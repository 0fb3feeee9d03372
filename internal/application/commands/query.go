package commands

import (
	"context"
	"math/rand/v2"

	"golang.org/x/text/language"

	"vitrine/internal/application"
	"vitrine/internal/domain"
)

// QueryCommand runs one filter, sort and paginate pass over the item store
type QueryCommand struct {
	items   []domain.Item
	Query   string
	Status  string
	Domain  string
	Tags    []string
	Sort    string
	Page    int
	PerPage int
	Seed    uint64 // random sort seed, 0 picks one
	Locale  language.Tag
}

// NewQueryCommand creates a new QueryCommand starting at page 1 with the default page size
func NewQueryCommand(items []domain.Item) *QueryCommand {
	return &QueryCommand{
		items:   items,
		Page:    1,
		PerPage: domain.DefaultItemsPerPage,
	}
}

// Validate checks the query parameters
func (c *QueryCommand) Validate() error {
	if _, err := application.ParseSortOrder(c.Sort); err != nil {
		return err
	}
	if _, err := application.ParseStatusFilter(c.Status); err != nil {
		return err
	}
	return application.ValidatePage(c.Page, c.PerPage)
}

// Execute returns the requested page
func (c *QueryCommand) Execute(ctx context.Context) (application.View, error) {
	if err := c.Validate(); err != nil {
		return application.View{}, err
	}
	order, _ := application.ParseSortOrder(c.Sort)
	status, _ := application.ParseStatusFilter(c.Status)

	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewPCG(c.Seed, c.Seed))
	}

	g := application.NewGallery(c.items, application.GalleryOptions{
		ItemsPerPage: c.PerPage,
		Locale:       c.Locale,
		Rand:         rng,
	})
	g.OnFilterChanged(domain.FilterState{
		Query:        c.Query,
		Status:       status,
		Domain:       c.Domain,
		SelectedTags: c.Tags,
	})
	if err := g.OnSortChanged(order); err != nil {
		return application.View{}, err
	}
	if err := g.GoToPage(c.Page); err != nil {
		return application.View{}, err
	}
	return g.View(), nil
}
