package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// ListTagsCommand lists every tag with the number of items carrying it
type ListTagsCommand struct {
	catalog ports.Catalog
	index   ports.CatalogIndex
	log     *logrus.Entry
}

// NewListTagsCommand creates a new ListTagsCommand
func NewListTagsCommand(catalog ports.Catalog, index ports.CatalogIndex, log *logrus.Entry) *ListTagsCommand {
	return &ListTagsCommand{catalog: catalog, index: index, log: entryOrDiscard(log)}
}

// Execute runs the list tags command
func (c *ListTagsCommand) Execute(ctx context.Context) ([]domain.TagCount, error) {
	if c.index != nil {
		if _, err := syncIndex(ctx, c.catalog, c.index, false, c.log); err == nil {
			return c.index.TagCounts()
		}
	}
	items, err := c.catalog.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return domain.TagCounts(items), nil
}

// ListDomainsCommand lists the link hosts of the item store in first-seen order
type ListDomainsCommand struct {
	catalog ports.Catalog
	index   ports.CatalogIndex
	log     *logrus.Entry
}

// NewListDomainsCommand creates a new ListDomainsCommand
func NewListDomainsCommand(catalog ports.Catalog, index ports.CatalogIndex, log *logrus.Entry) *ListDomainsCommand {
	return &ListDomainsCommand{catalog: catalog, index: index, log: entryOrDiscard(log)}
}

// Execute runs the list domains command
func (c *ListDomainsCommand) Execute(ctx context.Context) ([]string, error) {
	if c.index != nil {
		if _, err := syncIndex(ctx, c.catalog, c.index, false, c.log); err == nil {
			return c.index.Domains()
		}
	}
	items, err := c.catalog.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	domains, invalid := domain.Domains(items)
	for _, item := range invalid {
		c.log.WithField("item", item.ID).Warnf("skipping link without host: %q", item.URL)
	}
	return domains, nil
}
