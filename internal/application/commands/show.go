package commands

import (
	"context"
	"strings"

	"vitrine/internal/application"
	"vitrine/internal/domain"
)

// ShowCommand looks up a single item by id
type ShowCommand struct {
	items []domain.Item
	ID    string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(items []domain.Item, id string) *ShowCommand {
	return &ShowCommand{items: items, ID: id}
}

// Validate checks the item id
func (c *ShowCommand) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return &application.ValidationError{Field: "id", Message: "item ID is required"}
	}
	return nil
}

// Execute returns the item with the requested id
func (c *ShowCommand) Execute(ctx context.Context) (domain.Item, error) {
	if err := c.Validate(); err != nil {
		return domain.Item{}, err
	}
	for _, item := range c.items {
		if item.ID == c.ID {
			return item, nil
		}
	}
	return domain.Item{}, &application.NotFoundError{ID: c.ID}
}
