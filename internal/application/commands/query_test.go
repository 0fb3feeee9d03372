package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/application"
	"vitrine/internal/domain"
)

func viewTitles(v application.View) []string {
	out := make([]string, len(v.Items))
	for i, item := range v.Items {
		out[i] = item.Title
	}
	return out
}

func TestQueryCommand_Execute(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *QueryCommand)
		want  []string
	}{
		{name: "defaults", setup: func(c *QueryCommand) {}, want: []string{"Alpha", "Beta", "Gamma"}},
		{name: "short query ignored", setup: func(c *QueryCommand) { c.Query = "al" }, want: []string{"Alpha", "Beta", "Gamma"}},
		{name: "query", setup: func(c *QueryCommand) { c.Query = "ALP" }, want: []string{"Alpha"}},
		{name: "status", setup: func(c *QueryCommand) { c.Status = "abandoned" }, want: []string{"Gamma"}},
		{name: "domain", setup: func(c *QueryCommand) { c.Domain = "one.example" }, want: []string{"Alpha", "Gamma"}},
		{name: "tags", setup: func(c *QueryCommand) { c.Tags = []string{"y", "x"} }, want: []string{"Beta"}},
		{name: "newest", setup: func(c *QueryCommand) { c.Sort = "newest" }, want: []string{"Beta", "Alpha", "Gamma"}},
		{name: "oldest", setup: func(c *QueryCommand) { c.Sort = "oldest" }, want: []string{"Gamma", "Alpha", "Beta"}},
		{name: "second page", setup: func(c *QueryCommand) { c.PerPage = 2; c.Page = 2 }, want: []string{"Gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewQueryCommand(catalogItems())
			tt.setup(cmd)

			view, err := cmd.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, viewTitles(view))
		})
	}
}

func TestQueryCommand_SeededRandomIsReproducible(t *testing.T) {
	run := func() []string {
		cmd := NewQueryCommand(catalogItems())
		cmd.Sort = "random"
		cmd.Seed = 42
		view, err := cmd.Execute(context.Background())
		require.NoError(t, err)
		return viewTitles(view)
	}

	first := run()
	assert.Equal(t, first, run())
	assert.ElementsMatch(t, []string{"Alpha", "Beta", "Gamma"}, first)
}

func TestQueryCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *QueryCommand)
		wantErr error
	}{
		{name: "bad sort", setup: func(c *QueryCommand) { c.Sort = "popular" }, wantErr: application.ErrInvalidSort},
		{name: "bad status", setup: func(c *QueryCommand) { c.Status = "paused" }, wantErr: application.ErrInvalidStatus},
		{name: "zero page", setup: func(c *QueryCommand) { c.Page = 0 }, wantErr: application.ErrInvalidPage},
		{name: "zero per page", setup: func(c *QueryCommand) { c.PerPage = 0 }, wantErr: application.ErrInvalidPage},
		{name: "page beyond count", setup: func(c *QueryCommand) { c.Page = 2 }, wantErr: application.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewQueryCommand(catalogItems())
			tt.setup(cmd)

			_, err := cmd.Execute(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQueryCommand_EmptyResultHasOnePage(t *testing.T) {
	cmd := NewQueryCommand(catalogItems())
	cmd.Tags = []string{"nope"}

	view, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 1, view.PageCount)
	assert.Equal(t, domain.SortAlphabetical, view.Sort)
}

func TestShowCommand(t *testing.T) {
	item, err := NewShowCommand(catalogItems(), "b").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Beta", item.Title)

	_, err = NewShowCommand(catalogItems(), "zz").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = NewShowCommand(catalogItems(), " ").Execute(context.Background())
	var valErr *application.ValidationError
	assert.ErrorAs(t, err, &valErr)
}
