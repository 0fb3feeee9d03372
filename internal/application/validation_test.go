package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.SortOrder
		wantErr bool
	}{
		{name: "empty defaults to alphabetical", input: "", want: domain.SortAlphabetical},
		{name: "exact", input: "newest", want: domain.SortNewest},
		{name: "case insensitive", input: "LastUpdated", want: domain.SortLastUpdated},
		{name: "trimmed", input: " random ", want: domain.SortRandom},
		{name: "unknown", input: "popular", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortOrder(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSort))

				var valErr *ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "sort", valErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.StatusFilter
		wantErr bool
	}{
		{input: "", want: domain.FilterAny},
		{input: "any", want: domain.FilterAny},
		{input: "Active", want: domain.FilterActive},
		{input: "completed", want: domain.FilterCompleted},
		{input: "abandoned", want: domain.FilterAbandoned},
		{input: "onhold", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePage(t *testing.T) {
	assert.NoError(t, ValidatePage(1, 1))
	assert.ErrorIs(t, ValidatePage(0, 20), ErrInvalidPage)
	assert.ErrorIs(t, ValidatePage(1, 0), ErrInvalidPage)
	assert.NotErrorIs(t, ValidatePage(0, 20), ErrInvalidSort)
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{ID: "abc"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "item abc not found", err.Error())
}
