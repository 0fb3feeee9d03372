package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 20))
	assert.Equal(t, 1, PageCount(1, 20))
	assert.Equal(t, 1, PageCount(20, 20))
	assert.Equal(t, 2, PageCount(21, 20))
	assert.Equal(t, 3, PageCount(3, 1))
}

func TestWindow_PartitionsEveryItemOnce(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for perPage := 1; perPage <= 8; perPage++ {
			seen := make([]int, n)
			for page := 1; page <= PageCount(n, perPage); page++ {
				start, end := Window(page, perPage, n)
				require.LessOrEqual(t, start, end)
				require.LessOrEqual(t, end, n)
				for i := start; i < end; i++ {
					seen[i]++
				}
			}
			for i, c := range seen {
				require.Equal(t, 1, c, "n=%d perPage=%d index=%d", n, perPage, i)
			}
		}
	}
}

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(1)
	p.SetTotal(3)

	require.Equal(t, 3, p.PageCount())
	require.Equal(t, 1, p.CurrentPage())

	assert.False(t, p.First(), "first is a no-op on page 1")
	assert.False(t, p.Previous(), "previous is a no-op on page 1")

	assert.True(t, p.Next())
	start, end := p.VisibleRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)

	assert.True(t, p.Last())
	assert.Equal(t, 3, p.CurrentPage())
	assert.False(t, p.Next(), "next is a no-op on the last page")
	assert.False(t, p.Last(), "last is a no-op on the last page")

	assert.True(t, p.Previous())
	assert.Equal(t, 2, p.CurrentPage())
	assert.True(t, p.First())
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPaginator_ShrinkResetsToFirstPage(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(45)
	p.Last()
	require.Equal(t, 5, p.CurrentPage())

	p.SetTotal(25)
	assert.Equal(t, 1, p.CurrentPage(), "page beyond the new count resets to 1, not to the last page")

	p.Next()
	p.SetTotal(15)
	assert.Equal(t, 2, p.CurrentPage(), "page still in range is kept")
}

func TestPaginator_Empty(t *testing.T) {
	p := NewPaginator(20)
	p.SetTotal(0)

	assert.Equal(t, 0, p.PageCount())
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 1, p.CurrentPage())
	assert.False(t, p.Next())
	assert.False(t, p.Last())

	start, end := p.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestPaginator_SetItemsPerPage(t *testing.T) {
	p := NewPaginator(0)
	assert.Equal(t, DefaultItemsPerPage, p.ItemsPerPage())

	p.SetTotal(100)
	p.Next()
	assert.True(t, p.SetItemsPerPage(50))
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 2, p.PageCount())

	assert.False(t, p.SetItemsPerPage(0))
	assert.Equal(t, 50, p.ItemsPerPage())
}
