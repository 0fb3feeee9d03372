package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCompare_Alphabetical(t *testing.T) {
	a := Item{Title: "apple"}
	b := Item{Title: "Banana"}

	assert.Equal(t, -1, Compare(a, b, SortAlphabetical), "collation ignores case at primary level")
	assert.Equal(t, 1, Compare(b, a, SortAlphabetical))
	assert.Equal(t, 0, Compare(a, a, SortAlphabetical))
	assert.Equal(t, -1, Compare(Item{Title: "Émile"}, Item{Title: "Zed"}, SortAlphabetical))
}

func TestCompare_Dates(t *testing.T) {
	older := Item{Title: "old", Published: "2023-01-01", Updated: "2023-06-01"}
	newer := Item{Title: "new", Published: "2024-01-01", Updated: "2023-02-01"}
	undated := Item{Title: "undated"}

	tests := []struct {
		name  string
		order SortOrder
		a, b  Item
		want  int
	}{
		{"newest puts recent first", SortNewest, newer, older, -1},
		{"newest reversed", SortNewest, older, newer, 1},
		{"oldest puts old first", SortOldest, older, newer, -1},
		{"last updated uses updated date", SortLastUpdated, older, newer, -1},
		{"missing date is epoch for newest", SortNewest, undated, older, 1},
		{"missing date is epoch for oldest", SortOldest, undated, older, -1},
		{"equal dates", SortNewest, undated, Item{Published: "garbage"}, 0},
		{"unknown strategy", SortOrder("bogus"), older, newer, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b, tt.order))
		})
	}
}

func TestCompare_RandomReturnsSigns(t *testing.T) {
	s := NewSorter(SortRandom, language.English, rand.New(rand.NewPCG(1, 2)))
	seen := map[int]bool{}
	for range 300 {
		c := s.Compare(Item{Title: "a"}, Item{Title: "b"})
		assert.Contains(t, []int{-1, 1}, c)
		seen[c] = true
	}
	assert.False(t, seen[0], "random comparator never reports equal")
	assert.True(t, seen[-1] && seen[1], "random comparator should produce both signs")
}

func TestSorter_Sort(t *testing.T) {
	items := []Item{
		{Title: "Alpha", Published: "2023-01-01"},
		{Title: "Beta", Published: "2024-01-01"},
	}

	NewSorter(SortNewest, language.English, nil).Sort(items)
	assert.Equal(t, []string{"Beta", "Alpha"}, titles(items))

	NewSorter(SortAlphabetical, language.English, nil).Sort(items)
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(items))

	NewSorter(SortOldest, language.English, nil).Sort(items)
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(items))
}

func TestSorter_RandomShufflesAllItems(t *testing.T) {
	items := sampleItems()
	s := NewSorter(SortRandom, language.English, rand.New(rand.NewPCG(7, 7)))

	s.Sort(items)

	assert.ElementsMatch(t, titles(sampleItems()), titles(items))
}

func TestSortOrder_Valid(t *testing.T) {
	for _, o := range SortOrders {
		assert.True(t, o.Valid(), o)
	}
	assert.False(t, SortOrder("alpha").Valid())
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	assert.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = ParseLocale("sv")
	assert.NoError(t, err)
	assert.Equal(t, "sv", tag.String())

	_, err = ParseLocale("!!")
	assert.Error(t, err)
}
