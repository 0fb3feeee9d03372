package domain

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder names a sort strategy
type SortOrder string

const (
	SortAlphabetical SortOrder = "alphabetical"
	SortLastUpdated  SortOrder = "lastUpdated"
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortRandom       SortOrder = "random"
)

// SortOrders lists the strategies in selector order
var SortOrders = []SortOrder{SortAlphabetical, SortLastUpdated, SortNewest, SortOldest, SortRandom}

// Valid reports whether o is a known strategy
func (o SortOrder) Valid() bool {
	return slices.Contains(SortOrders, o)
}

// Sorter orders items by one strategy.
// A Sorter is not safe for concurrent use; the collator keeps internal buffers.
type Sorter struct {
	order    SortOrder
	collator *collate.Collator
	rng      *rand.Rand
}

// NewSorter builds a sorter for order. Titles are collated for locale.
// A nil rng uses a randomly seeded source.
func NewSorter(order SortOrder, locale language.Tag, rng *rand.Rand) *Sorter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sorter{
		order:    order,
		collator: collate.New(locale),
		rng:      rng,
	}
}

// Order returns the strategy of s
func (s *Sorter) Order() SortOrder {
	return s.order
}

// Compare returns -1, 0 or 1. For SortRandom every call draws a fresh
// nonzero sign.
func (s *Sorter) Compare(a, b Item) int {
	switch s.order {
	case SortAlphabetical:
		return s.collator.CompareString(a.Title, b.Title)
	case SortLastUpdated:
		return b.UpdatedAt().Compare(a.UpdatedAt())
	case SortNewest:
		return b.PublishedAt().Compare(a.PublishedAt())
	case SortOldest:
		return a.PublishedAt().Compare(b.PublishedAt())
	case SortRandom:
		return 1 - 2*s.rng.IntN(2)
	default:
		return 0
	}
}

// Sort reorders items in place. SortRandom shuffles instead of sorting with
// the random comparator, which would break the sort's ordering contract.
func (s *Sorter) Sort(items []Item) {
	if s.order == SortRandom {
		s.rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
		return
	}
	slices.SortStableFunc(items, s.Compare)
}

// Compare orders a and b by order with English collation
func Compare(a, b Item, order SortOrder) int {
	return NewSorter(order, language.English, nil).Compare(a, b)
}

// ParseLocale parses a BCP 47 tag, falling back to English
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}
