package domain

import (
	"slices"
	"sort"
	"strings"
)

// MinQueryLength is the shortest text query that filters anything
const MinQueryLength = 3

// AllDomains is the domain filter value that matches every item
const AllDomains = "all"

// StatusFilter selects items by status category
type StatusFilter string

const (
	FilterAny       StatusFilter = "any"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
	FilterAbandoned StatusFilter = "abandoned"
)

// StatusFilters lists the status filters in selector order
var StatusFilters = []StatusFilter{FilterAny, FilterActive, FilterCompleted, FilterAbandoned}

// FilterState holds every predicate input of the filter set
type FilterState struct {
	Query        string
	Status       StatusFilter
	Domain       string
	SelectedTags []string // kept sorted, no duplicates
}

// DefaultFilterState returns the state after a reset
func DefaultFilterState() FilterState {
	return FilterState{
		Status: FilterAny,
		Domain: AllDomains,
	}
}

// HasTag reports whether tag is selected
func (f FilterState) HasTag(tag string) bool {
	_, found := slices.BinarySearch(f.SelectedTags, tag)
	return found
}

// WithTag returns a copy of f with tag selected
func (f FilterState) WithTag(tag string) FilterState {
	if f.HasTag(tag) {
		return f
	}
	tags := append(slices.Clone(f.SelectedTags), tag)
	sort.Strings(tags)
	f.SelectedTags = tags
	return f
}

// WithoutTag returns a copy of f with tag deselected
func (f FilterState) WithoutTag(tag string) FilterState {
	f.SelectedTags = slices.DeleteFunc(slices.Clone(f.SelectedTags), func(t string) bool {
		return t == tag
	})
	return f
}

// ToggleTag returns a copy of f with tag flipped
func (f FilterState) ToggleTag(tag string) FilterState {
	if f.HasTag(tag) {
		return f.WithoutTag(tag)
	}
	return f.WithTag(tag)
}

// IncludeItem reports whether item passes all four predicates of f
func IncludeItem(item Item, f FilterState) bool {
	return MatchTags(item, f.SelectedTags) &&
		MatchText(item, f.Query) &&
		MatchStatus(item, f.Status) &&
		MatchDomain(item, f.Domain)
}

// MatchTags requires every selected tag to be present on the item
func MatchTags(item Item, selected []string) bool {
	for _, tag := range selected {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}

// MatchText is a case-insensitive title substring match.
// Queries shorter than MinQueryLength match everything.
func MatchText(item Item, query string) bool {
	if len([]rune(query)) < MinQueryLength {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), strings.ToLower(query))
}

// MatchStatus applies the status category
func MatchStatus(item Item, status StatusFilter) bool {
	switch status {
	case FilterActive:
		return !item.Completed() && !item.Abandoned()
	case FilterCompleted:
		return item.Completed()
	case FilterAbandoned:
		return item.Abandoned()
	default:
		return true
	}
}

// MatchDomain compares the item link host to domain. Links without a host never match.
func MatchDomain(item Item, domain string) bool {
	if domain == "" || domain == AllDomains {
		return true
	}
	host, err := item.Host()
	if err != nil {
		return false
	}
	return host == domain
}

// Filter returns the items included by f, preserving order
func Filter(items []Item, f FilterState) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if IncludeItem(item, f) {
			out = append(out, item)
		}
	}
	return out
}

// TagCounts tallies tags across items, sorted by tag name
func TagCounts(items []Item) []TagCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, tag := range item.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tag < out[j].Tag
	})
	return out
}
