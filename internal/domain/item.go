package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ErrNoHost is returned when an item link has no usable hostname
var ErrNoHost = errors.New("link has no host")

// Status is the publication state of an item
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
	StatusOnHold    Status = "onhold" // aka hiatus
	StatusUnknown   Status = "unknown"
)

// ParseStatus maps a catalog value to a Status, defaulting to StatusUnknown
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive
	case StatusCompleted:
		return StatusCompleted
	case StatusAbandoned:
		return StatusAbandoned
	case StatusOnHold:
		return StatusOnHold
	default:
		return StatusUnknown
	}
}

// epoch is the date used for missing or unparseable dates
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a catalog date. Empty or malformed input yields 1970-01-01.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return epoch
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return epoch
}

// Item is one card of the gallery
type Item struct {
	ID          string
	Title       string
	URL         string
	Description string
	Developer   string
	Published   string // raw catalog value, see ParseDate
	Updated     string
	Status      Status
	Tags        []string
	Images      []string
}

// Completed reports whether the item carries the completed flag
func (i Item) Completed() bool {
	return i.Status == StatusCompleted
}

// Abandoned reports whether the item carries the abandoned flag
func (i Item) Abandoned() bool {
	return i.Status == StatusAbandoned
}

// PublishedAt returns the parsed published date
func (i Item) PublishedAt() time.Time {
	return ParseDate(i.Published)
}

// UpdatedAt returns the parsed last-updated date
func (i Item) UpdatedAt() time.Time {
	return ParseDate(i.Updated)
}

// HasTag reports whether tag is in the item's tag set
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Host returns the lowercased hostname of the item link
func (i Item) Host() (string, error) {
	u, err := url.Parse(strings.TrimSpace(i.URL))
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", i.URL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("parse link %q: %w", i.URL, ErrNoHost)
	}
	return host, nil
}

// Domains returns the distinct link hosts of items in first-seen order.
// Items whose link has no host are returned separately so callers can report them.
func Domains(items []Item) (domains []string, invalid []Item) {
	seen := make(map[string]bool)
	for _, item := range items {
		host, err := item.Host()
		if err != nil {
			invalid = append(invalid, item)
			continue
		}
		if !seen[host] {
			seen[host] = true
			domains = append(domains, host)
		}
	}
	return domains, invalid
}

// TagCount is a tag and how many items carry it
type TagCount struct {
	Tag   string
	Count int
}
