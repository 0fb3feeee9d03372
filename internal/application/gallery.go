package application

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"vitrine/internal/domain"
)

// PageAction is a manual page navigation
type PageAction int

const (
	PageFirst PageAction = iota
	PagePrevious
	PageNext
	PageLast
)

func (a PageAction) String() string {
	switch a {
	case PageFirst:
		return "first"
	case PagePrevious:
		return "previous"
	case PageNext:
		return "next"
	case PageLast:
		return "last"
	default:
		return "unknown"
	}
}

// ScrollLock is the page-wide scroll toggle held while the lightbox is open
type ScrollLock struct {
	locked bool
}

// Lock disables page scrolling
func (s *ScrollLock) Lock() { s.locked = true }

// Unlock enables page scrolling
func (s *ScrollLock) Unlock() { s.locked = false }

// Locked reports whether page scrolling is disabled
func (s *ScrollLock) Locked() bool { return s.locked }

// GalleryOptions configures a Gallery
type GalleryOptions struct {
	ItemsPerPage int
	Locale       language.Tag
	Rand         *rand.Rand
	Logger       *logrus.Entry
}

// View is the render snapshot of the gallery
type View struct {
	Items        []domain.Item // current page window
	Page         int
	PageCount    int // at least 1
	Total        int // filtered count
	Filter       domain.FilterState
	Sort         domain.SortOrder
	ItemsPerPage int
}

// Gallery owns the filter, sort and pagination state over a fixed item store.
// Every mutation goes through one of the On* transitions, which recompute the
// filtered list before returning.
type Gallery struct {
	items    []domain.Item
	filter   domain.FilterState
	order    domain.SortOrder
	pager    *domain.Paginator
	filtered []domain.Item

	domains   []string
	tagCounts []domain.TagCount

	lightbox *domain.Lightbox
	scroll   ScrollLock

	locale language.Tag
	rng    *rand.Rand
	log    *logrus.Entry
}

// NewGallery creates a gallery over items with default filters
func NewGallery(items []domain.Item, opts GalleryOptions) *Gallery {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = logrus.NewEntry(l)
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}

	g := &Gallery{
		items:    slices.Clone(items),
		filter:   domain.DefaultFilterState(),
		order:    domain.SortAlphabetical,
		pager:    domain.NewPaginator(opts.ItemsPerPage),
		lightbox: domain.NewLightbox(opts.Rand),
		locale:   opts.Locale,
		rng:      opts.Rand,
		log:      opts.Logger.WithField("component", "gallery"),
	}

	domains, invalid := domain.Domains(g.items)
	for _, item := range invalid {
		g.log.WithField("item", item.ID).Warnf("skipping domain of %q: link %q has no host", item.Title, item.URL)
	}
	g.domains = domains
	g.tagCounts = domain.TagCounts(g.items)

	g.recompute(true)
	return g
}

// OnFilterChanged replaces the filter state, returns to page 1 and re-sorts
func (g *Gallery) OnFilterChanged(f domain.FilterState) {
	g.filter = normalizeFilter(f)
	g.pager.Reset()
	g.log.WithFields(logrus.Fields{
		"query":  g.filter.Query,
		"status": g.filter.Status,
		"domain": g.filter.Domain,
		"tags":   g.filter.SelectedTags,
	}).Debug("filter changed")
	g.recompute(true)
}

// OnSortChanged selects a sort strategy and re-sorts the item store
func (g *Gallery) OnSortChanged(order domain.SortOrder) error {
	if !order.Valid() {
		return &ValidationError{Field: "sort", Message: fmt.Sprintf("unknown sort order: %s", order), Err: ErrInvalidSort}
	}
	g.order = order
	g.log.WithField("sort", order).Debug("sort changed")
	g.recompute(true)
	return nil
}

// OnPageChanged applies a page navigation. It is a no-op at the boundary.
// Reports whether the page moved.
func (g *Gallery) OnPageChanged(action PageAction) bool {
	var moved bool
	switch action {
	case PageFirst:
		moved = g.pager.First()
	case PagePrevious:
		moved = g.pager.Previous()
	case PageNext:
		moved = g.pager.Next()
	case PageLast:
		moved = g.pager.Last()
	}
	if moved {
		g.log.WithFields(logrus.Fields{"action": action, "page": g.pager.CurrentPage()}).Debug("page changed")
	}
	return moved
}

// OnLightboxNav forwards a navigation intent to the open lightbox.
// Closing releases the scroll lock.
func (g *Gallery) OnLightboxNav(nav domain.LightboxNav) {
	if !g.lightbox.IsOpen() {
		return
	}
	g.lightbox.Apply(nav)
	if nav == domain.NavClose {
		g.scroll.Unlock()
	}
}

// OpenLightbox shows the images of item and takes the scroll lock
func (g *Gallery) OpenLightbox(item domain.Item) {
	g.lightbox.Open(item.Title, item.Images)
	g.scroll.Lock()
	g.log.WithFields(logrus.Fields{"item": item.ID, "images": len(item.Images)}).Debug("lightbox opened")
}

// CloseLightbox closes the lightbox if open
func (g *Gallery) CloseLightbox() {
	g.OnLightboxNav(domain.NavClose)
}

// SetQuery changes the text query
func (g *Gallery) SetQuery(q string) {
	f := g.filter
	f.Query = q
	g.OnFilterChanged(f)
}

// SetStatus changes the status category
func (g *Gallery) SetStatus(s domain.StatusFilter) {
	f := g.filter
	f.Status = s
	g.OnFilterChanged(f)
}

// SetDomain changes the domain filter
func (g *Gallery) SetDomain(d string) {
	f := g.filter
	f.Domain = d
	g.OnFilterChanged(f)
}

// ToggleTag flips tag in the selected set
func (g *Gallery) ToggleTag(tag string) {
	g.OnFilterChanged(g.filter.ToggleTag(tag))
}

// RemoveTag deselects tag
func (g *Gallery) RemoveTag(tag string) {
	g.OnFilterChanged(g.filter.WithoutTag(tag))
}

// SetItemsPerPage changes the page size and returns to page 1 without re-sorting
func (g *Gallery) SetItemsPerPage(n int) error {
	if !g.pager.SetItemsPerPage(n) {
		return &ValidationError{Field: "per-page", Message: fmt.Sprintf("must be at least 1, got: %d", n), Err: ErrInvalidPage}
	}
	g.recompute(false)
	return nil
}

// GoToPage jumps to page, which must be within the current page count
func (g *Gallery) GoToPage(page int) error {
	if page < 1 || page > g.pager.TotalPages() {
		return &ValidationError{
			Field:   "page",
			Message: fmt.Sprintf("must be between 1 and %d, got: %d", g.pager.TotalPages(), page),
			Err:     ErrInvalidPage,
		}
	}
	for g.pager.CurrentPage() < page && g.pager.Next() {
	}
	for g.pager.CurrentPage() > page && g.pager.Previous() {
	}
	return nil
}

// ResetFilters restores every filter, the sort order and the pagination defaults
func (g *Gallery) ResetFilters() {
	g.filter = domain.DefaultFilterState()
	g.order = domain.SortAlphabetical
	g.pager.SetItemsPerPage(domain.DefaultItemsPerPage)
	g.log.Debug("filters reset")
	g.recompute(true)
}

func (g *Gallery) recompute(resort bool) {
	if resort {
		domain.NewSorter(g.order, g.locale, g.rng).Sort(g.items)
	}
	g.filtered = domain.Filter(g.items, g.filter)
	g.pager.SetTotal(len(g.filtered))
}

func normalizeFilter(f domain.FilterState) domain.FilterState {
	if f.Status == "" {
		f.Status = domain.FilterAny
	}
	if f.Domain == "" {
		f.Domain = domain.AllDomains
	}
	tags := slices.Clone(f.SelectedTags)
	sort.Strings(tags)
	f.SelectedTags = slices.Compact(tags)
	return f
}

// View returns the current render snapshot
func (g *Gallery) View() View {
	start, end := g.pager.VisibleRange()
	return View{
		Items:        slices.Clone(g.filtered[start:end]),
		Page:         g.pager.CurrentPage(),
		PageCount:    g.pager.TotalPages(),
		Total:        len(g.filtered),
		Filter:       g.filter,
		Sort:         g.order,
		ItemsPerPage: g.pager.ItemsPerPage(),
	}
}

// Filter returns the current filter state
func (g *Gallery) Filter() domain.FilterState {
	return g.filter
}

// Sort returns the current sort strategy
func (g *Gallery) Sort() domain.SortOrder {
	return g.order
}

// Items returns the item store in its current order
func (g *Gallery) Items() []domain.Item {
	return slices.Clone(g.items)
}

// Filtered returns every item passing the filters, in display order
func (g *Gallery) Filtered() []domain.Item {
	return slices.Clone(g.filtered)
}

// Domains returns the link hosts offered by the domain filter
func (g *Gallery) Domains() []string {
	return slices.Clone(g.domains)
}

// TagCounts returns every tag of the item store with its count
func (g *Gallery) TagCounts() []domain.TagCount {
	return slices.Clone(g.tagCounts)
}

// Item looks up an item by id
func (g *Gallery) Item(id string) (domain.Item, error) {
	for _, item := range g.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, &NotFoundError{ID: id}
}

// Lightbox returns the lightbox state
func (g *Gallery) Lightbox() *domain.Lightbox {
	return g.lightbox
}

// ScrollLocked reports whether page navigation is disabled
func (g *Gallery) ScrollLocked() bool {
	return g.scroll.Locked()
}
