package domain

// DefaultItemsPerPage is the page size after a reset
const DefaultItemsPerPage = 20

// PageSizes are the page sizes offered by the selector
var PageSizes = []int{10, 20, 50, 100}

// Paginator windows a filtered list into 1-based pages
type Paginator struct {
	currentPage  int
	itemsPerPage int
	totalItems   int
}

// NewPaginator creates a paginator on page 1
func NewPaginator(itemsPerPage int) *Paginator {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &Paginator{
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// PageCount returns ceil(n/perPage), 0 for an empty list
func PageCount(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Window returns the [start, end) indices of page within n items
func Window(page, perPage, n int) (start, end int) {
	if page < 1 || perPage <= 0 {
		return 0, 0
	}
	start = min((page-1)*perPage, n)
	end = min(start+perPage, n)
	return start, end
}

// SetTotal records the filtered item count. A current page beyond the new
// page count goes back to page 1 rather than to the last page.
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.totalItems = total
	if p.currentPage > p.TotalPages() {
		p.currentPage = 1
	}
}

// Total returns the filtered item count
func (p *Paginator) Total() int {
	return p.totalItems
}

// ItemsPerPage returns the page size
func (p *Paginator) ItemsPerPage() int {
	return p.itemsPerPage
}

// SetItemsPerPage changes the page size and returns to page 1
func (p *Paginator) SetItemsPerPage(n int) bool {
	if n <= 0 {
		return false
	}
	p.itemsPerPage = n
	p.currentPage = 1
	return true
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// PageCount returns the number of non-empty pages
func (p *Paginator) PageCount() int {
	return PageCount(p.totalItems, p.itemsPerPage)
}

// TotalPages returns the page count for display, at least 1
func (p *Paginator) TotalPages() int {
	return max(p.PageCount(), 1)
}

// VisibleRange returns the start and end indices for the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return Window(p.currentPage, p.itemsPerPage, p.totalItems)
}

// First moves to page 1
func (p *Paginator) First() bool {
	if p.currentPage > 1 {
		p.currentPage = 1
		return true
	}
	return false
}

// Previous moves back one page
func (p *Paginator) Previous() bool {
	if p.currentPage > 1 {
		p.currentPage--
		return true
	}
	return false
}

// Next moves forward one page
func (p *Paginator) Next() bool {
	if p.currentPage < p.PageCount() {
		p.currentPage++
		return true
	}
	return false
}

// Last moves to the final page
func (p *Paginator) Last() bool {
	if p.currentPage < p.PageCount() {
		p.currentPage = p.TotalPages()
		return true
	}
	return false
}

// Reset returns to page 1 without touching the page size
func (p *Paginator) Reset() {
	p.currentPage = 1
}
