package views

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/application"
	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// GalleryKeyMap defines key bindings for the gallery view
type GalleryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Open      key.Binding
	Detail    key.Binding
	Search    key.Binding
	Status    key.Binding
	Sort      key.Binding
	Domain    key.Binding
	PerPageUp key.Binding
	PerPageDn key.Binding
	Tags      key.Binding
	Reset     key.Binding
	Browse    key.Binding
	Edit      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var GalleryKeys = GalleryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "prev page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "images"),
	),
	Detail: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "details"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	Sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sort"),
	),
	Domain: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "domain"),
	),
	PerPageUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "per page"),
	),
	PerPageDn: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer per page"),
	),
	Tags: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tags"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset"),
	),
	Browse: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "open link"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit catalog"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// GalleryModel is the paged card list with its filter controls
type GalleryModel struct {
	ViewState
	opener ports.URLOpener
	query  textinput.Model
	cursor int
}

// NewGalleryModel creates a new gallery model
func NewGalleryModel(opener ports.URLOpener) *GalleryModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = fmt.Sprintf("title (%d+ characters)", domain.MinQueryLength)
	ti.CharLimit = 120
	ti.Width = 40

	return &GalleryModel{
		opener: opener,
		query:  ti,
	}
}

// SetGallery swaps the gallery, keeping the query input in sync with it
func (m *GalleryModel) SetGallery(g *application.Gallery) {
	m.ViewState.SetGallery(g)
	m.cursor = 0
	if g != nil {
		m.query.SetValue(g.Filter().Query)
	}
}

// Searching reports whether the query input has focus
func (m *GalleryModel) Searching() bool {
	return m.query.Focused()
}

// Cursor returns the selected row of the current page
func (m *GalleryModel) Cursor() int {
	return m.cursor
}

// Selected returns the item under the cursor
func (m *GalleryModel) Selected() (domain.Item, bool) {
	if m.gallery == nil {
		return domain.Item{}, false
	}
	items := m.gallery.View().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return domain.Item{}, false
	}
	return items[m.cursor], true
}

// Init initializes the gallery
func (m *GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gallery
func (m *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case LinkOpenedMsg:
		m.handleLinkOpened(msg)
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.query.Focused() {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.query.Focused() {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *GalleryModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.query.Blur()
		return nil
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if value := m.query.Value(); value != before && m.gallery != nil {
		m.gallery.SetQuery(value)
		m.cursor = 0
	}
	return cmd
}

func (m *GalleryModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, GalleryKeys.Quit):
		return tea.Quit
	case key.Matches(msg, GalleryKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}

	g := m.gallery
	if g == nil {
		return nil
	}
	m.ClearMessage()

	switch {
	case key.Matches(msg, GalleryKeys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, GalleryKeys.Down):
		m.moveCursor(1)
	case key.Matches(msg, GalleryKeys.NextPage):
		m.changePage(application.PageNext)
	case key.Matches(msg, GalleryKeys.PrevPage):
		m.changePage(application.PagePrevious)
	case key.Matches(msg, GalleryKeys.FirstPage):
		m.changePage(application.PageFirst)
	case key.Matches(msg, GalleryKeys.LastPage):
		m.changePage(application.PageLast)

	case key.Matches(msg, GalleryKeys.Search):
		return m.query.Focus()
	case key.Matches(msg, GalleryKeys.Status):
		g.SetStatus(nextOf(domain.StatusFilters, g.Filter().Status))
		m.cursor = 0
	case key.Matches(msg, GalleryKeys.Sort):
		if err := g.OnSortChanged(nextOf(domain.SortOrders, g.Sort())); err != nil {
			m.SetMessage(err.Error(), true)
		}
	case key.Matches(msg, GalleryKeys.Domain):
		options := append([]string{domain.AllDomains}, g.Domains()...)
		g.SetDomain(nextOf(options, g.Filter().Domain))
		m.cursor = 0
	case key.Matches(msg, GalleryKeys.PerPageUp):
		m.stepPerPage(1)
	case key.Matches(msg, GalleryKeys.PerPageDn):
		m.stepPerPage(-1)
	case key.Matches(msg, GalleryKeys.Reset):
		g.ResetFilters()
		m.query.SetValue("")
		m.cursor = 0
		m.SetMessage("Filters reset", false)

	case key.Matches(msg, GalleryKeys.Tags):
		return switchTo(SwitchToTagsMsg{})
	case key.Matches(msg, GalleryKeys.Edit):
		return switchTo(EditCatalogMsg{})
	case key.Matches(msg, GalleryKeys.Open):
		if item, ok := m.Selected(); ok {
			return switchTo(SwitchToLightboxMsg{Item: item})
		}
	case key.Matches(msg, GalleryKeys.Detail):
		if item, ok := m.Selected(); ok {
			return switchTo(SwitchToDetailMsg{Item: item})
		}
	case key.Matches(msg, GalleryKeys.Browse):
		if item, ok := m.Selected(); ok {
			if item.URL == "" {
				m.SetMessage(item.Title+" has no link", true)
				return nil
			}
			return openLinkCmd(m.opener, item.URL)
		}
	}
	return nil
}

func (m *GalleryModel) moveCursor(delta int) {
	if m.gallery == nil {
		return
	}
	n := len(m.gallery.View().Items)
	m.cursor = max(0, min(m.cursor+delta, n-1))
}

func (m *GalleryModel) changePage(action application.PageAction) {
	if m.gallery.OnPageChanged(action) {
		m.cursor = 0
	}
}

// stepPerPage moves to the next larger or smaller standard page size
func (m *GalleryModel) stepPerPage(dir int) {
	current := m.gallery.View().ItemsPerPage
	next := current
	if dir > 0 {
		for _, size := range domain.PageSizes {
			if size > current {
				next = size
				break
			}
		}
	} else {
		for i := len(domain.PageSizes) - 1; i >= 0; i-- {
			if domain.PageSizes[i] < current {
				next = domain.PageSizes[i]
				break
			}
		}
	}
	if next == current {
		return
	}
	if err := m.gallery.SetItemsPerPage(next); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.cursor = 0
}

// nextOf returns the value after current in values, wrapping around
func nextOf[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// listHeight is how many card rows fit under the header and above the footer
func (m *GalleryModel) listHeight() int {
	const chrome = 14
	if m.Height <= chrome {
		return 0
	}
	return m.Height - chrome
}

// View renders the gallery
func (m *GalleryModel) View() string {
	vb := NewViewBuilder().Title("Vitrine")
	if m.gallery == nil {
		vb.Muted("Loading catalog…")
		vb.Message(m.Message, m.MessageErr)
		vb.Help(GalleryKeys.Help, GalleryKeys.Quit)
		return vb.String()
	}

	v := m.gallery.View()

	if m.query.Focused() || m.query.Value() != "" {
		vb.Line(m.query.View())
	}
	vb.Line(RenderFilters(v))
	if chips := RenderChips(v.Filter.SelectedTags, -1); chips != "" {
		vb.Line(chips)
	}
	vb.BlankLine()

	if len(v.Items) == 0 {
		vb.Muted("No items match the current filters")
	} else {
		start, end := 0, len(v.Items)
		if rows := m.listHeight(); rows > 0 && rows < len(v.Items) {
			start = max(0, m.cursor-rows+1)
			end = start + rows
		}
		for i := start; i < end; i++ {
			vb.Line(RenderCard(v.Items[i], i == m.cursor, m.Width))
		}
	}

	vb.BlankLine()
	vb.Line(RenderPageIndicator(v))
	vb.BlankLine()
	vb.Message(m.Message, m.MessageErr)
	vb.Help(
		GalleryKeys.Search, GalleryKeys.Status, GalleryKeys.Sort, GalleryKeys.Domain,
		GalleryKeys.Tags, GalleryKeys.NextPage, GalleryKeys.Open, GalleryKeys.Detail,
		GalleryKeys.Help, GalleryKeys.Quit,
	)
	return vb.String()
}
