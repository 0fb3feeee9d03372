package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/adapters/tui/styles"
	"vitrine/internal/application/commands"
)

// TagPickerKeyMap defines key bindings for the tag picker
type TagPickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Filter    key.Binding
	Chips     key.Binding
	ChipLeft  key.Binding
	ChipRight key.Binding
	Remove    key.Binding
	Back      key.Binding
}

var TagPickerKeys = TagPickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "toggle"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Chips: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "selected tags"),
	),
	ChipLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous chip"),
	),
	ChipRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next chip"),
	),
	Remove: key.NewBinding(
		key.WithKeys("enter", " ", "backspace", "d"),
		key.WithHelp("enter/d", "remove"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "t", "q"),
		key.WithHelp("esc", "back"),
	),
}

// TagPickerModel lists every tag with its count and toggles the tag filter
type TagPickerModel struct {
	ViewState
	filter  textinput.Model
	matches []commands.TagMatch
	cursor  int

	chipFocus  bool
	chipCursor int
}

// NewTagPickerModel creates a new tag picker
func NewTagPickerModel() *TagPickerModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter tags"
	ti.CharLimit = 60
	ti.Width = 30

	return &TagPickerModel{filter: ti}
}

// Refresh recomputes the tag list from the gallery and the filter input
func (m *TagPickerModel) Refresh() {
	if m.gallery == nil {
		m.matches = nil
		return
	}
	m.matches = commands.RankTags(m.gallery.TagCounts(), m.filter.Value())
	m.cursor = max(0, min(m.cursor, len(m.matches)-1))
	m.clampChip()
}

// Matches returns the tags currently listed
func (m *TagPickerModel) Matches() []commands.TagMatch {
	return m.matches
}

// Init initializes the tag picker
func (m *TagPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tag picker
func (m *TagPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.gallery == nil {
			return m, nil
		}
		switch {
		case m.filter.Focused():
			return m, m.handleFilterKey(msg)
		case m.chipFocus:
			return m, m.handleChipKey(msg)
		default:
			return m, m.handleListKey(msg)
		}
	}

	if m.filter.Focused() {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *TagPickerModel) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filter.Blur()
		return nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.Refresh()
	}
	return cmd
}

func (m *TagPickerModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, TagPickerKeys.Back):
		return switchTo(SwitchToGalleryMsg{})
	case key.Matches(msg, TagPickerKeys.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, TagPickerKeys.Down):
		m.cursor = max(0, min(m.cursor+1, len(m.matches)-1))
	case key.Matches(msg, TagPickerKeys.Toggle):
		if m.cursor < len(m.matches) {
			m.gallery.ToggleTag(m.matches[m.cursor].Tag)
		}
	case key.Matches(msg, TagPickerKeys.Filter):
		return m.filter.Focus()
	case key.Matches(msg, TagPickerKeys.Chips):
		if len(m.gallery.Filter().SelectedTags) > 0 {
			m.chipFocus = true
			m.clampChip()
		}
	}
	return nil
}

func (m *TagPickerModel) handleChipKey(msg tea.KeyMsg) tea.Cmd {
	selected := m.gallery.Filter().SelectedTags

	switch {
	case key.Matches(msg, TagPickerKeys.Chips), msg.Type == tea.KeyEsc:
		m.chipFocus = false
	case key.Matches(msg, TagPickerKeys.ChipLeft):
		m.chipCursor = max(0, m.chipCursor-1)
	case key.Matches(msg, TagPickerKeys.ChipRight):
		m.chipCursor = max(0, min(m.chipCursor+1, len(selected)-1))
	case key.Matches(msg, TagPickerKeys.Remove):
		if m.chipCursor < len(selected) {
			m.gallery.RemoveTag(selected[m.chipCursor])
		}
		m.clampChip()
	}
	return nil
}

func (m *TagPickerModel) clampChip() {
	if m.gallery == nil {
		return
	}
	n := len(m.gallery.Filter().SelectedTags)
	if n == 0 {
		m.chipFocus = false
		m.chipCursor = 0
		return
	}
	m.chipCursor = max(0, min(m.chipCursor, n-1))
}

func (m *TagPickerModel) listHeight() int {
	const chrome = 12
	if m.Height <= chrome {
		return 0
	}
	return m.Height - chrome
}

// View renders the tag picker
func (m *TagPickerModel) View() string {
	vb := NewViewBuilder().Title("Tags")
	if m.gallery == nil {
		vb.Muted("Loading catalog…")
		return vb.String()
	}

	selected := m.gallery.Filter().SelectedTags
	focused := -1
	if m.chipFocus {
		focused = m.chipCursor
	}
	if chips := RenderChips(selected, focused); chips != "" {
		vb.Line(chips)
	} else {
		vb.Muted("No tags selected")
	}
	vb.Line(m.filter.View())
	vb.BlankLine()

	if len(m.matches) == 0 {
		vb.Muted("No tags")
	} else {
		start, end := 0, len(m.matches)
		if rows := m.listHeight(); rows > 0 && rows < len(m.matches) {
			start = max(0, m.cursor-rows+1)
			end = start + rows
		}
		for i := start; i < end; i++ {
			vb.Line(m.renderTag(i))
		}
	}
	vb.BlankLine()

	if m.chipFocus {
		vb.Help(TagPickerKeys.ChipLeft, TagPickerKeys.ChipRight, TagPickerKeys.Remove, TagPickerKeys.Chips)
	} else {
		vb.Help(TagPickerKeys.Up, TagPickerKeys.Down, TagPickerKeys.Toggle, TagPickerKeys.Filter,
			TagPickerKeys.Chips, TagPickerKeys.Back)
	}
	return vb.String()
}

func (m *TagPickerModel) renderTag(i int) string {
	match := m.matches[i]
	mark := "[ ]"
	if m.gallery.Filter().HasTag(match.Tag) {
		mark = "[x]"
	}
	text := fmt.Sprintf("%s %s (%d)", mark, match.Tag, match.Count)
	if i == m.cursor && !m.chipFocus {
		return styles.CardSelected.Render(text)
	}
	return styles.Card.Render(text)
}
