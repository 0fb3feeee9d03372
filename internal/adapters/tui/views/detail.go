package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Images key.Binding
	Browse key.Binding
	Back   key.Binding
}

var DetailKeys = DetailKeyMap{
	Images: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "images"),
	),
	Browse: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "open link"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "i"),
		key.WithHelp("esc", "back"),
	),
}

// DetailModel shows one item's metadata and description as Markdown
type DetailModel struct {
	ViewState
	opener   ports.URLOpener
	item     domain.Item
	viewport viewport.Model

	renderer      *glamour.TermRenderer
	rendererWidth int
}

// NewDetailModel creates a new detail view
func NewDetailModel(opener ports.URLOpener) *DetailModel {
	return &DetailModel{
		opener:   opener,
		viewport: viewport.New(80, 20),
	}
}

// SetItem shows item and scrolls to the top
func (m *DetailModel) SetItem(item domain.Item) {
	m.item = item
	m.ClearMessage()
	m.render()
	m.viewport.GotoTop()
}

// SetSize resizes the viewport and re-renders for the new width
func (m *DetailModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-6, 3)
	if m.item.ID != "" {
		m.render()
	}
}

func (m *DetailModel) getRenderer() (*glamour.TermRenderer, error) {
	wrap := min(max(m.viewport.Width-2, 20), 120)
	if m.renderer == nil || m.rendererWidth != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return nil, err
		}
		m.renderer = r
		m.rendererWidth = wrap
	}
	return m.renderer, nil
}

func (m *DetailModel) render() {
	md := DetailMarkdown(m.item)
	r, err := m.getRenderer()
	if err != nil {
		m.viewport.SetContent(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		m.viewport.SetContent(md)
		return
	}
	m.viewport.SetContent(out)
}

// DetailMarkdown renders the metadata and description of item as Markdown
func DetailMarkdown(item domain.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", item.Title)
	if item.Developer != "" {
		fmt.Fprintf(&b, "- **Developer:** %s\n", item.Developer)
	}
	fmt.Fprintf(&b, "- **Status:** %s\n", item.Status)
	if item.Published != "" {
		fmt.Fprintf(&b, "- **Published:** %s\n", item.Published)
	}
	if item.Updated != "" {
		fmt.Fprintf(&b, "- **Updated:** %s\n", item.Updated)
	}
	if item.URL != "" {
		fmt.Fprintf(&b, "- **Link:** %s\n", item.URL)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "- **Tags:** `%s`\n", strings.Join(item.Tags, "` `"))
	}
	fmt.Fprintf(&b, "- **Images:** %d\n", len(item.Images))

	if desc := strings.TrimSpace(item.Description); desc != "" {
		b.WriteString("\n---\n\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	return b.String()
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case LinkOpenedMsg:
		m.handleLinkOpened(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DetailKeys.Back):
			return m, switchTo(SwitchToGalleryMsg{})
		case key.Matches(msg, DetailKeys.Images):
			return m, switchTo(SwitchToLightboxMsg{Item: m.item})
		case key.Matches(msg, DetailKeys.Browse):
			if m.item.URL == "" {
				m.SetMessage(m.item.Title+" has no link", true)
				return m, nil
			}
			return m, openLinkCmd(m.opener, m.item.URL)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view
func (m *DetailModel) View() string {
	vb := NewViewBuilder()
	vb.Line(m.viewport.View())
	vb.Message(m.Message, m.MessageErr)
	vb.Help(DetailKeys.Images, DetailKeys.Browse, DetailKeys.Back)
	return vb.String()
}
