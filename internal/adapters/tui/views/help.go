package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToGalleryMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Vitrine Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Filterable gallery of catalog cards"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Gallery"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / wheel", "Move up/down"))
	b.WriteString(helpLine("n / p / g / G", "Next, previous, first, last page"))
	b.WriteString(helpLine("+ / -", "Items per page (10, 20, 50, 100)"))
	b.WriteString(helpLine("Enter", "Show images"))
	b.WriteString(helpLine("i", "Details"))
	b.WriteString(helpLine("w", "Open link in browser"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Filters"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Search titles (3+ characters)"))
	b.WriteString(helpLine("s", "Cycle status: any, active, completed, abandoned"))
	b.WriteString(helpLine("o", "Cycle sort order"))
	b.WriteString(helpLine("d", "Cycle link domain"))
	b.WriteString(helpLine("t", "Pick tags (all must match)"))
	b.WriteString(helpLine("x", "Reset filters"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Images"))
	b.WriteString("\n")
	b.WriteString(helpLine("→ / space / click", "Next image"))
	b.WriteString(helpLine("← / right click", "Previous image"))
	b.WriteString(helpLine("wheel", "Next/previous after scrolling stops"))
	b.WriteString(helpLine("r", "Random image"))
	b.WriteString(helpLine("y", "Copy image URL"))
	b.WriteString(helpLine("esc / backdrop click", "Close"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("e", "Edit catalog and reload"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 24)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
