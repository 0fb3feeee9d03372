package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/adapters/tui/styles"
	"vitrine/internal/application"
	"vitrine/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.InputLabel.Render(label+":"),
		value,
	)
}

// RenderFilters renders the current filter and sort settings on one line
func RenderFilters(v application.View) string {
	return strings.Join([]string{
		RenderLabelValue("Status", string(v.Filter.Status)),
		RenderLabelValue("Sort", string(v.Sort)),
		RenderLabelValue("Domain", v.Filter.Domain),
		RenderLabelValue("Per page", fmt.Sprint(v.ItemsPerPage)),
	}, "   ")
}

// RenderChips renders the selected tags as chips, highlighting the one at
// focused (-1 for none)
func RenderChips(tags []string, focused int) string {
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, tag := range tags {
		style := styles.Chip
		if i == focused {
			style = styles.ChipFocused
		}
		chips[i] = style.Render(tag + " ×")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// RenderPageIndicator renders "Page X / Y" with the filtered count
func RenderPageIndicator(v application.View) string {
	noun := "items"
	if v.Total == 1 {
		noun = "item"
	}
	return styles.StatusBar.Render(fmt.Sprintf("Page %d / %d", v.Page, v.PageCount)) +
		" " + styles.StatusText.Render(fmt.Sprintf("%d %s", v.Total, noun))
}

// RenderCard renders one gallery row, truncated to width when width > 0
func RenderCard(item domain.Item, selected bool, width int) string {
	host, err := item.Host()
	if err != nil {
		host = "-"
	}

	var line string
	if selected {
		line = styles.CardSelected.Render(fmt.Sprintf("▸ %s  [%s]  %s", item.Title, item.Status, host))
	} else {
		line = fmt.Sprintf("%s  %s  %s", item.Title, styles.StatusBadge(item.Status), styles.CardHost.Render(host))
		if len(item.Tags) > 0 {
			line += "  " + styles.CardTag.Render("#"+strings.Join(item.Tags, " #"))
		}
		line = styles.Card.Render(line)
	}

	if width > 4 {
		line = lipgloss.NewStyle().MaxWidth(width - 4).Render(line)
	}
	return line
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
