package views

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"vitrine/internal/application"
	"vitrine/internal/domain"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) OpenURL(link string) error {
	f.opened = append(f.opened, link)
	return f.err
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m tea.Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "a", Title: "Alpha", URL: "https://one.example/a", Status: domain.StatusActive,
			Tags: []string{"rpg", "short"}, Images: []string{"a1.png", "a2.png", "a3.png"},
			Developer: "Studio A", Description: "A **bold** start."},
		{ID: "b", Title: "Beta", URL: "https://two.example/b", Status: domain.StatusCompleted,
			Tags: []string{"rpg"}, Images: []string{"b1.png"}},
		{ID: "c", Title: "Gamma", URL: "https://one.example/c", Status: domain.StatusAbandoned,
			Tags: []string{"puzzle"}},
	}
}

func testGallery(t *testing.T) *application.Gallery {
	t.Helper()
	g := application.NewGallery(testItems(), application.GalleryOptions{
		ItemsPerPage: 2,
		Rand:         rand.New(rand.NewPCG(1, 2)),
	})
	require.NotNil(t, g)
	return g
}

func titlesOf(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}
