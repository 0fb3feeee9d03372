package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"vitrine/internal/domain"
)

func TestDetailMarkdown(t *testing.T) {
	md := DetailMarkdown(testItems()[0])

	assert.Contains(t, md, "# Alpha\n")
	assert.Contains(t, md, "- **Developer:** Studio A\n")
	assert.Contains(t, md, "- **Status:** active\n")
	assert.Contains(t, md, "- **Tags:** `rpg` `short`\n")
	assert.Contains(t, md, "- **Images:** 3\n")
	assert.Contains(t, md, "A **bold** start.")
	assert.NotContains(t, md, "Published")
}

func TestDetailMarkdown_NoDescription(t *testing.T) {
	md := DetailMarkdown(domain.Item{Title: "Bare", Status: domain.StatusUnknown})

	assert.NotContains(t, md, "---")
	assert.Contains(t, md, "- **Images:** 0\n")
}

func TestDetailModel(t *testing.T) {
	opener := &fakeOpener{}
	m := NewDetailModel(opener)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m.SetItem(testItems()[0])

	out := m.View()
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Studio A")

	_, cmd := m.Update(keyPress("enter"))
	assert.Equal(t, SwitchToLightboxMsg{Item: testItems()[0]}, runCmd(cmd))

	_, cmd = m.Update(keyPress("w"))
	m.Update(runCmd(cmd))
	assert.Equal(t, []string{"https://one.example/a"}, opener.opened)

	_, cmd = m.Update(keyPress("esc"))
	assert.Equal(t, SwitchToGalleryMsg{}, runCmd(cmd))
}

func TestDetailModel_NoLink(t *testing.T) {
	m := NewDetailModel(&fakeOpener{})
	m.SetItem(domain.Item{ID: "x", Title: "Offline"})

	_, cmd := m.Update(keyPress("w"))
	assert.Nil(t, cmd)
	assert.True(t, m.MessageErr)
}
