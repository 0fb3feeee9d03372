package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTagPicker(t *testing.T) *TagPickerModel {
	t.Helper()
	m := NewTagPickerModel()
	m.SetGallery(testGallery(t))
	m.Refresh()
	return m
}

func matchTags(m *TagPickerModel) []string {
	var tags []string
	for _, match := range m.Matches() {
		tags = append(tags, match.Tag)
	}
	return tags
}

func TestTagPicker_ListsAllTags(t *testing.T) {
	m := newTestTagPicker(t)

	assert.Equal(t, []string{"puzzle", "rpg", "short"}, matchTags(m))
	assert.Contains(t, m.View(), "[ ] rpg (2)")
	assert.Contains(t, m.View(), "No tags selected")
}

func TestTagPicker_Toggle(t *testing.T) {
	m := newTestTagPicker(t)
	g := m.Gallery()

	m.Update(keyPress("j"))
	m.Update(keyPress("enter"))
	assert.Equal(t, []string{"rpg"}, g.Filter().SelectedTags)
	assert.Equal(t, []string{"Alpha", "Beta"}, titlesOf(g.Filtered()))

	m.Update(keyPress("j"))
	m.Update(keyPress(" "))
	assert.Equal(t, []string{"rpg", "short"}, g.Filter().SelectedTags)
	assert.Equal(t, []string{"Alpha"}, titlesOf(g.Filtered()))
	assert.Contains(t, m.View(), "[x] short (1)")

	m.Update(keyPress(" "))
	assert.Equal(t, []string{"rpg"}, g.Filter().SelectedTags)
}

func TestTagPicker_Filter(t *testing.T) {
	m := newTestTagPicker(t)

	m.Update(keyPress("/"))
	typeText(m, "rp")
	assert.Equal(t, []string{"rpg"}, matchTags(m))

	m.Update(keyPress("enter"))
	m.Update(keyPress("enter"))
	assert.Equal(t, []string{"rpg"}, m.Gallery().Filter().SelectedTags)
}

func TestTagPicker_RemoveChip(t *testing.T) {
	m := newTestTagPicker(t)
	g := m.Gallery()
	g.ToggleTag("rpg")
	g.ToggleTag("short")

	m.Update(keyPress("tab"))
	require.True(t, m.chipFocus)

	m.Update(keyPress("l"))
	m.Update(keyPress("d"))
	assert.Equal(t, []string{"rpg"}, g.Filter().SelectedTags)

	m.Update(keyPress("backspace"))
	assert.Empty(t, g.Filter().SelectedTags)
	assert.False(t, m.chipFocus, "focus leaves the empty chip row")
}

func TestTagPicker_ChipsNeedSelection(t *testing.T) {
	m := newTestTagPicker(t)

	m.Update(keyPress("tab"))
	assert.False(t, m.chipFocus)
}

func TestTagPicker_Back(t *testing.T) {
	m := newTestTagPicker(t)

	_, cmd := m.Update(keyPress("esc"))
	assert.Equal(t, SwitchToGalleryMsg{}, runCmd(cmd))
}
