package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightbox_OpenClose(t *testing.T) {
	l := NewLightbox(nil)
	require.False(t, l.IsOpen())

	l.Open("My%20Title", []string{"a.png", "b.png"})
	assert.True(t, l.IsOpen())
	assert.Equal(t, "My Title", l.Title())
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, "a.png", l.Current())
	assert.Equal(t, "1 / 2 ( a.png )", l.Caption())

	l.Close()
	assert.False(t, l.IsOpen())
	assert.Empty(t, l.Title())
	assert.Empty(t, l.Current())
	assert.Empty(t, l.Caption())
}

func TestLightbox_ReopenResetsIndex(t *testing.T) {
	l := NewLightbox(nil)
	l.Open("t", []string{"a", "b", "c"})
	l.Next()
	l.Next()

	l.Open("t", []string{"x", "y"})
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, "x", l.Current())
}

func TestLightbox_Wraparound(t *testing.T) {
	l := NewLightbox(nil)
	l.Open("t", []string{"a.png", "b.png"})

	l.Previous()
	assert.Equal(t, 1, l.Index())
	assert.Equal(t, "2 / 2 ( b.png )", l.Caption())

	l.Next()
	assert.Equal(t, 0, l.Index(), "next at the last index wraps to 0")
}

func TestLightbox_EmptyListNavigation(t *testing.T) {
	l := NewLightbox(nil)
	l.Open("empty", nil)

	assert.NotPanics(t, func() {
		l.Next()
		l.Previous()
		l.Random()
	})
	assert.Equal(t, 0, l.Index())
	assert.Empty(t, l.Current())
	assert.Empty(t, l.Caption())
}

func TestLightbox_RandomStaysInRange(t *testing.T) {
	l := NewLightbox(rand.New(rand.NewPCG(3, 4)))
	l.Open("t", []string{"a", "b", "c", "d"})

	seen := map[int]bool{}
	for range 100 {
		l.Random()
		require.GreaterOrEqual(t, l.Index(), 0)
		require.Less(t, l.Index(), 4)
		seen[l.Index()] = true
	}
	assert.Len(t, seen, 4)
}

func TestLightbox_ZeroValueRandom(t *testing.T) {
	var l Lightbox
	l.Open("t", []string{"a", "b"})

	assert.NotPanics(t, l.Random)
}

func TestLightbox_Apply(t *testing.T) {
	l := NewLightbox(nil)
	l.Open("t", []string{"a", "b", "c"})

	l.Apply(NavNext)
	assert.Equal(t, 1, l.Index())
	l.Apply(NavPrevious)
	l.Apply(NavPrevious)
	assert.Equal(t, 2, l.Index())
	l.Apply(NavClose)
	assert.False(t, l.IsOpen())
}

func TestLightbox_UndecodableTitleKeptAsIs(t *testing.T) {
	l := NewLightbox(nil)
	l.Open("100%", []string{"a"})

	assert.Equal(t, "100%", l.Title())
}

func TestLightbox_TitleDecoding(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"a%2Fb%20c", "a%2Fb c"},
		{"Q%26A%3F", "Q%26A%3F"},
		{"caf%C3%A9", "café"},
		{"100%zz", "100%zz"},
		{"bad%FF", "bad%FF"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			l := NewLightbox(nil)
			l.Open(tt.title, nil)
			assert.Equal(t, tt.want, l.Title())
		})
	}
}
