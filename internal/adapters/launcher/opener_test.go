package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		link     string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "linux https",
			goos:     "linux",
			link:     "https://example.com/threads/game.1/",
			wantArgs: []string{"xdg-open", "https://example.com/threads/game.1/"},
		},
		{
			name:     "darwin trims whitespace",
			goos:     "darwin",
			link:     "  https://example.com/a  ",
			wantArgs: []string{"open", "https://example.com/a"},
		},
		{
			name:     "windows",
			goos:     "windows",
			link:     "http://example.com/",
			wantArgs: []string{"cmd", "/c", "start", "", "http://example.com/"},
		},
		{
			name:     "file url",
			goos:     "linux",
			link:     "file:///tmp/cover.png",
			wantArgs: []string{"xdg-open", "file:///tmp/cover.png"},
		},
		{name: "relative link", goos: "linux", link: "images/cover.png", wantErr: true},
		{name: "javascript scheme", goos: "linux", link: "javascript:alert(1)", wantErr: true},
		{name: "missing host", goos: "linux", link: "https:///path", wantErr: true},
		{name: "unknown platform", goos: "plan9", link: "https://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.BuildCommand(tt.link)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestEditorCommand(t *testing.T) {
	t.Run("uses $EDITOR with arguments", func(t *testing.T) {
		t.Setenv("EDITOR", "code --wait")
		t.Setenv("VISUAL", "")

		cmd, err := NewEditor().Command("/tmp/catalog.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"code", "--wait", "/tmp/catalog.json"}, cmd.Args)
	})

	t.Run("falls back to $VISUAL", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "myeditor")

		cmd, err := NewEditor().Command("/tmp/catalog.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"myeditor", "/tmp/catalog.json"}, cmd.Args)
	})
}
