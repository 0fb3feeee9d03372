package ports

import "os/exec"

// URLOpener opens links in the system browser
type URLOpener interface {
	// OpenURL hands url to the platform opener and returns without waiting
	OpenURL(url string) error
}

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
