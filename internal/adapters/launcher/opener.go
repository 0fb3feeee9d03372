package launcher

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener implements ports.URLOpener using the platform's URL handler
type Opener struct {
	goos string
}

// NewOpener creates a new opener for the running platform
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// OpenURL opens link in the default browser without waiting for it
func (o *Opener) OpenURL(link string) error {
	cmd, err := o.BuildCommand(link)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", link, err)
	}
	// reap the child in the background
	go cmd.Wait()
	return nil
}

// BuildCommand returns the command that opens link on this platform.
// Only absolute http, https and file URLs are accepted.
func (o *Opener) BuildCommand(link string) (*exec.Cmd, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return nil, fmt.Errorf("invalid link %q: %w", link, err)
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("link has no host: %s", link)
		}
	case "file":
	default:
		return nil, fmt.Errorf("unsupported link scheme %q: %s", u.Scheme, link)
	}

	uri := u.String()
	switch o.goos {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
