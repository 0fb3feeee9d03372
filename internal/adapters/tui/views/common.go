package views

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/application"
	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get sizing, message handling and
// access to the gallery every view renders.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool

	gallery *application.Gallery
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SetGallery replaces the gallery the view renders, e.g. after a reload
func (s *ViewState) SetGallery(g *application.Gallery) {
	s.gallery = g
}

// Gallery returns the gallery the view renders, nil until the catalog is loaded
func (s *ViewState) Gallery() *application.Gallery {
	return s.gallery
}

// View switching messages

type SwitchToGalleryMsg struct{}

type SwitchToLightboxMsg struct {
	Item domain.Item
}

type SwitchToDetailMsg struct {
	Item domain.Item
}

type SwitchToTagsMsg struct{}

type SwitchToHelpMsg struct{}

// EditCatalogMsg asks the app to open the catalog in the editor and reload it
type EditCatalogMsg struct{}

// LinkOpenedMsg reports the outcome of handing a link to the browser
type LinkOpenedMsg struct {
	URL string
	Err error
}

var errNoOpener = errors.New("no browser available")

func openLinkCmd(opener ports.URLOpener, link string) tea.Cmd {
	return func() tea.Msg {
		if opener == nil {
			return LinkOpenedMsg{URL: link, Err: errNoOpener}
		}
		return LinkOpenedMsg{URL: link, Err: opener.OpenURL(link)}
	}
}

func (s *ViewState) handleLinkOpened(msg LinkOpenedMsg) {
	if msg.Err != nil {
		s.SetMessage("Open failed: "+msg.Err.Error(), true)
		return
	}
	s.SetMessage("Opened "+msg.URL, false)
}
