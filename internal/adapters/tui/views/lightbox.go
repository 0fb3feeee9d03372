package views

import (
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/adapters/tui/styles"
	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// WheelDebounce is the quiet period after the last wheel event before the
// lightbox acts on it
const WheelDebounce = 150 * time.Millisecond

// LightboxKeyMap defines key bindings for the lightbox
type LightboxKeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Random   key.Binding
	Close    key.Binding
	Copy     key.Binding
	Browse   key.Binding
}

var LightboxKeys = LightboxKeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", " "),
		key.WithHelp("→/space", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Browse: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "open"),
	),
}

// lightboxWheelMsg fires WheelDebounce after a wheel event. Only the tick
// carrying the latest sequence number navigates.
type lightboxWheelMsg struct {
	seq int
}

type clipboardMsg struct {
	text string
	err  error
}

// LightboxModel is the modal image viewer over one item
type LightboxModel struct {
	ViewState
	opener ports.URLOpener
	copy   func(string) error

	wheelSeq int
	wheelNav domain.LightboxNav
}

// NewLightboxModel creates a lightbox that copies to the system clipboard
func NewLightboxModel(opener ports.URLOpener) *LightboxModel {
	return &LightboxModel{
		opener: opener,
		copy:   clipboard.WriteAll,
	}
}

// Open shows the images of item
func (m *LightboxModel) Open(item domain.Item) {
	m.ClearMessage()
	m.wheelSeq++ // drop wheel ticks from a previous item
	m.gallery.OpenLightbox(item)
}

// Init initializes the lightbox
func (m *LightboxModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the lightbox
func (m *LightboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.gallery == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case lightboxWheelMsg:
		if msg.seq != m.wheelSeq {
			return m, nil
		}
		return m, m.navigate(m.wheelNav)

	case clipboardMsg:
		if msg.err != nil {
			m.SetMessage("Copy failed: "+msg.err.Error(), true)
		} else {
			m.SetMessage("Copied "+msg.text, false)
		}
		return m, nil

	case LinkOpenedMsg:
		m.handleLinkOpened(msg)
		return m, nil
	}

	return m, nil
}

func (m *LightboxModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	lb := m.gallery.Lightbox()

	switch {
	case key.Matches(msg, LightboxKeys.Next):
		return m.navigate(domain.NavNext)
	case key.Matches(msg, LightboxKeys.Previous):
		return m.navigate(domain.NavPrevious)
	case key.Matches(msg, LightboxKeys.Random):
		return m.navigate(domain.NavRandom)
	case key.Matches(msg, LightboxKeys.Close):
		return m.navigate(domain.NavClose)
	case key.Matches(msg, LightboxKeys.Copy):
		if current := lb.Current(); current != "" {
			return m.copyCmd(current)
		}
	case key.Matches(msg, LightboxKeys.Browse):
		if current := lb.Current(); current != "" {
			return openLinkCmd(m.opener, current)
		}
	}
	return nil
}

func (m *LightboxModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.debounceWheel(domain.NavPrevious)
	case tea.MouseButtonWheelDown:
		return m.debounceWheel(domain.NavNext)
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return nil
	}

	x, y, w, h := m.imageBounds()
	if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
		return m.navigate(domain.NavClose)
	}
	if msg.Button == tea.MouseButtonRight {
		return m.navigate(domain.NavPrevious)
	}
	return m.navigate(domain.NavNext)
}

// debounceWheel records the latest wheel intent and schedules its tick
func (m *LightboxModel) debounceWheel(nav domain.LightboxNav) tea.Cmd {
	m.wheelSeq++
	m.wheelNav = nav
	seq := m.wheelSeq
	return tea.Tick(WheelDebounce, func(time.Time) tea.Msg {
		return lightboxWheelMsg{seq: seq}
	})
}

func (m *LightboxModel) navigate(nav domain.LightboxNav) tea.Cmd {
	m.gallery.OnLightboxNav(nav)
	if m.gallery.Lightbox().IsOpen() {
		return nil
	}
	m.wheelSeq++
	return func() tea.Msg {
		return SwitchToGalleryMsg{}
	}
}

func (m *LightboxModel) copyCmd(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}

func (m *LightboxModel) stageHeight() int {
	return max(m.Height-2, 0)
}

func (m *LightboxModel) renderFrame() string {
	lb := m.gallery.Lightbox()

	var b strings.Builder
	b.WriteString(styles.Title.Render(lb.Title()))
	b.WriteString("\n")
	if lb.Len() == 0 {
		b.WriteString(styles.MutedText.Render("no images"))
	} else {
		b.WriteString(styles.LightboxImage.Render(lb.Current()))
		b.WriteString("\n\n")
		b.WriteString(styles.Caption.Render(lb.Caption()))
	}

	frame := styles.LightboxFrame
	if m.Width > 8 {
		frame = frame.Width(min(m.Width-4, 96))
	}
	return frame.Render(b.String())
}

// imageBounds returns the screen rectangle of the framed image. Clicks
// outside it land on the backdrop.
func (m *LightboxModel) imageBounds() (x, y, w, h int) {
	frame := m.renderFrame()
	w = lipgloss.Width(frame)
	h = lipgloss.Height(frame)
	return centerOffset(m.Width, w), centerOffset(m.stageHeight(), h), w, h
}

// centerOffset mirrors lipgloss.Place centering
func centerOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
}

// View renders the lightbox over the backdrop
func (m *LightboxModel) View() string {
	if m.gallery == nil || !m.gallery.Lightbox().IsOpen() {
		return ""
	}

	stage := lipgloss.Place(m.Width, m.stageHeight(), lipgloss.Center, lipgloss.Center,
		m.renderFrame(),
		lipgloss.WithWhitespaceBackground(styles.Backdrop),
	)

	footer := RenderHelpLine(LightboxKeys.Previous, LightboxKeys.Next, LightboxKeys.Random,
		LightboxKeys.Copy, LightboxKeys.Browse, LightboxKeys.Close)
	if m.Message != "" {
		footer = RenderMessage(m.Message, m.MessageErr) + "  " + footer
	}
	return stage + "\n\n" + footer
}
