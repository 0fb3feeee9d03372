package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"vitrine/internal/adapters/tui/views"
	"vitrine/internal/application"
	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewGallery ViewState = iota
	ViewLightbox
	ViewDetail
	ViewTags
	ViewHelp
)

// Loader produces the item store, e.g. commands.LoadCatalogCommand
type Loader interface {
	Execute(ctx context.Context) ([]domain.Item, error)
}

// Options wires the app to its adapters
type Options struct {
	Loader      Loader
	CatalogPath string
	Opener      ports.URLOpener
	Editor      ports.EditorOpener // nil disables catalog editing
	Gallery     application.GalleryOptions
	Log         *logrus.Entry
}

// App is the main TUI application model
type App struct {
	opts Options
	log  *logrus.Entry

	state       ViewState
	gallery     *application.Gallery
	galleryView *views.GalleryModel
	lightbox    *views.LightboxModel
	detail      *views.DetailModel
	tags        *views.TagPickerModel
	help        *views.HelpModel
}

// NewApp creates a new TUI application. The catalog is loaded by Init.
func NewApp(opts Options) *App {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	if opts.Gallery.Logger == nil {
		opts.Gallery.Logger = log
	}

	return &App{
		opts:        opts,
		log:         log.WithField("component", "tui"),
		state:       ViewGallery,
		galleryView: views.NewGalleryModel(opts.Opener),
		lightbox:    views.NewLightboxModel(opts.Opener),
		detail:      views.NewDetailModel(opts.Opener),
		tags:        views.NewTagPickerModel(),
		help:        views.NewHelpModel(),
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Gallery returns the loaded gallery, nil before the first load
func (a *App) Gallery() *application.Gallery {
	return a.gallery
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.loadCatalog
}

type catalogLoadedMsg struct {
	items []domain.Item
	err   error
}

type editorFinishedMsg struct{ err error }

func (a *App) loadCatalog() tea.Msg {
	items, err := a.opts.Loader.Execute(context.Background())
	return catalogLoadedMsg{items: items, err: err}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.galleryView.SetSize(msg.Width, msg.Height)
		a.lightbox.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.tags.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case catalogLoadedMsg:
		a.applyCatalog(msg)
		return a, nil

	// View switching messages
	case views.SwitchToGalleryMsg:
		if a.gallery != nil {
			a.gallery.CloseLightbox()
		}
		a.state = ViewGallery
		return a, nil

	case views.SwitchToLightboxMsg:
		if a.gallery == nil {
			return a, nil
		}
		a.lightbox.Open(msg.Item)
		a.state = ViewLightbox
		return a, nil

	case views.SwitchToDetailMsg:
		a.detail.SetItem(msg.Item)
		a.state = ViewDetail
		return a, nil

	case views.SwitchToTagsMsg:
		a.tags.Refresh()
		a.state = ViewTags
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.EditCatalogMsg:
		return a, a.openEditor(a.opts.CatalogPath)

	case editorFinishedMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Warn("editor failed")
			a.galleryView.SetMessage("Editor failed: "+msg.err.Error(), true)
			return a, nil
		}
		a.galleryView.SetMessage("Reloading catalog…", false)
		return a, a.loadCatalog
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewGallery:
		_, cmd = a.galleryView.Update(msg)
	case ViewLightbox:
		_, cmd = a.lightbox.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewTags:
		_, cmd = a.tags.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// applyCatalog installs a freshly loaded item store, keeping the filters,
// sort order and page size of the previous gallery
func (a *App) applyCatalog(msg catalogLoadedMsg) {
	if msg.err != nil {
		a.log.WithError(msg.err).Error("catalog load failed")
		a.galleryView.SetMessage("Load failed: "+msg.err.Error(), true)
		return
	}

	g := application.NewGallery(msg.items, a.opts.Gallery)
	if prev := a.gallery; prev != nil {
		if err := g.SetItemsPerPage(prev.View().ItemsPerPage); err != nil {
			a.log.WithError(err).Warn("page size not restored")
		}
		if err := g.OnSortChanged(prev.Sort()); err != nil {
			a.log.WithError(err).Warn("sort not restored")
		}
		g.OnFilterChanged(prev.Filter())
	}

	a.gallery = g
	a.galleryView.SetGallery(g)
	a.lightbox.SetGallery(g)
	a.detail.SetGallery(g)
	a.tags.SetGallery(g)
	a.help.SetGallery(g)
	a.state = ViewGallery

	a.log.WithField("items", len(msg.items)).Info("catalog loaded")
	a.galleryView.SetMessage(fmt.Sprintf("Loaded %d items", len(msg.items)), false)
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.opts.Editor == nil || path == "" {
		return nil
	}

	cmd, err := a.opts.Editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLightbox:
		return a.lightbox.View()
	case ViewDetail:
		return a.detail.View()
	case ViewTags:
		return a.tags.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.galleryView.View()
	}
}
