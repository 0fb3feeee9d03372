package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	goflags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"vitrine/internal/adapters/filesystem"
	"vitrine/internal/adapters/launcher"
	"vitrine/internal/adapters/sqlite"
	"vitrine/internal/adapters/tui"
	"vitrine/internal/application"
	"vitrine/internal/application/commands"
	"vitrine/internal/config"
	"vitrine/internal/ports"
)

type options struct {
	Config  string `short:"c" long:"config" description:"config file (default is $HOME/.config/vitrine/config.yaml)"`
	Catalog string `long:"catalog" description:"catalog file, overrides the configured one"`
	NoIndex bool   `long:"no-index" description:"read the catalog directly instead of the SQLite index"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "vitrine"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if opts.Catalog != "" {
		cfg.CatalogPath = opts.Catalog
	}
	if opts.NoIndex {
		cfg.IndexEnabled = false
	}

	// the terminal belongs to the TUI
	logFile, err := config.OpenLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logrus.NewEntry(config.NewLogger(cfg, logFile)).WithField("binary", "vitrine")

	catalog := filesystem.NewCatalog(cfg.CatalogPath)

	var index ports.CatalogIndex
	if cfg.IndexEnabled {
		idx := sqlite.NewIndex(log)
		if err := idx.Open(catalog.Path()); err != nil {
			log.WithError(err).Warn("index disabled")
		} else {
			defer idx.Close()
			index = idx
		}
	}

	app := tui.NewApp(tui.Options{
		Loader:      commands.NewLoadCatalogCommand(catalog, index, log),
		CatalogPath: catalog.Path(),
		Opener:      launcher.NewOpener(),
		Editor:      launcher.NewEditor(),
		Gallery: application.GalleryOptions{
			ItemsPerPage: cfg.ItemsPerPage,
			Locale:       cfg.Locale,
			Logger:       log,
		},
		Log: log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
