package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vitrine/internal/adapters/filesystem"
	"vitrine/internal/adapters/sqlite"
	"vitrine/internal/config"
	"vitrine/internal/ports"
)

var (
	configPath  string
	catalogPath string
	noIndex     bool

	cfg     *config.Config
	log     *logrus.Entry
	catalog ports.Catalog
	index   ports.CatalogIndex
)

var rootCmd = &cobra.Command{
	Use:   "vitrine-cli",
	Short: "CLI for browsing a vitrine catalog",
	Long: `vitrine-cli queries a gallery catalog from the command line.

It applies the same filters, sort orders and pagination as the
interactive gallery and prints plain text suitable for scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if index != nil {
			err := index.Close()
			index = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/vitrine/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file, overrides the configured one")
	rootCmd.PersistentFlags().BoolVar(&noIndex, "no-index", false, "read the catalog directly instead of the SQLite index")
}

func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	log = logrus.NewEntry(config.NewLogger(cfg, os.Stderr)).WithField("binary", "vitrine-cli")
	catalog = filesystem.NewCatalog(cfg.CatalogPath)
	index = nil

	if cfg.IndexEnabled && !noIndex {
		idx := sqlite.NewIndex(log)
		if err := idx.Open(cfg.CatalogPath); err != nil {
			log.WithError(err).Warn("index disabled")
			return nil
		}
		index = idx
	}
	return nil
}
