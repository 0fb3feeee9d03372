package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"vitrine/internal/domain"
)

const (
	EnvPrefix          = "VITRINE"
	DefaultCatalogPath = "~/.local/share/vitrine/catalog.json"
	DefaultLogLevel    = "warn"
)

// Config holds the resolved settings shared by every binary
type Config struct {
	CatalogPath  string
	ItemsPerPage int
	Locale       language.Tag
	IndexEnabled bool
	LogLevel     logrus.Level
	LogFile      string
	ConfigFile   string // file the settings were read from, empty when none
}

// Load resolves settings from defaults, the config file and VITRINE_*
// environment variables. An empty path looks for
// ~/.config/vitrine/config.yaml and tolerates its absence.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(expandHome(path))
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vitrine"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog", DefaultCatalogPath)
	v.SetDefault("items_per_page", domain.DefaultItemsPerPage)
	v.SetDefault("locale", "en")
	v.SetDefault("index.enabled", true)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", defaultLogFile())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	perPage := v.GetInt("items_per_page")
	if perPage < 1 {
		return nil, fmt.Errorf("items_per_page must be at least 1, got: %d", perPage)
	}

	locale, err := domain.ParseLocale(v.GetString("locale"))
	if err != nil {
		return nil, fmt.Errorf("invalid locale: %w", err)
	}

	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &Config{
		CatalogPath:  expandHome(v.GetString("catalog")),
		ItemsPerPage: perPage,
		Locale:       locale,
		IndexEnabled: v.GetBool("index.enabled"),
		LogLevel:     level,
		LogFile:      expandHome(v.GetString("log.file")),
		ConfigFile:   v.ConfigFileUsed(),
	}, nil
}

// NewLogger builds a logger at the configured level writing to out
func NewLogger(cfg *Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return logger
}

// OpenLogFile opens the configured log file for appending, creating its directory
func OpenLogFile(cfg *Config) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "vitrine", "vitrine.log")
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
