package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"vitrine/internal/adapters/filesystem"
	mcpadapter "vitrine/internal/adapters/mcp"
	"vitrine/internal/adapters/sqlite"
	"vitrine/internal/config"
	"vitrine/internal/ports"
)

const version = "0.1.0"

type options struct {
	Config  string `short:"c" long:"config" description:"config file (default is $HOME/.config/vitrine/config.yaml)"`
	Catalog string `long:"catalog" description:"catalog file, overrides the configured one"`
	NoIndex bool   `long:"no-index" description:"read the catalog directly instead of the SQLite index"`
	Version bool   `long:"version" description:"print the version and exit"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vitrine-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "vitrine-mcp"
	parser.LongDescription = "MCP server exposing the vitrine gallery over stdio."

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}
	if opts.Version {
		fmt.Printf("vitrine-mcp %s\n", version)
		return nil
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

	// stdout carries the protocol
	logFile, err := config.OpenLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logrus.NewEntry(config.NewLogger(cfg, logFile)).WithField("binary", "vitrine-mcp")

	src := mcpadapter.Source{
		Catalog: filesystem.NewCatalog(cfg.CatalogPath),
		Locale:  cfg.Locale,
		Log:     log,
	}
	if cfg.IndexEnabled {
		idx := sqlite.NewIndex(log)
		if err := idx.Open(cfg.CatalogPath); err != nil {
			log.WithError(err).Warn("index disabled")
		} else {
			defer idx.Close()
			src.Index = ports.CatalogIndex(idx)
		}
	}

	mcpServer := server.NewMCPServer(
		"vitrine-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, src)
	mcpadapter.RegisterWriteTools(mcpServer, src)

	log.WithField("catalog", cfg.CatalogPath).Info("serving over stdio")
	return server.ServeStdio(mcpServer)
}
