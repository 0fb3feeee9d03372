package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vitrine/internal/application/commands"
)

// RegisterWriteTools adds the tools that modify cached state. Nothing is
// registered when the index is disabled.
func RegisterWriteTools(s *server.MCPServer, src Source) {
	if src.Index == nil {
		return
	}
	s.AddTool(rebuildIndexTool(), rebuildIndexHandler(src))
}

// --- rebuild_index ---

func rebuildIndexTool() mcp.Tool {
	return mcp.NewTool("rebuild_index",
		mcp.WithDescription("Re-read the catalog file and rebuild the SQLite index."),
	)
}

func rebuildIndexHandler(src Source) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewRebuildIndexCommand(src.Catalog, src.Index, src.Log).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Indexed %d items, %d tags, %d images in %s",
			stats.ItemsIndexed, stats.TagsIndexed, stats.ImagesIndexed, stats.Duration.Round(time.Millisecond))), nil
	}
}
