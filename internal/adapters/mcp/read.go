package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"vitrine/internal/application/commands"
	"vitrine/internal/domain"
	"vitrine/internal/ports"
)

// Source bundles what the tools read from. Index may be nil.
type Source struct {
	Catalog ports.Catalog
	Index   ports.CatalogIndex
	Locale  language.Tag
	Log     *logrus.Entry
}

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, src Source) {
	s.AddTool(queryTool(), queryHandler(src))
	s.AddTool(tagsTool(), tagsHandler(src))
	s.AddTool(domainsTool(), domainsHandler(src))
	s.AddTool(showTool(), showHandler(src))
}

func (src Source) items(ctx context.Context) ([]domain.Item, error) {
	return commands.NewLoadCatalogCommand(src.Catalog, src.Index, src.Log).Execute(ctx)
}

// --- query ---

func queryTool() mcp.Tool {
	return mcp.NewTool("query",
		mcp.WithDescription("Filter, sort and paginate the gallery. Returns one page of items with their IDs."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive title substring. Ignored when shorter than 3 characters."),
		),
		mcp.WithString("status",
			mcp.Description("Status category"),
			mcp.Enum("any", "active", "completed", "abandoned"),
		),
		mcp.WithString("domain",
			mcp.Description("Link hostname, or 'all'"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags every returned item must carry"),
			mcp.WithStringItems(),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order"),
			mcp.Enum("alphabetical", "lastUpdated", "newest", "oldest", "random"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default 1)"),
		),
		mcp.WithNumber("per_page",
			mcp.Description("Items per page (default 20)"),
		),
		mcp.WithNumber("seed",
			mcp.Description("Seed for the random sort, for reproducible pages"),
		),
	)
}

func queryHandler(src Source) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := src.items(ctx)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewQueryCommand(items)
		cmd.Query = req.GetString("query", "")
		cmd.Status = req.GetString("status", "")
		cmd.Domain = req.GetString("domain", "")
		cmd.Tags = req.GetStringSlice("tags", nil)
		cmd.Sort = req.GetString("sort", "")
		cmd.Page = req.GetInt("page", 1)
		cmd.PerPage = req.GetInt("per_page", domain.DefaultItemsPerPage)
		cmd.Seed = uint64(req.GetInt("seed", 0))
		cmd.Locale = src.Locale

		view, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Page %d / %d (%d items)\n", view.Page, view.PageCount, view.Total)
		for _, item := range view.Items {
			sb.WriteString(formatItem(item))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tags ---

func tagsTool() mcp.Tool {
	return mcp.NewTool("tags",
		mcp.WithDescription("List every tag with the number of items carrying it."),
	)
}

func tagsHandler(src Source) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := commands.NewListTagsCommand(src.Catalog, src.Index, src.Log).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tags, formatTag)
	}
}

// --- domains ---

func domainsTool() mcp.Tool {
	return mcp.NewTool("domains",
		mcp.WithDescription("List the link hostnames usable as a domain filter."),
	)
}

func domainsHandler(src Source) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		domains, err := commands.NewListDomainsCommand(src.Catalog, src.Index, src.Log).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(domains, func(d string) string { return d })
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show every field of one item."),
		mcp.WithString("id",
			mcp.Description("Item ID"),
			mcp.Required(),
		),
	)
}

func showHandler(src Source) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		items, err := src.items(ctx)
		if err != nil {
			return toolError(err)
		}
		item, err := commands.NewShowCommand(items, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatDetail(item)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatItem(i domain.Item) string {
	return fmt.Sprintf("%s  %s  [%s]  %s", i.ID, i.Title, i.Status, i.URL)
}

func formatTag(t domain.TagCount) string {
	return fmt.Sprintf("%s  %d", t.Tag, t.Count)
}

func formatDetail(i domain.Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\n", i.ID)
	fmt.Fprintf(&sb, "Title: %s\n", i.Title)
	fmt.Fprintf(&sb, "URL: %s\n", i.URL)
	fmt.Fprintf(&sb, "Status: %s\n", i.Status)
	if i.Developer != "" {
		fmt.Fprintf(&sb, "Developer: %s\n", i.Developer)
	}
	if i.Published != "" {
		fmt.Fprintf(&sb, "Published: %s\n", i.Published)
	}
	if i.Updated != "" {
		fmt.Fprintf(&sb, "Updated: %s\n", i.Updated)
	}
	if len(i.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(i.Tags, ", "))
	}
	for n, img := range i.Images {
		fmt.Fprintf(&sb, "Image %d: %s\n", n+1, img)
	}
	if i.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", i.Description)
	}
	return sb.String()
}
