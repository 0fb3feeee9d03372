package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vitrine/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of one item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		items, err := commands.NewLoadCatalogCommand(catalog, index, log).Execute(ctx)
		if err != nil {
			return err
		}
		item, err := commands.NewShowCommand(items, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:          %s\n", item.ID)
		fmt.Fprintf(out, "Title:       %s\n", item.Title)
		fmt.Fprintf(out, "URL:         %s\n", item.URL)
		fmt.Fprintf(out, "Status:      %s\n", item.Status)
		fmt.Fprintf(out, "Developer:   %s\n", item.Developer)
		fmt.Fprintf(out, "Published:   %s\n", item.Published)
		fmt.Fprintf(out, "Updated:     %s\n", item.Updated)
		fmt.Fprintf(out, "Tags:        %s\n", strings.Join(item.Tags, ", "))
		for i, img := range item.Images {
			fmt.Fprintf(out, "Image %-6s %s\n", fmt.Sprintf("%d:", i+1), img)
		}
		if item.Description != "" {
			fmt.Fprintf(out, "\n%s\n", item.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
