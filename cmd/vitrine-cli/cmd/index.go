package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/application/commands"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite index from the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if index == nil {
			return fmt.Errorf("index is disabled")
		}

		stats, err := commands.NewRebuildIndexCommand(catalog, index, log).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d items, %d tags, %d images in %s\n",
			stats.ItemsIndexed, stats.TagsIndexed, stats.ImagesIndexed, stats.Duration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
