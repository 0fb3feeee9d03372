package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/application/commands"
)

var tagsMatch string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with item counts",
	Long: `List every tag with the number of items carrying it.

With --match, tags are fuzzy matched and ranked by relevance.

Examples:
  vitrine-cli tags
  vitrine-cli tags --match horr`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := commands.NewListTagsCommand(catalog, index, log).Execute(context.Background())
		if err != nil {
			return err
		}

		ranked := commands.RankTags(tags, tagsMatch)
		out := cmd.OutOrStdout()
		if len(ranked) == 0 {
			fmt.Fprintln(out, "No tags found")
			return nil
		}
		for _, t := range ranked {
			fmt.Fprintf(out, "%-30s %d\n", t.Tag, t.Count)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsMatch, "match", "m", "", "fuzzy filter for tag names")
	rootCmd.AddCommand(tagsCmd)
}
