package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/application/commands"
	"vitrine/internal/domain"
)

var listFlags struct {
	query   string
	status  string
	domain  string
	tags    []string
	sort    string
	page    int
	perPage int
	seed    uint64
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of the gallery",
	Long: `List one page of items after filtering and sorting.

Examples:
  vitrine-cli list
  vitrine-cli list --status completed --sort newest
  vitrine-cli list --tag rpg --tag 3d --page 2 --per-page 50
  vitrine-cli list --sort random --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		items, err := commands.NewLoadCatalogCommand(catalog, index, log).Execute(ctx)
		if err != nil {
			return err
		}

		query := commands.NewQueryCommand(items)
		query.Query = listFlags.query
		query.Status = listFlags.status
		query.Domain = listFlags.domain
		query.Tags = listFlags.tags
		query.Sort = listFlags.sort
		query.Page = listFlags.page
		query.PerPage = listFlags.perPage
		query.Seed = listFlags.seed
		query.Locale = cfg.Locale
		if !cmd.Flags().Changed("per-page") {
			query.PerPage = cfg.ItemsPerPage
		}

		view, err := query.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Page %d / %d (%d items)\n", view.Page, view.PageCount, view.Total)
		for _, item := range view.Items {
			fmt.Fprintf(out, "%s  %s  [%s]  %s\n", item.ID, item.Title, item.Status, item.URL)
		}
		return nil
	},
}

func init() {
	f := listCmd.Flags()
	f.StringVarP(&listFlags.query, "query", "q", "", "title substring, at least 3 characters")
	f.StringVarP(&listFlags.status, "status", "s", "any", "status: any, active, completed or abandoned")
	f.StringVarP(&listFlags.domain, "domain", "d", domain.AllDomains, "link hostname")
	f.StringArrayVarP(&listFlags.tags, "tag", "t", nil, "required tag, repeatable")
	f.StringVarP(&listFlags.sort, "sort", "o", string(domain.SortAlphabetical), "sort: alphabetical, lastUpdated, newest, oldest or random")
	f.IntVarP(&listFlags.page, "page", "p", 1, "page number")
	f.IntVarP(&listFlags.perPage, "per-page", "n", domain.DefaultItemsPerPage, "items per page")
	f.Uint64Var(&listFlags.seed, "seed", 0, "seed for the random sort")
	rootCmd.AddCommand(listCmd)
}
