package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/application/commands"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List link hostnames",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		domains, err := commands.NewListDomainsCommand(catalog, index, log).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, d := range domains {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
