package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the list categories",
	Long: `Lists the categories in the order they appear in exports. Either the ID or
the display name is accepted as a section header when importing a text export.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, c := range domain.Categories() {
			cmd.Printf("  %-10s %s\n", c.ID, c.Name)
		}
		cmd.Printf("\n%d entries per category\n", domain.ItemsPerCategory)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
