package bookmark

import (
	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/app/client"
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Список закладок",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.ListBookmarks(cmd.Context())
		if err != nil {
			return err
		}

		if output.IsJSON(cmd) {
			return output.JSON(cmd.OutOrStdout(), list)
		}
		return output.Bookmarks(cmd.OutOrStdout(), list)
	},
}
