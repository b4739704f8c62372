package bookmark

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Удалить закладку",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		b, err := app.DeleteBookmark(cmd.Context(), id)
		if err != nil {
			return err
		}

		if output.IsJSON(cmd) {
			return output.JSON(cmd.OutOrStdout(), b)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Закладка %d (%s) удалена\n", b.ID, b.Title)
		return nil
	},
}
