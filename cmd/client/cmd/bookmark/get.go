package bookmark

import (
	"github.com/spf13/cobra"

	"bookmarks/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть закладку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		b, err := app.GetBookmark(cmd.Context(), id)
		if err != nil {
			return err
		}
		return show(cmd, b)
	},
}
