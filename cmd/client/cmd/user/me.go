package user

import (
	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/app/client"
)

var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "Показать профиль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		u, err := app.Me(cmd.Context())
		if err != nil {
			return err
		}

		if output.IsJSON(cmd) {
			return output.JSON(cmd.OutOrStdout(), u)
		}
		output.User(cmd.OutOrStdout(), u)
		return nil
	},
}
