package bookmark

import (
	"github.com/spf13/cobra"

	"bookmarks/internal/app/client"
	"bookmarks/internal/domain/bookmark"
)

var CreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Создать закладку",
	Example: `  bookmarks bookmark create --title "Go" --link https://go.dev`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		link, _ := flags.GetString("link")
		req := bookmark.CreateRequest{Title: title, Link: link}
		if flags.Changed("description") {
			d, _ := flags.GetString("description")
			req.Description = &d
		}

		b, err := app.CreateBookmark(cmd.Context(), req)
		if err != nil {
			return err
		}
		return show(cmd, b)
	},
}

func init() {
	CreateCmd.Flags().StringP("title", "t", "", "название")
	CreateCmd.Flags().StringP("link", "l", "", "ссылка")
	CreateCmd.Flags().StringP("description", "d", "", "описание")
	_ = CreateCmd.MarkFlagRequired("title")
	_ = CreateCmd.MarkFlagRequired("link")
}
