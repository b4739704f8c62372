package bookmark

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/internal/app/client"
)

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Изменить закладку",
	Long: `Частичное обновление закладки.

Отправляются только явно указанные флаги, остальные поля не меняются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		req := editRequest(cmd)
		if req.Empty() {
			return fmt.Errorf("укажите хотя бы один из флагов --title, --link, --description")
		}

		b, err := app.EditBookmark(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		return show(cmd, b)
	},
}

func init() {
	EditCmd.Flags().StringP("title", "t", "", "название")
	EditCmd.Flags().StringP("link", "l", "", "ссылка")
	EditCmd.Flags().StringP("description", "d", "", "описание")
}
