package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Удаляет сохранённый токен. Сервер токены не отзывает, они истекают сами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.ClearToken(); err != nil {
			return err
		}

		fmt.Println("✓ Токен удалён")
		return nil
	},
}
