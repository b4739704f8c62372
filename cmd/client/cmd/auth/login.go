package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/internal/app/client"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере закладок.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		creds, err := readCredentials(loginEmail)
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), creds); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println("✅ Вход выполнен успешно!")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email пользователя")
}
