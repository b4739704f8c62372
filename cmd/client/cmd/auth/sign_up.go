package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/app/client"
)

var (
	signUpEmail string
	signUpLogin bool
)

var SignUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Зарегистрироваться",
	Long: `Создание новой учётной записи.

С флагом --login сразу выполняется вход.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация ===")
		creds, err := readCredentials(signUpEmail)
		if err != nil {
			return err
		}

		u, err := app.SignUp(cmd.Context(), creds)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		if output.IsJSON(cmd) {
			if err := output.JSON(cmd.OutOrStdout(), u); err != nil {
				return err
			}
		} else {
			fmt.Printf("✅ Пользователь %s зарегистрирован (id %d)\n", u.Email, u.ID)
		}

		if signUpLogin {
			if err := app.Login(cmd.Context(), creds); err != nil {
				return fmt.Errorf("ошибка аутентификации: %w", err)
			}
			fmt.Println("✅ Вход выполнен успешно!")
		}

		return nil
	},
}

func init() {
	SignUpCmd.Flags().StringVarP(&signUpEmail, "email", "e", "", "email пользователя")
	SignUpCmd.Flags().BoolVar(&signUpLogin, "login", false, "сразу войти после регистрации")
}
