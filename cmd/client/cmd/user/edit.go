package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/app/client"
	"bookmarks/internal/domain/user"
)

var EditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Изменить профиль",
	Long: `Частичное обновление профиля.

Отправляются только явно указанные флаги, остальные поля не меняются.`,
	Example: `  bookmarks user edit --first-name Анна
  bookmarks user edit --email new@example.com`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		req := editRequest(cmd)
		if req.Empty() {
			return fmt.Errorf("укажите хотя бы один из флагов --email, --first-name, --last-name")
		}

		u, err := app.EditUser(cmd.Context(), req)
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

func editRequest(cmd *cobra.Command) user.EditRequest {
	var req user.EditRequest
	flags := cmd.Flags()
	if flags.Changed("email") {
		v, _ := flags.GetString("email")
		req.Email = &v
	}
	if flags.Changed("first-name") {
		v, _ := flags.GetString("first-name")
		req.FirstName = &v
	}
	if flags.Changed("last-name") {
		v, _ := flags.GetString("last-name")
		req.LastName = &v
	}
	return req
}

func init() {
	EditCmd.Flags().String("email", "", "новый email")
	EditCmd.Flags().String("first-name", "", "имя")
	EditCmd.Flags().String("last-name", "", "фамилия")
}
