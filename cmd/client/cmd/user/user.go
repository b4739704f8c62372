package user

import (
	"github.com/spf13/cobra"
)

// UserCmd - родительская команда для операций с профилем
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Профиль пользователя",
	Long:  `Просмотр и изменение профиля текущего пользователя.`,
}
