package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bookmarks/internal/domain/user"
)

// AuthCmd - родительская команда для всех операций с авторизацией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Регистрация, вход и выход.`,
}

var stdin = bufio.NewReader(os.Stdin)

// readCredentials спрашивает email (если он не передан флагом) и пароль.
// Пароль читается без эха, если stdin - терминал.
func readCredentials(email string) (user.Credentials, error) {
	if email == "" {
		fmt.Print("Email: ")
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return user.Credentials{}, fmt.Errorf("ошибка чтения email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	fmt.Print("Пароль: ")
	var password string
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return user.Credentials{}, fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		password = string(raw)
	} else {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return user.Credentials{}, fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	return user.Credentials{Email: email, Password: password}, nil
}
