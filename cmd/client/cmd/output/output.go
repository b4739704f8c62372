// Package output печатает ответы сервера в человекочитаемом виде или в JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"bookmarks/internal/domain/bookmark"
	"bookmarks/internal/domain/user"
)

const timeLayout = "2006-01-02 15:04:05"

// IsJSON возвращает значение глобального флага --json.
func IsJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func User(w io.Writer, u user.User) {
	fmt.Fprintf(w, "ID:          %d\n", u.ID)
	fmt.Fprintf(w, "Email:       %s\n", u.Email)
	fmt.Fprintf(w, "Имя:         %s\n", deref(u.FirstName))
	fmt.Fprintf(w, "Фамилия:     %s\n", deref(u.LastName))
	fmt.Fprintf(w, "Создан:      %s\n", u.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Обновлён:    %s\n", u.UpdatedAt.Local().Format(timeLayout))
}

func Bookmark(w io.Writer, b bookmark.Bookmark) {
	fmt.Fprintf(w, "ID:          %d\n", b.ID)
	fmt.Fprintf(w, "Название:    %s\n", b.Title)
	fmt.Fprintf(w, "Ссылка:      %s\n", b.Link)
	if b.Description != nil {
		fmt.Fprintf(w, "Описание:    %s\n", *b.Description)
	}
	fmt.Fprintf(w, "Создана:     %s\n", b.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Обновлена:   %s\n", b.UpdatedAt.Local().Format(timeLayout))
}

// Bookmarks печатает список закладок таблицей.
func Bookmarks(w io.Writer, list []bookmark.Bookmark) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "Закладок пока нет")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tНАЗВАНИЕ\tССЫЛКА\tОБНОВЛЕНА")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			strconv.Itoa(b.ID), b.Title, b.Link, b.UpdatedAt.Local().Format(time.DateOnly))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
