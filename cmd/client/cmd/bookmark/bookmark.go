package bookmark

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookmarks/cmd/client/cmd/output"
	"bookmarks/internal/domain/bookmark"
)

// BookmarkCmd - родительская команда для всех операций с закладками
var BookmarkCmd = &cobra.Command{
	Use:     "bookmark",
	Aliases: []string{"bm"},
	Short:   "Управление закладками",
	Long:    `Создание, просмотр, обновление и удаление своих закладок.`,
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("неверный ID закладки: %q", arg)
	}
	return id, nil
}

func show(cmd *cobra.Command, b bookmark.Bookmark) error {
	if output.IsJSON(cmd) {
		return output.JSON(cmd.OutOrStdout(), b)
	}
	output.Bookmark(cmd.OutOrStdout(), b)
	return nil
}

// editRequest собирает частичное обновление только из явно заданных флагов.
func editRequest(cmd *cobra.Command) bookmark.EditRequest {
	var req bookmark.EditRequest
	flags := cmd.Flags()
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		req.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		req.Description = &v
	}
	if flags.Changed("link") {
		v, _ := flags.GetString("link")
		req.Link = &v
	}
	return req
}

