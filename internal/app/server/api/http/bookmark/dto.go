package bookmark

import "bookmarks/internal/domain/bookmark"

type idInput struct {
	ID int `path:"id" minimum:"1" doc:"ID закладки"`
}

type listOutput struct {
	Body []bookmark.Bookmark
}

type createBookmarkBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Title       string   `json:"title" minLength:"1" maxLength:"255"`
	Description *string  `json:"description,omitempty" maxLength:"2000"`
	Link        string   `json:"link" format:"uri" maxLength:"2048"`
}

type createInput struct {
	Body createBookmarkBody
}

type editBookmarkBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Title       *string  `json:"title,omitempty" minLength:"1" maxLength:"255"`
	Description *string  `json:"description,omitempty" maxLength:"2000"`
	Link        *string  `json:"link,omitempty" format:"uri" maxLength:"2048"`
}

type editInput struct {
	ID   int `path:"id" minimum:"1" doc:"ID закладки"`
	Body editBookmarkBody
}

type output struct {
	Body bookmark.Bookmark
}
