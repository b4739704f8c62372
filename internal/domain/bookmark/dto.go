package bookmark

type CreateRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Link        string  `json:"link" validate:"required,uri,max=2048"`
}

// EditRequest - частичное обновление закладки, nil-поля не меняются.
type EditRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Link        *string `json:"link,omitempty" validate:"omitempty,uri,max=2048"`
}

func (r EditRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Link == nil
}
