package category

import (
	categoryDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/category"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

type Category struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Emoji  string           `json:"emoji"`
	Type   transaction.Type `json:"type"`
	UserID *int64           `json:"user_id,omitempty"`
}

// IsGlobal reports whether the category is part of the shared seed set
// rather than owned by a single user.
func (c *Category) IsGlobal() bool {
	return c.UserID == nil
}

// Label is the display form used on keyboards and in messages.
func (c *Category) Label() string {
	return c.Emoji + " " + c.Name
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:     c.ID,
		Name:   c.Name,
		Emoji:  c.Emoji,
		Type:   string(c.Type),
		UserID: c.UserID,
	}
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:     c.ID,
		Name:   c.Name,
		Emoji:  c.Emoji,
		Type:   transaction.Type(c.Type),
		UserID: c.UserID,
	}
}
