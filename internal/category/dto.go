package category

import (
	"strings"

	"github.com/fintrackbot/fintrack/internal"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

type CreateCategoryDTO struct {
	OwnerID int64            `json:"owner_id"`
	Name    string           `json:"name"`
	Emoji   string           `json:"emoji"`
	Type    transaction.Type `json:"type"`
}

func (d CreateCategoryDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("category name is required", internal.ErrCodeValidationFailed)
	}
	if !d.Type.Valid() {
		return internal.ErrInvalidType
	}
	return nil
}
