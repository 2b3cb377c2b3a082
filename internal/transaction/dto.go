package transaction

import (
	"time"

	"github.com/fintrackbot/fintrack/internal"
)

type CreateTransactionDTO struct {
	UserID      int64      `json:"user_id"`
	CategoryID  int64      `json:"category_id"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Type        Type       `json:"type"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

func (d CreateTransactionDTO) Validate() error {
	if d.Amount <= 0 {
		return internal.ErrInvalidAmount
	}
	if !d.Type.Valid() {
		return internal.ErrInvalidType
	}
	return nil
}
