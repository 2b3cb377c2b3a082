package transaction

import (
	"time"

	txDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/transaction"
)

// Type is the closed enumeration of transaction kinds. It is validated at
// the boundary; the free-string column in storage never carries anything
// else.
type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Window is an optional time range used to filter ledger queries. A nil
// bound means unbounded on that side.
type Window struct {
	Start *time.Time
	End   *time.Time
}

func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// Entry is a ledger row joined with its category's display fields, as
// rendered in history listings.
type Entry struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Type          Type      `json:"type"`
	Date          time.Time `json:"date"`
	CategoryName  string    `json:"category_name"`
	CategoryEmoji string    `json:"category_emoji"`
}

// CategoryTotal is an expense sum aggregated over one category.
type CategoryTotal struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Emoji      string  `json:"emoji"`
	Total      float64 `json:"total"`
}

// Transaction is the domain view of a ledger row.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CategoryID  int64     `json:"category_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDataModel(t *Transaction) *txDatamodel.Transaction {
	return &txDatamodel.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		Type:        string(t.Type),
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

func FromDataModel(t *txDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		Type:        Type(t.Type),
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}
