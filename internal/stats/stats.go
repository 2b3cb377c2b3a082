package stats

import (
	"github.com/fintrackbot/fintrack/internal/transaction"
)

// Summary holds the raw aggregates for one user over one window, before
// any derived figures are computed.
type Summary struct {
	TotalExpenses    float64                     `json:"total_expenses"`
	TotalIncome      float64                     `json:"total_income"`
	TransactionCount int64                       `json:"transaction_count"`
	Categories       []transaction.CategoryTotal `json:"categories"`
}

// SavingsTier classifies the savings rate for recommendation text.
type SavingsTier string

const (
	TierGood         SavingsTier = "good"
	TierLow          SavingsTier = "low"
	TierOverspending SavingsTier = "overspending"
)

// CategoryShare is a category expense total with its share of all
// expenses in the window.
type CategoryShare struct {
	transaction.CategoryTotal
	Percent float64 `json:"percent"`
}

// Report is the fully derived statistics view rendered to the user.
type Report struct {
	Summary
	HasData     bool                       `json:"has_data"`
	Balance     float64                    `json:"balance"`
	Shares      []CategoryShare            `json:"shares"`
	Biggest     *transaction.CategoryTotal `json:"biggest,omitempty"`
	SavingsRate float64                    `json:"savings_rate"`
	Tier        SavingsTier                `json:"tier"`
}
