package stats

import (
	"log/slog"

	"github.com/fintrackbot/fintrack/internal/transaction"
)

// LedgerAPI is the slice of the ledger repository the statistics engine
// aggregates over.
type LedgerAPI interface {
	TotalByType(userID int64, txType transaction.Type, w transaction.Window) (float64, error)
	CountInWindow(userID int64, w transaction.Window) (int64, error)
	ExpenseTotalsByCategory(userID int64, w transaction.Window) ([]transaction.CategoryTotal, error)
}

type Service struct {
	ledger LedgerAPI
	logger *slog.Logger
}

func NewService(ledger LedgerAPI, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// Summary collects the raw aggregates for one user over one window.
func (s *Service) Summary(userID int64, w transaction.Window) (*Summary, error) {
	expenses, err := s.ledger.TotalByType(userID, transaction.TypeExpense, w)
	if err != nil {
		s.logger.Error("failed to sum expenses", "user_id", userID, "error", err)
		return nil, err
	}

	income, err := s.ledger.TotalByType(userID, transaction.TypeIncome, w)
	if err != nil {
		s.logger.Error("failed to sum income", "user_id", userID, "error", err)
		return nil, err
	}

	count, err := s.ledger.CountInWindow(userID, w)
	if err != nil {
		s.logger.Error("failed to count transactions", "user_id", userID, "error", err)
		return nil, err
	}

	totals, err := s.ledger.ExpenseTotalsByCategory(userID, w)
	if err != nil {
		s.logger.Error("failed to aggregate categories", "user_id", userID, "error", err)
		return nil, err
	}

	return &Summary{
		TotalExpenses:    expenses,
		TotalIncome:      income,
		TransactionCount: count,
		Categories:       totals,
	}, nil
}

// Report computes the derived statistics for one user over one window.
func (s *Service) Report(userID int64, w transaction.Window) (*Report, error) {
	summary, err := s.Summary(userID, w)
	if err != nil {
		return nil, err
	}
	report := BuildReport(*summary)
	return &report, nil
}
