package transaction

import (
	"log/slog"
	"time"

	"github.com/fintrackbot/fintrack/internal"
	categoryDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/category"
	txDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/transaction"
)

// RepositoryAPI defines the data access methods for the ledger.
type RepositoryAPI interface {
	Create(tx *txDatamodel.Transaction) error
	ListByUser(userID int64, limit int, w Window) ([]Entry, error)
}

// CategoryAPI is the slice of the category repository the ledger needs to
// check that a submitted transaction's type matches its category.
type CategoryAPI interface {
	GetByID(id int64) (*categoryDatamodel.Category, error)
}

// Service handles ledger business logic.
type Service struct {
	repo       RepositoryAPI
	categories CategoryAPI
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// Add validates and records a new transaction, returning its id. The
// category must exist and its declared type must match the transaction's;
// the occurrence time defaults to now. The row is written in a single
// statement, so a failed submission leaves no partial state.
func (s *Service) Add(dto CreateTransactionDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction validation failed", "error", err, "user_id", dto.UserID)
		return 0, err
	}

	cat, err := s.categories.GetByID(dto.CategoryID)
	if err != nil {
		s.logger.Error("failed to look up category", "error", err, "category_id", dto.CategoryID)
		return 0, err
	}
	if cat == nil {
		s.logger.Warn("transaction references unknown category", "category_id", dto.CategoryID, "user_id", dto.UserID)
		return 0, internal.ErrCategoryNotFound
	}
	if cat.Type != string(dto.Type) {
		s.logger.Warn("transaction type does not match category type",
			"category_id", dto.CategoryID,
			"category_type", cat.Type,
			"transaction_type", dto.Type)
		return 0, internal.ErrCategoryTypeMismatch
	}

	occurredAt := time.Now()
	if dto.OccurredAt != nil {
		occurredAt = *dto.OccurredAt
	}

	row := ToDataModel(&Transaction{
		UserID:      dto.UserID,
		CategoryID:  dto.CategoryID,
		Amount:      dto.Amount,
		Description: dto.Description,
		Type:        dto.Type,
		Date:        occurredAt,
	})

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create transaction", "error", err, "user_id", dto.UserID)
		return 0, err
	}

	s.logger.Info("transaction recorded",
		"transaction_id", row.ID,
		"user_id", dto.UserID,
		"type", dto.Type,
		"amount", dto.Amount)

	return row.ID, nil
}

// List returns the user's transactions newest first, joined with category
// display fields, capped at limit and optionally restricted to a window.
func (s *Service) List(userID int64, limit int, w Window) ([]Entry, error) {
	entries, err := s.repo.ListByUser(userID, limit, w)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err, "user_id", userID)
		return nil, err
	}
	return entries, nil
}
