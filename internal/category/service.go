package category

import (
	"log/slog"
	"strings"

	categoryDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/category"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

// RepositoryAPI defines the data access methods for categories.
type RepositoryAPI interface {
	// ListVisible returns global categories plus the owner's private ones
	// (all global when ownerID is nil), optionally filtered by type and
	// ordered by (type, name).
	ListVisible(ownerID *int64, typeFilter string) ([]*categoryDatamodel.Category, error)
	GetByID(id int64) (*categoryDatamodel.Category, error)
	Create(cat *categoryDatamodel.Category) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the categories visible to the given owner. A nil typeFilter
// returns both expense and income categories.
func (s *Service) List(ownerID *int64, typeFilter *transaction.Type) ([]Category, error) {
	filter := ""
	if typeFilter != nil {
		filter = string(*typeFilter)
	}

	rows, err := s.repo.ListVisible(ownerID, filter)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, err
	}

	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, *FromDataModel(row))
	}
	return categories, nil
}

// Create registers a private category for a user. No conversation flow
// drives this yet; the uniqueness of (name, owner) is enforced by the
// storage layer.
func (s *Service) Create(dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err, "owner_id", dto.OwnerID)
		return nil, err
	}

	row := ToDataModel(&Category{
		Name:   strings.TrimSpace(dto.Name),
		Emoji:  dto.Emoji,
		Type:   dto.Type,
		UserID: &dto.OwnerID,
	})
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create category", "error", err, "owner_id", dto.OwnerID)
		return nil, err
	}

	s.logger.Info("category created", "category_id", row.ID, "owner_id", dto.OwnerID)
	return FromDataModel(row), nil
}

// GetByID returns the category or nil when it does not exist.
func (s *Service) GetByID(id int64) (*Category, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}
