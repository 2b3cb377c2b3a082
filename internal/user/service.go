package user

import (
	"log/slog"
	"strings"

	"github.com/fintrackbot/fintrack/internal"
	userDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetByTelegramID(telegramID int64) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
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

// GetOrCreate looks up the profile for a Telegram account and registers
// it on first contact. Registration is idempotent: a concurrent insert
// losing the unique race falls back to the winning row.
func (s *Service) GetOrCreate(telegramID int64, username, firstName string) (*User, error) {
	existing, err := s.repo.GetByTelegramID(telegramID)
	if err != nil {
		s.logger.Error("failed to look up user", "telegram_id", telegramID, "error", err)
		return nil, err
	}
	if existing != nil {
		return FromDataModel(existing), nil
	}

	record := &userDatamodel.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  strings.TrimSpace(firstName),
		Language:   DefaultLanguage,
		Currency:   DefaultCurrency,
	}
	if record.FirstName == "" {
		record.FirstName = "there"
	}

	if err := s.repo.Create(record); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeDuplicateKey {
			winner, lookupErr := s.repo.GetByTelegramID(telegramID)
			if lookupErr == nil && winner != nil {
				return FromDataModel(winner), nil
			}
		}
		s.logger.Error("failed to create user", "telegram_id", telegramID, "error", err)
		return nil, err
	}

	s.logger.Info("registered new user", "telegram_id", telegramID, "user_id", record.ID)
	return FromDataModel(record), nil
}

// GetByTelegramID returns nil without error when the account is unknown.
func (s *Service) GetByTelegramID(telegramID int64) (*User, error) {
	record, err := s.repo.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return FromDataModel(record), nil
}
