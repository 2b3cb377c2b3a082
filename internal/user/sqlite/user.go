package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fintrackbot/fintrack/internal"
	userDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByTelegramID(telegramID int64) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.TranslateDBError(err)
	}
	return &user, nil
}

func (r *UserRepository) Create(user *userDatamodel.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return internal.TranslateDBError(err)
	}
	return nil
}
