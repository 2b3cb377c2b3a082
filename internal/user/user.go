package user

import (
	"time"

	userDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/user"
)

const (
	DefaultLanguage = "ru"
	DefaultCurrency = "RUB"
)

type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	Language   string    `json:"language"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		Language:   u.Language,
		Currency:   u.Currency,
		CreatedAt:  u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		Language:   u.Language,
		Currency:   u.Currency,
		CreatedAt:  u.CreatedAt,
	}
}
