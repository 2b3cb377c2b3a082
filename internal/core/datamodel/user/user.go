package user

import "time"

type User struct {
	ID         int64     `gorm:"primaryKey"`
	TelegramID int64     `gorm:"column:telegram_id;uniqueIndex;not null"`
	Username   string    `gorm:"column:username"`
	FirstName  string    `gorm:"column:first_name;not null"`
	Language   string    `gorm:"column:language;default:ru"`
	Currency   string    `gorm:"column:currency;default:RUB"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
