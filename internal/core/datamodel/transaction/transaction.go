package transaction

import "time"

// Transaction is a single financial event. Rows are immutable once written;
// they disappear only via cascade when the owning user or category is deleted.
type Transaction struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_transactions_user_date"`
	CategoryID  int64     `gorm:"column:category_id;not null;index:idx_transactions_category"`
	Amount      float64   `gorm:"column:amount;not null"`
	Description string    `gorm:"column:description"`
	Type        string    `gorm:"column:type;not null"`
	Date        time.Time `gorm:"column:date;not null;index:idx_transactions_user_date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
