package budget

import "time"

// Budget is declared for schema completeness; no flow reads it yet.
type Budget struct {
	ID         int64      `gorm:"primaryKey"`
	UserID     int64      `gorm:"column:user_id;not null"`
	CategoryID *int64     `gorm:"column:category_id"`
	Amount     float64    `gorm:"column:amount;not null"`
	Period     string     `gorm:"column:period;not null"`
	StartDate  time.Time  `gorm:"column:start_date;not null"`
	EndDate    *time.Time `gorm:"column:end_date"`
}

func (Budget) TableName() string {
	return "budgets"
}

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)
