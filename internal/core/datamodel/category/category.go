package category

// Category is a classification bucket for transactions. A nil UserID marks a
// global category shared by all users; user-created categories carry their
// owner's id.
type Category struct {
	ID     int64  `gorm:"primaryKey"`
	Name   string `gorm:"column:name;not null;uniqueIndex:idx_categories_name_owner"`
	Emoji  string `gorm:"column:emoji;not null"`
	Type   string `gorm:"column:type;not null"`
	UserID *int64 `gorm:"column:user_id;uniqueIndex:idx_categories_name_owner"`
}

func (Category) TableName() string {
	return "categories"
}
