package sqlite

import (
	"github.com/fintrackbot/fintrack/internal"
	txDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/transaction"
	"github.com/fintrackbot/fintrack/internal/transaction"
	"gorm.io/gorm"
)

// TransactionRepository implements both the ledger's transaction.RepositoryAPI
// and the statistics engine's aggregate reads over the same table.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *txDatamodel.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return internal.TranslateDBError(err)
	}
	return nil
}

func (r *TransactionRepository) ListByUser(userID int64, limit int, w transaction.Window) ([]transaction.Entry, error) {
	var entries []transaction.Entry

	q := r.db.Table("transactions").
		Select("transactions.id, transactions.amount, transactions.description, transactions.type, transactions.date, "+
			"categories.name AS category_name, categories.emoji AS category_emoji").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID)

	q = applyWindow(q, "transactions.date", w)

	err := q.Order("transactions.date DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, internal.TranslateDBError(err)
	}
	return entries, nil
}

func (r *TransactionRepository) TotalByType(userID int64, txType transaction.Type, w transaction.Window) (float64, error) {
	var total float64

	q := r.db.Table("transactions").
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, string(txType))

	q = applyWindow(q, "date", w)

	if err := q.Scan(&total).Error; err != nil {
		return 0, internal.TranslateDBError(err)
	}
	return total, nil
}

func (r *TransactionRepository) CountInWindow(userID int64, w transaction.Window) (int64, error) {
	var count int64

	q := r.db.Table("transactions").Where("user_id = ?", userID)
	q = applyWindow(q, "date", w)

	if err := q.Count(&count).Error; err != nil {
		return 0, internal.TranslateDBError(err)
	}
	return count, nil
}

// ExpenseTotalsByCategory sums expense transactions per category, largest
// first; ties resolve by ascending category id so the order is stable.
func (r *TransactionRepository) ExpenseTotalsByCategory(userID int64, w transaction.Window) ([]transaction.CategoryTotal, error) {
	var totals []transaction.CategoryTotal

	q := r.db.Table("transactions").
		Select("categories.id AS category_id, categories.name, categories.emoji, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, string(transaction.TypeExpense))

	q = applyWindow(q, "transactions.date", w)

	err := q.Group("categories.id").
		Order("total DESC, categories.id ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, internal.TranslateDBError(err)
	}
	return totals, nil
}

func applyWindow(q *gorm.DB, column string, w transaction.Window) *gorm.DB {
	if w.Start != nil {
		q = q.Where(column+" >= ?", *w.Start)
	}
	if w.End != nil {
		q = q.Where(column+" <= ?", *w.End)
	}
	return q
}
