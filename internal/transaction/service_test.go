package transaction_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fintrackbot/fintrack/internal"
	categoryDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/category"
	txDatamodel "github.com/fintrackbot/fintrack/internal/core/datamodel/transaction"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

func TestTransactionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transaction Service Suite")
}

// MockRepository implements transaction.RepositoryAPI for testing
type MockRepository struct {
	created    []*txDatamodel.Transaction
	entries    []transaction.Entry
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Create(tx *txDatamodel.Transaction) error {
	if m.shouldFail {
		return m.failError
	}
	tx.ID = m.nextID
	m.nextID++
	m.created = append(m.created, tx)
	return nil
}

func (m *MockRepository) ListByUser(userID int64, limit int, w transaction.Window) ([]transaction.Entry, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []transaction.Entry
	for _, e := range m.entries {
		if !w.Contains(e.Date) {
			continue
		}
		result = append(result, e)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

// MockCategoryAPI implements transaction.CategoryAPI for testing
type MockCategoryAPI struct {
	categories map[int64]*categoryDatamodel.Category
	shouldFail bool
	failError  error
}

func NewMockCategoryAPI() *MockCategoryAPI {
	return &MockCategoryAPI{categories: make(map[int64]*categoryDatamodel.Category)}
}

func (m *MockCategoryAPI) GetByID(id int64) (*categoryDatamodel.Category, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.categories[id], nil
}

func (m *MockCategoryAPI) AddCategory(cat *categoryDatamodel.Category) {
	m.categories[cat.ID] = cat
}

var _ = Describe("Transaction Service", func() {
	var (
		mockRepo       *MockRepository
		mockCategories *MockCategoryAPI
		service        *transaction.Service
		logger         *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockCategories = NewMockCategoryAPI()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = transaction.NewService(mockRepo, mockCategories, logger)

		mockCategories.AddCategory(&categoryDatamodel.Category{
			ID: 1, Name: "Food", Emoji: "🍔", Type: "expense",
		})
		mockCategories.AddCategory(&categoryDatamodel.Category{
			ID: 2, Name: "Salary", Emoji: "💰", Type: "income",
		})
	})

	Describe("Add", func() {
		Context("with a valid expense", func() {
			It("should record it and return the new id", func() {
				id, err := service.Add(transaction.CreateTransactionDTO{
					UserID:      1,
					CategoryID:  1,
					Amount:      250.50,
					Description: "groceries",
					Type:        transaction.TypeExpense,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(int64(1)))
				Expect(mockRepo.created).To(HaveLen(1))
				Expect(mockRepo.created[0].Amount).To(Equal(250.50))
				Expect(mockRepo.created[0].Type).To(Equal("expense"))
			})

			It("should default the occurrence time to now", func() {
				before := time.Now()
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     100,
					Type:       transaction.TypeExpense,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepo.created[0].Date).To(BeTemporally(">=", before))
				Expect(mockRepo.created[0].Date).To(BeTemporally("<=", time.Now()))
			})

			It("should use the submitted occurrence time when provided", func() {
				occurredAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     100,
					Type:       transaction.TypeExpense,
					OccurredAt: &occurredAt,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepo.created[0].Date).To(Equal(occurredAt))
			})
		})

		Context("with a non-positive amount", func() {
			It("should reject zero and write nothing", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     0,
					Type:       transaction.TypeExpense,
				})
				Expect(err).To(MatchError(internal.ErrInvalidAmount))
				Expect(mockRepo.created).To(BeEmpty())
			})

			It("should reject negative amounts and write nothing", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     -10,
					Type:       transaction.TypeExpense,
				})
				Expect(err).To(MatchError(internal.ErrInvalidAmount))
				Expect(mockRepo.created).To(BeEmpty())
			})
		})

		Context("with an unknown type", func() {
			It("should reject it and write nothing", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     100,
					Type:       transaction.Type("transfer"),
				})
				Expect(err).To(MatchError(internal.ErrInvalidType))
				Expect(mockRepo.created).To(BeEmpty())
			})
		})

		Context("with an unknown category", func() {
			It("should reject it and write nothing", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 999,
					Amount:     100,
					Type:       transaction.TypeExpense,
				})
				Expect(err).To(MatchError(internal.ErrCategoryNotFound))
				Expect(mockRepo.created).To(BeEmpty())
			})
		})

		Context("when the category type does not match", func() {
			It("should reject an expense against an income category", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 2,
					Amount:     100,
					Type:       transaction.TypeExpense,
				})
				Expect(err).To(MatchError(internal.ErrCategoryTypeMismatch))
				Expect(mockRepo.created).To(BeEmpty())
			})

			It("should reject an income against an expense category", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     100,
					Type:       transaction.TypeIncome,
				})
				Expect(err).To(MatchError(internal.ErrCategoryTypeMismatch))
				Expect(mockRepo.created).To(BeEmpty())
			})
		})

		Context("when the repository fails", func() {
			BeforeEach(func() {
				mockRepo.SetShouldFail(true, errors.New("disk full"))
			})

			It("should return the error", func() {
				_, err := service.Add(transaction.CreateTransactionDTO{
					UserID:     1,
					CategoryID: 1,
					Amount:     100,
					Type:       transaction.TypeExpense,
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("disk full"))
			})
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			now := time.Now()
			mockRepo.entries = []transaction.Entry{
				{ID: 3, Amount: 50, Type: transaction.TypeExpense, Date: now, CategoryName: "Food"},
				{ID: 2, Amount: 1000, Type: transaction.TypeIncome, Date: now.Add(-24 * time.Hour), CategoryName: "Salary"},
				{ID: 1, Amount: 30, Type: transaction.TypeExpense, Date: now.Add(-48 * time.Hour), CategoryName: "Food"},
			}
		})

		It("should return the entries", func() {
			entries, err := service.List(1, 10, transaction.Window{})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
		})

		It("should respect the limit", func() {
			entries, err := service.List(1, 2, transaction.Window{})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})

		It("should apply the window", func() {
			start := time.Now().Add(-36 * time.Hour)
			entries, err := service.List(1, 10, transaction.Window{Start: &start})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})

		Context("when the repository fails", func() {
			It("should return the error", func() {
				mockRepo.SetShouldFail(true, errors.New("database error"))
				entries, err := service.List(1, 10, transaction.Window{})
				Expect(err).To(HaveOccurred())
				Expect(entries).To(BeNil())
			})
		})
	})
})
