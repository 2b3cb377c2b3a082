package stats_test

import (
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

// MockLedger implements stats.LedgerAPI for testing
type MockLedger struct {
	expenses   float64
	income     float64
	count      int64
	totals     []transaction.CategoryTotal
	shouldFail bool
	failError  error
}

func (m *MockLedger) TotalByType(userID int64, txType transaction.Type, w transaction.Window) (float64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	if txType == transaction.TypeIncome {
		return m.income, nil
	}
	return m.expenses, nil
}

func (m *MockLedger) CountInWindow(userID int64, w transaction.Window) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	return m.count, nil
}

func (m *MockLedger) ExpenseTotalsByCategory(userID int64, w transaction.Window) ([]transaction.CategoryTotal, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.totals, nil
}

var _ = Describe("Stats Service", func() {
	var (
		mockLedger *MockLedger
		service    *stats.Service
	)

	BeforeEach(func() {
		mockLedger = &MockLedger{
			expenses: 140,
			income:   60,
			count:    3,
			totals: []transaction.CategoryTotal{
				{CategoryID: 1, Name: "Food", Emoji: "🍔", Total: 100},
				{CategoryID: 2, Name: "Transport", Emoji: "🚌", Total: 40},
			},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = stats.NewService(mockLedger, logger)
	})

	Describe("Summary", func() {
		It("should collect all aggregates", func() {
			summary, err := service.Summary(1, transaction.Window{})
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalExpenses).To(Equal(140.0))
			Expect(summary.TotalIncome).To(Equal(60.0))
			Expect(summary.TransactionCount).To(Equal(int64(3)))
			Expect(summary.Categories).To(HaveLen(2))
		})

		Context("when the ledger fails", func() {
			It("should return the error", func() {
				mockLedger.shouldFail = true
				mockLedger.failError = errors.New("database error")

				summary, err := service.Summary(1, transaction.Window{})
				Expect(err).To(HaveOccurred())
				Expect(summary).To(BeNil())
			})
		})
	})

	Describe("Report", func() {
		It("should derive the report from the aggregates", func() {
			report, err := service.Report(1, transaction.Window{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.HasData).To(BeTrue())
			Expect(report.Balance).To(Equal(-80.0))
			Expect(report.Biggest.Name).To(Equal("Food"))
			Expect(report.Tier).To(Equal(stats.TierOverspending))
		})
	})
})
