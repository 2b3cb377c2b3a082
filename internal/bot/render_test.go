package bot

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

var _ = Describe("parseAmount", func() {
	It("should accept a dot decimal separator", func() {
		amount, err := parseAmount("500.50")
		Expect(err).NotTo(HaveOccurred())
		Expect(amount).To(Equal(500.50))
	})

	It("should accept a comma decimal separator", func() {
		amount, err := parseAmount("500,50")
		Expect(err).NotTo(HaveOccurred())
		Expect(amount).To(Equal(500.50))
	})

	It("should accept whole numbers and trim whitespace", func() {
		amount, err := parseAmount("  250 ")
		Expect(err).NotTo(HaveOccurred())
		Expect(amount).To(Equal(250.0))
	})

	It("should reject non-numeric input", func() {
		_, err := parseAmount("lots")
		Expect(err).To(HaveOccurred())
	})

	It("should reject zero", func() {
		_, err := parseAmount("0")
		Expect(err).To(HaveOccurred())
	})

	It("should reject negative amounts", func() {
		_, err := parseAmount("-10")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("bar", func() {
	It("should fill proportionally out of twenty segments", func() {
		Expect(bar(50)).To(Equal(strings.Repeat("▰", 10) + strings.Repeat("▱", 10)))
	})

	It("should render an empty bar at zero", func() {
		Expect(bar(0)).To(Equal(strings.Repeat("▱", 20)))
	})

	It("should render a full bar at one hundred", func() {
		Expect(bar(100)).To(Equal(strings.Repeat("▰", 20)))
	})

	It("should clamp out-of-range values", func() {
		Expect(bar(130)).To(Equal(strings.Repeat("▰", 20)))
		Expect(bar(-5)).To(Equal(strings.Repeat("▱", 20)))
	})
})

var _ = Describe("formatReport", func() {
	Context("with data", func() {
		var text string

		BeforeEach(func() {
			report := stats.BuildReport(stats.Summary{
				TotalExpenses:    140,
				TotalIncome:      200,
				TransactionCount: 3,
				Categories: []transaction.CategoryTotal{
					{CategoryID: 1, Name: "Food", Emoji: "🍔", Total: 100},
					{CategoryID: 2, Name: "Transport", Emoji: "🚌", Total: 40},
				},
			})
			text = formatReport(stats.PeriodMonth, &report, "RUB")
		})

		It("should include the period label and totals", func() {
			Expect(text).To(ContainSubstring("Last 30 days"))
			Expect(text).To(ContainSubstring("Income: 200.00 RUB"))
			Expect(text).To(ContainSubstring("Expenses: 140.00 RUB"))
			Expect(text).To(ContainSubstring("Balance: +60.00 RUB"))
		})

		It("should render a bar per category with its share", func() {
			Expect(text).To(ContainSubstring("🍔 Food — 100.00 (71.4%)"))
			Expect(text).To(ContainSubstring("🚌 Transport — 40.00 (28.6%)"))
			Expect(strings.Count(text, "▰")).To(BeNumerically(">", 0))
		})

		It("should highlight the biggest category and the savings rate", func() {
			Expect(text).To(ContainSubstring("Biggest spending: 🍔 Food"))
			Expect(text).To(ContainSubstring("Savings rate: 30.0%"))
		})
	})

	It("should cap the breakdown at ten categories", func() {
		categories := make([]transaction.CategoryTotal, 12)
		for i := range categories {
			categories[i] = transaction.CategoryTotal{
				CategoryID: int64(i + 1),
				Name:       string(rune('A' + i)),
				Emoji:      "💸",
				Total:      float64(120 - i*10),
			}
		}
		total := 0.0
		for _, c := range categories {
			total += c.Total
		}

		report := stats.BuildReport(stats.Summary{
			TotalExpenses:    total,
			TransactionCount: 12,
			Categories:       categories,
		})
		text := formatReport(stats.PeriodAll, &report, "RUB")

		// The biggest-category insight repeats the top emoji below the
		// breakdown, so count only within the breakdown section.
		breakdown, _, found := strings.Cut(text, "Biggest spending")
		Expect(found).To(BeTrue())
		Expect(strings.Count(breakdown, "💸")).To(Equal(10))
	})

	It("should say so when the period is empty", func() {
		report := stats.BuildReport(stats.Summary{})
		text := formatReport(stats.PeriodToday, &report, "RUB")
		Expect(text).To(ContainSubstring("No transactions"))
	})
})

var _ = Describe("formatHistory", func() {
	It("should invite the user when empty", func() {
		Expect(formatHistory(nil, "RUB")).To(ContainSubstring("No transactions yet"))
	})

	It("should sign amounts by type and total them", func() {
		now := timeNow()
		text := formatHistory([]transaction.Entry{
			{ID: 2, Amount: 1000, Type: transaction.TypeIncome, Date: now, CategoryEmoji: "💰"},
			{ID: 1, Amount: 250.50, Type: transaction.TypeExpense, Date: now, CategoryEmoji: "🍔", Description: "groceries"},
		}, "RUB")

		Expect(text).To(ContainSubstring("+1000.00 RUB"))
		Expect(text).To(ContainSubstring("-250.50 RUB"))
		Expect(text).To(ContainSubstring("groceries"))
		Expect(text).To(ContainSubstring("Shown: +1000.00 / -250.50 RUB"))
	})
})
