package bot

import (
	"fmt"
	"strings"

	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
	"github.com/fintrackbot/fintrack/internal/user"
)

const (
	barSegments   = 20
	topCategories = 10
)

const helpText = `*What I can do*

➕ Add expense / 💰 Add income: record a transaction step by step
📊 Statistics: totals, category breakdown and savings rate per period
📋 History: your last 10 transactions

Commands:
/start — show the main menu
/stats — pick a statistics period
/history — last 10 transactions
/cancel — abandon the current flow
/help — this message`

func formatWelcome(account *user.User) string {
	return fmt.Sprintf("Hi, %s! 👋\n\nI track your expenses and income. Use the menu below to get started.", account.FirstName)
}

// bar renders a fixed-width fill bar out of ▰ and ▱ segments.
func bar(percent float64) string {
	filled := int(percent / 100 * barSegments)
	if filled > barSegments {
		filled = barSegments
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", barSegments-filled)
}

func formatReport(period stats.Period, report *stats.Report, currency string) string {
	if !report.HasData {
		return fmt.Sprintf("📊 *%s*\n\nNo transactions in this period yet.", period.Label())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 *%s*\n\n", period.Label())
	fmt.Fprintf(&sb, "Income: %.2f %s\n", report.TotalIncome, currency)
	fmt.Fprintf(&sb, "Expenses: %.2f %s\n", report.TotalExpenses, currency)
	fmt.Fprintf(&sb, "Balance: %+.2f %s\n", report.Balance, currency)
	fmt.Fprintf(&sb, "Transactions: %d\n", report.TransactionCount)

	if len(report.Shares) > 0 {
		sb.WriteString("\n*Expenses by category*\n")
		shares := report.Shares
		if len(shares) > topCategories {
			shares = shares[:topCategories]
		}
		for _, share := range shares {
			fmt.Fprintf(&sb, "%s %s — %.2f (%.1f%%)\n%s\n",
				share.Emoji, share.Name, share.Total, share.Percent, bar(share.Percent))
		}
	}

	if report.Biggest != nil {
		fmt.Fprintf(&sb, "\n💡 Biggest spending: %s %s (%.2f %s)\n",
			report.Biggest.Emoji, report.Biggest.Name, report.Biggest.Total, currency)
	}

	fmt.Fprintf(&sb, "\nSavings rate: %.1f%%\n%s", report.SavingsRate, savingsAdvice(report.Tier))
	return sb.String()
}

func savingsAdvice(tier stats.SavingsTier) string {
	switch tier {
	case stats.TierGood:
		return "✅ Great job, you are saving over 20% of your income."
	case stats.TierLow:
		return "⚠️ You are saving a little. Try to put aside at least 20%."
	default:
		return "🔴 You are spending more than you earn."
	}
}

func formatHistory(entries []transaction.Entry, currency string) string {
	if len(entries) == 0 {
		return "📋 No transactions yet. Add your first one from the menu!"
	}

	var expenses, income float64
	var sb strings.Builder
	sb.WriteString("📋 *Recent transactions*\n\n")
	for _, e := range entries {
		sign := "-"
		if e.Type == transaction.TypeIncome {
			sign = "+"
			income += e.Amount
		} else {
			expenses += e.Amount
		}
		fmt.Fprintf(&sb, "%s %s %s%.2f %s", e.CategoryEmoji, e.Date.Format("02.01"), sign, e.Amount, currency)
		if e.Description != "" {
			fmt.Fprintf(&sb, " · %s", e.Description)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nShown: +%.2f / -%.2f %s", income, expenses, currency)
	return sb.String()
}
