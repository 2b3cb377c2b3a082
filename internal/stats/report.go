package stats

// Savings rate thresholds, in percent of income.
const (
	savingsRateGood = 20.0
)

// BuildReport derives the presentation figures from raw aggregates. It
// is pure: no storage, no clock.
func BuildReport(summary Summary) Report {
	report := Report{
		Summary: summary,
		HasData: summary.TransactionCount > 0,
		Balance: summary.TotalIncome - summary.TotalExpenses,
	}
	if !report.HasData {
		return report
	}

	if summary.TotalExpenses > 0 {
		report.Shares = make([]CategoryShare, 0, len(summary.Categories))
		for _, total := range summary.Categories {
			report.Shares = append(report.Shares, CategoryShare{
				CategoryTotal: total,
				Percent:       total.Total / summary.TotalExpenses * 100,
			})
		}
	}
	if len(summary.Categories) > 0 {
		biggest := summary.Categories[0]
		report.Biggest = &biggest
	}

	switch {
	case summary.TotalIncome > 0:
		report.SavingsRate = (summary.TotalIncome - summary.TotalExpenses) / summary.TotalIncome * 100
	case summary.TotalExpenses > 0:
		// Spending with no recorded income reads as fully overspent.
		report.SavingsRate = -100
	}

	switch {
	case report.SavingsRate > savingsRateGood:
		report.Tier = TierGood
	case report.SavingsRate > 0:
		report.Tier = TierLow
	default:
		report.Tier = TierOverspending
	}

	return report
}
