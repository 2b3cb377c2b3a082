package stats

import (
	"time"

	"github.com/fintrackbot/fintrack/internal/transaction"
)

// Period names a reporting window relative to the current moment.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "Last 7 days"
	case PeriodMonth:
		return "Last 30 days"
	case PeriodYear:
		return "Last year"
	default:
		return "All time"
	}
}

// WindowFor resolves a period into a concrete window ending at now.
// "Today" starts at local midnight; the rolling periods count back whole
// days; "all" leaves the lower bound open.
func WindowFor(p Period, now time.Time) transaction.Window {
	var start time.Time
	switch p {
	case PeriodToday:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, 0, -30)
	case PeriodYear:
		start = now.AddDate(0, 0, -365)
	default:
		return transaction.Window{End: &now}
	}
	return transaction.Window{Start: &start, End: &now}
}
