package stats_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fintrackbot/fintrack/internal/stats"
)

var _ = Describe("WindowFor", func() {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.Local)

	It("should start today's window at local midnight", func() {
		w := stats.WindowFor(stats.PeriodToday, now)
		Expect(w.Start).NotTo(BeNil())
		Expect(*w.Start).To(Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)))
		Expect(*w.End).To(Equal(now))
	})

	It("should count the week window back seven days", func() {
		w := stats.WindowFor(stats.PeriodWeek, now)
		Expect(*w.Start).To(Equal(now.AddDate(0, 0, -7)))
	})

	It("should count the month window back thirty days", func() {
		w := stats.WindowFor(stats.PeriodMonth, now)
		Expect(*w.Start).To(Equal(now.AddDate(0, 0, -30)))
	})

	It("should count the year window back 365 days", func() {
		w := stats.WindowFor(stats.PeriodYear, now)
		Expect(*w.Start).To(Equal(now.AddDate(0, 0, -365)))
	})

	It("should leave the all-time window unbounded below", func() {
		w := stats.WindowFor(stats.PeriodAll, now)
		Expect(w.Start).To(BeNil())
		Expect(*w.End).To(Equal(now))
	})

	It("should contain a moment earlier today but not yesterday", func() {
		w := stats.WindowFor(stats.PeriodToday, now)
		Expect(w.Contains(now.Add(-time.Hour))).To(BeTrue())
		Expect(w.Contains(now.AddDate(0, 0, -1))).To(BeFalse())
	})
})

var _ = Describe("Period", func() {
	It("should accept the known periods", func() {
		for _, p := range []stats.Period{stats.PeriodToday, stats.PeriodWeek, stats.PeriodMonth, stats.PeriodYear, stats.PeriodAll} {
			Expect(p.Valid()).To(BeTrue())
		}
	})

	It("should reject unknown periods", func() {
		Expect(stats.Period("quarter").Valid()).To(BeFalse())
	})
})
