package tradebook

import (
	"testing"
	"time"
)

func TestPerformance(t *testing.T) {
	// Scenario: deposit 1000, win 200, lose 50.
	p := NewPerformance(journalOf(
		deposit("d", "2025-01-01", 1000),
		trade("a", "2025-01-02", 200),
		trade("b", "2025-01-03", -50),
	))
	if !p.OriginalCapital.Equal(USD(1000)) {
		t.Errorf("OriginalCapital = %v, want 1000", p.OriginalCapital)
	}
	if got := p.Overall.Percentage.String(); got != "15.00%" {
		t.Errorf("Overall = %s, want 15.00%%", got)
	}
	if p.Overall.Percentage != 15 {
		t.Errorf("Overall = %v, want exactly 15", float64(p.Overall.Percentage))
	}
	if !p.Month.HasTrades || p.Month.Percentage != 15 || p.Month.Trades != 2 {
		t.Errorf("Month = %+v, want 2 trades at 15%%", p.Month)
	}
	if p.Day.HasTrades || p.Day.Percentage != 0 {
		t.Errorf("Day = %+v, want no trades", p.Day)
	}
	if p.GoalProgress != 75 {
		t.Errorf("GoalProgress = %v, want 75", p.GoalProgress)
	}
	if want := NewDate(2025, time.January, 15); p.On != want {
		t.Errorf("On = %v, want %v", p.On, want)
	}
}

func TestPerformanceMonthWithoutTrades(t *testing.T) {
	p := NewPerformance(journalOf(
		deposit("d", "2024-12-01", 1000),
		trade("a", "2024-12-10", 100),
	))
	if p.Month.HasTrades || p.Month.Percentage != 0 || p.GoalProgress != 0 {
		t.Errorf("Month = %+v, GoalProgress = %v, want no trades, 0%%, 0", p.Month, p.GoalProgress)
	}
	if p.Overall.Percentage != 10 {
		t.Errorf("Overall = %v, want 10", p.Overall.Percentage)
	}
}

func TestPerformanceWindows(t *testing.T) {
	records := []Record{
		deposit("d", "2025-01-01", 1000),
		trade("sun", "2025-01-12", 10),
		trade("mon", "2025-01-13", 20),
		trade("wed", "2025-01-15", 30),
		trade("next", "2025-01-20", 1000), // after the reference day
	}
	testCases := []struct {
		start time.Weekday
		week  Percent
	}{
		{time.Monday, 5},
		{time.Sunday, 6},
	}
	for _, tc := range testCases {
		t.Run(tc.start.String(), func(t *testing.T) {
			opts := testOptions()
			opts.WeekStart = tc.start
			p := NewPerformance(NewJournal(records, refNow, opts))
			if p.Day.Percentage != 3 {
				t.Errorf("Day = %v, want 3", p.Day.Percentage)
			}
			if p.Week.Percentage != tc.week {
				t.Errorf("Week = %v, want %v", p.Week.Percentage, tc.week)
			}
			// the month window spans the whole month, days after the reference included
			if p.Month.Percentage != 106 || p.Month.Trades != 4 {
				t.Errorf("Month = %+v, want 4 trades at 106%%", p.Month)
			}
		})
	}
}

func TestPerformanceGoalProgress(t *testing.T) {
	testCases := []struct {
		pnl  float64
		want Percent
	}{
		{100, 50},
		{200, 100},
		{300, 100},
		{-100, 0},
	}
	for _, tc := range testCases {
		p := NewPerformance(journalOf(
			deposit("d", "2025-01-01", 1000),
			trade("a", "2025-01-02", tc.pnl),
		))
		if p.GoalProgress != tc.want {
			t.Errorf("pnl %v: GoalProgress = %v, want %v", tc.pnl, p.GoalProgress, tc.want)
		}
	}
}

func TestPerformanceZeroCapital(t *testing.T) {
	p := NewPerformance(journalOf(
		trade("a", "2025-01-15", 100),
		trade("b", "2025-01-14", -30),
		payout("p", "2025-01-14", -50),
	))
	for name, w := range map[string]PeriodPerformance{"day": p.Day, "week": p.Week, "month": p.Month, "overall": p.Overall} {
		if w.Percentage != 0 {
			t.Errorf("%s percentage = %v, want 0", name, w.Percentage)
		}
		if !w.HasTrades {
			t.Errorf("%s should have trades", name)
		}
	}
	if p.GoalProgress != 0 {
		t.Errorf("GoalProgress = %v, want 0", p.GoalProgress)
	}
}

func TestPerformanceYear(t *testing.T) {
	records := []Record{
		deposit("d24", "2024-01-02", 1000),
		trade("a", "2024-06-01", 100),
		deposit("d25", "2025-01-02", 500),
		trade("b", "2025-01-03", 50),
	}
	opts := testOptions()
	opts.Year = 2025
	p := NewPerformance(NewJournal(records, refNow, opts))
	if !p.OriginalCapital.Equal(USD(500)) {
		t.Errorf("OriginalCapital = %v, want 500", p.OriginalCapital)
	}
	if p.Overall.Percentage != 10 || p.Overall.Trades != 1 {
		t.Errorf("Overall = %+v, want 1 trade at 10%%", p.Overall)
	}

	all := NewPerformance(journalOf(records...))
	if !all.OriginalCapital.Equal(USD(1500)) || all.Overall.Percentage != 10 {
		t.Errorf("all years: capital %v, overall %v, want 1500, 10", all.OriginalCapital, all.Overall.Percentage)
	}
}
