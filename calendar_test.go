package tradebook

import (
	"testing"
	"time"
)

func TestCalendarMonth(t *testing.T) {
	j := journalOf(
		trade("a", "2025-01-01", 10),
		trade("b", "2025-01-01", -4),
		trade("c", "2025-01-31", 7),
		trade("other", "2025-02-01", 100),
	)
	c := NewCalendarMonth(j, NewDate(2025, time.January, 15))
	if c.Label != "2025-01" {
		t.Errorf("Label = %q, want 2025-01", c.Label)
	}
	if len(c.Weeks) != 5 {
		t.Fatalf("len(Weeks) = %d, want 5", len(c.Weeks))
	}
	// 2025-01-01 is a Wednesday
	first := c.Weeks[0]
	if first[0].InMonth() || first[1].InMonth() {
		t.Errorf("Monday and Tuesday of the first week should be padding: %v", first[:2])
	}
	if got := first[2]; got.Date != NewDate(2025, time.January, 1) || got.Bucket.Trades != 2 || !got.Bucket.PnL.Equal(USD(6)) {
		t.Errorf("first day = %+v, want 2 trades for 6", got)
	}
	last := c.Weeks[4]
	if got := last[4]; got.Date != NewDate(2025, time.January, 31) || !got.Bucket.PnL.Equal(USD(7)) {
		t.Errorf("last day = %+v", got)
	}
	if last[5].InMonth() || last[6].InMonth() {
		t.Errorf("February days should be padding")
	}
	if quiet := c.Weeks[1][0]; !quiet.InMonth() || quiet.Bucket.Trades != 0 || !quiet.Bucket.PnL.Equal(USD(0)) {
		t.Errorf("a day without trades = %+v, want an empty USD bucket", quiet)
	}
	if c.Total.Trades != 3 || !c.Total.PnL.Equal(USD(13)) {
		t.Errorf("Total = %+v, want 3 trades for 13", c.Total)
	}
}

func TestCalendarMonthSundayStart(t *testing.T) {
	opts := testOptions()
	opts.WeekStart = time.Sunday
	c := NewCalendarMonth(NewJournal(nil, refNow, opts), NewDate(2025, time.January, 1))
	if len(c.Weeks) != 5 {
		t.Fatalf("len(Weeks) = %d, want 5", len(c.Weeks))
	}
	if got := c.Weeks[0][3].Date; got != NewDate(2025, time.January, 1) {
		t.Errorf("Weeks[0][3] = %v, want 2025-01-01", got)
	}
	if !c.Total.PnL.Equal(USD(0)) || c.Total.Trades != 0 {
		t.Errorf("Total = %+v, want empty", c.Total)
	}
}

func TestCalendarMonthSixWeeks(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday.
	c := NewCalendarMonth(journalOf(), NewDate(2025, time.March, 10))
	if len(c.Weeks) != 6 {
		t.Fatalf("len(Weeks) = %d, want 6", len(c.Weeks))
	}
	for i, w := range c.Weeks {
		if len(w) != 7 {
			t.Errorf("len(Weeks[%d]) = %d, want 7", i, len(w))
		}
	}
	if got := c.Weeks[0][5].Date; got != NewDate(2025, time.March, 1) {
		t.Errorf("Weeks[0][5] = %v, want 2025-03-01", got)
	}
	if got := c.Weeks[5][0].Date; got != NewDate(2025, time.March, 31) {
		t.Errorf("Weeks[5][0] = %v, want 2025-03-31", got)
	}
}
