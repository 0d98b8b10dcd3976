package renderer

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/etnz/tradebook"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"ret":      ret,
	"goal":     func() string { return tradebook.MonthlyGoal.String() },
	"weekdays": weekdays,
	"cell":     cell,
}

// ret formats the return of a window, "-" when it had no trade.
func ret(p tradebook.PeriodPerformance) string {
	if !p.HasTrades {
		return "-"
	}
	return p.Percentage.SignedString()
}

// weekdays returns the short day names of the calendar columns.
func weekdays(c tradebook.CalendarMonth) []string {
	first := firstWeekday(c)
	names := make([]string, 7)
	for i := range names {
		names[i] = ((first + time.Weekday(i) + 7) % 7).String()[:3]
	}
	return names
}

// firstWeekday finds the weekday of the first column from any day of the month.
func firstWeekday(c tradebook.CalendarMonth) time.Weekday {
	for _, week := range c.Weeks {
		for i, day := range week {
			if day.InMonth() {
				return day.Date.Weekday() - time.Weekday(i)
			}
		}
	}
	return time.Monday
}

// cell formats one calendar day: its number, then its pnl and trade count when it had trades.
func cell(d tradebook.CalendarDay) string {
	switch {
	case !d.InMonth():
		return ""
	case d.Bucket.Trades == 0:
		return fmt.Sprintf("%d", d.Date.Day())
	default:
		return fmt.Sprintf("%d<br>%s (%d)", d.Date.Day(), d.Bucket.PnL.SignedString(), d.Bucket.Trades)
	}
}
