package tradebook

// CalendarDay is one cell of a month calendar. Padding cells, outside the
// month, have a zero Date.
type CalendarDay struct {
	Date   Date   `json:"date,omitzero"`
	Bucket Bucket `json:"bucket"`
}

// InMonth reports whether the cell belongs to the month (it is not padding).
func (c CalendarDay) InMonth() bool { return !c.Date.IsZero() }

// CalendarMonth lays the daily results of one month out in weeks.
type CalendarMonth struct {
	Month Range           `json:"-"`
	Label string          `json:"label"` // e.g. "2025-01"
	Weeks [][]CalendarDay `json:"weeks"` // 7 cells each, starting on the journal's week start
	Total Bucket          `json:"total"`
}

// NewCalendarMonth builds the calendar of the month containing day.
func NewCalendarMonth(j *Journal, day Date) CalendarMonth {
	month := Monthly.Range(day)
	daily := NewBuckets(j, Daily)
	c := CalendarMonth{
		Month: month,
		Label: Monthly.Key(day),
		Total: NewBuckets(j, Monthly).Get(Monthly.Key(day)),
	}
	if c.Total.PnL.cur == "" {
		c.Total.PnL = j.zero()
	}

	ws := j.Options().WeekStart
	grid := NewRange(month.From.StartOfWeek(ws), month.To.StartOfWeek(ws).Add(6))
	var week []CalendarDay
	for d := range grid.Days() {
		var cell CalendarDay
		if month.Contains(d) {
			cell = CalendarDay{Date: d, Bucket: daily.Get(Daily.Key(d))}
			if cell.Bucket.PnL.cur == "" {
				cell.Bucket.PnL = j.zero()
			}
		}
		week = append(week, cell)
		if len(week) == 7 {
			c.Weeks = append(c.Weeks, week)
			week = nil
		}
	}
	return c
}
