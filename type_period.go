package tradebook

import (
	"fmt"
	"strings"
)

// Period is the granularity used to bucket journal entries.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Key returns the label of the bucket containing d.
//
// Weeks follow ISO 8601: the week holding the year's first Thursday is week 1,
// so early January days may belong to the previous year's last week.
func (p Period) Key(d Date) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return d.Format("2006-01")
	case Yearly:
		return d.Format("2006")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week", "isoweek":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
