package tradebook

import (
	"fmt"
	"time"
)

// AllYears selects every year in a report.
const AllYears = 0

// Options tune how a journal is interpreted.
type Options struct {
	// Currency of every amount in the journal.
	Currency string
	// Location is the time zone of the trader; days, weeks and months are cut in it.
	Location *time.Location
	// WeekStart is the first day of the calendar week used by the "week" performance window.
	// Buckets always use ISO weeks.
	WeekStart time.Weekday
	// Year restricts capital performance to one year, AllYears for no restriction.
	Year int
}

// DefaultOptions returns options for a USD journal in the local time zone with Monday-based weeks.
func DefaultOptions() Options {
	return Options{
		Currency:  DefaultCurrency,
		Location:  time.Local,
		WeekStart: time.Monday,
		Year:      AllYears,
	}
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Issue is a data-quality problem found while reading a record.
// Issues never stop the analysis; the offending value is replaced by a default.
type Issue struct {
	Index   int    // position of the record in the input
	EntryID string // id of the record, if any
	Field   string // JSON path of the offending field
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("record #%d (%s) %s: %s", i.Index, i.EntryID, i.Field, i.Message)
}

func (i Issue) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", i.Index)
	w.Optional("entryId", i.EntryID)
	w.Append("field", i.Field)
	w.Append("message", i.Message)
	return w.MarshalJSON()
}
