package tradebook

import "time"

// Snapshot gathers every analytics output of a journal.
type Snapshot struct {
	Stats       Stats       `json:"stats"`
	Equity      EquityCurve `json:"equity"`
	Streaks     Streaks     `json:"streaks"`
	Performance Performance `json:"performance"`
	Issues      []Issue     `json:"issues,omitempty"`
}

// Analyze computes the snapshot of records as of now.
//
// It returns nil when there are no records, so callers can show an empty
// state. Analyze holds no state between calls: records are only read, and the
// result shares no memory with them.
func Analyze(records []Record, now time.Time, opts Options) *Snapshot {
	return NewSnapshot(NewJournal(records, now, opts))
}

// NewSnapshot computes the snapshot of an already classified journal, nil when it is empty.
func NewSnapshot(j *Journal) *Snapshot {
	if j.IsEmpty() {
		return nil
	}
	return &Snapshot{
		Stats:       NewStats(j),
		Equity:      NewEquityCurve(j),
		Streaks:     NewStreaks(j),
		Performance: NewPerformance(j),
		Issues:      j.Issues(),
	}
}
