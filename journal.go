package tradebook

import (
	"cmp"
	"slices"
	"time"
)

// Journal is an immutable, classified snapshot of one account's records.
//
// A Journal keeps no reference to the records it was built from and every
// accessor returns a fresh slice, so it can be shared freely between
// goroutines and views.
type Journal struct {
	opts    Options
	now     time.Time
	entries []Entry // input order
	issues  []Issue
}

// NewJournal classifies records into entries.
//
// now is the reference time: it places records that carry no usable date,
// and is the "today" of performance windows.
func NewJournal(records []Record, now time.Time, opts Options) *Journal {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	j := &Journal{
		opts:    opts,
		now:     now,
		entries: make([]Entry, 0, len(records)),
	}
	for i, r := range records {
		rd := reader{opts: opts, now: now, index: i}
		j.entries = append(j.entries, rd.read(r))
		j.issues = append(j.issues, rd.issues...)
	}
	return j
}

// Len returns the number of entries, of any kind.
func (j *Journal) Len() int { return len(j.entries) }

// IsEmpty reports whether the journal holds no entry at all.
func (j *Journal) IsEmpty() bool { return len(j.entries) == 0 }

// Options returns the options the journal was read with.
func (j *Journal) Options() Options { return j.opts }

// Now returns the reference time of the journal.
func (j *Journal) Now() time.Time { return j.now }

// Today returns the reference day in the journal's location.
func (j *Journal) Today() Date { return DateOf(j.now, j.opts.location()) }

// Entries returns the entries in input order.
func (j *Journal) Entries() []Entry { return slices.Clone(j.entries) }

// Issues returns the data-quality issues found while reading the records.
func (j *Journal) Issues() []Issue { return slices.Clone(j.issues) }

func (j *Journal) zero() Money { return Money{cur: j.opts.Currency} }

// Chronological returns the entries sorted by normalized instant.
// Entries sharing an instant keep their input order.
func (j *Journal) Chronological() []Entry {
	sorted := slices.Clone(j.entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return a.Instant().Compare(b.Instant())
	})
	return sorted
}

// Trades returns the counted trades (not reset-excluded, with a pnl) in input order.
func (j *Journal) Trades() []Trade {
	var trades []Trade
	for _, e := range j.entries {
		if t, ok := e.(Trade); ok && t.Counted() {
			trades = append(trades, t)
		}
	}
	return trades
}

// TradesByDate returns the counted trades sorted by effective date.
// Trades on the same day are ordered by instant, then input position.
func (j *Journal) TradesByDate() []Trade {
	trades := j.Trades()
	slices.SortStableFunc(trades, func(a, b Trade) int {
		if c := a.Date().Compare(b.Date()); c != 0 {
			return c
		}
		if c := a.Instant().Compare(b.Instant()); c != 0 {
			return c
		}
		return cmp.Compare(a.Index(), b.Index())
	})
	return trades
}

// Deposits returns the deposits in input order.
func (j *Journal) Deposits() []Deposit {
	var deposits []Deposit
	for _, e := range j.entries {
		if d, ok := e.(Deposit); ok {
			deposits = append(deposits, d)
		}
	}
	return deposits
}

// Filter returns a journal restricted to the entries for which keep returns true.
func (j *Journal) Filter(keep func(Entry) bool) *Journal {
	f := &Journal{opts: j.opts, now: j.now}
	kept := make(map[int]bool)
	for _, e := range j.entries {
		if keep(e) {
			f.entries = append(f.entries, e)
			kept[e.Index()] = true
		}
	}
	for _, i := range j.issues {
		if kept[i.Index] {
			f.issues = append(f.issues, i)
		}
	}
	return f
}

// Year returns a journal restricted to entries whose effective date falls in year.
// AllYears returns j itself.
func (j *Journal) Year(year int) *Journal {
	if year == AllYears {
		return j
	}
	return j.Filter(func(e Entry) bool { return e.Date().Year() == year })
}

// Years returns the distinct years of the entries' effective dates, ascending.
func (j *Journal) Years() []int {
	var years []int
	for _, e := range j.entries {
		years = append(years, e.Date().Year())
	}
	slices.Sort(years)
	return slices.Compact(years)
}
