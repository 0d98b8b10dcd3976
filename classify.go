package tradebook

import (
	"fmt"
	"time"

	"github.com/moznion/go-optional"
)

// Classify returns the kind of a raw record from its flags.
//
// Flags are checked in a fixed order so that historical records carrying
// several of them keep their meaning: deposit, then payout, then tape reading.
// Anything else is a trade.
func Classify(r Record) Kind {
	switch {
	case r.Flag(pathIsDeposit):
		return KindDeposit
	case r.Flag(pathIsPayout):
		return KindPayout
	case r.Flag(pathIsTapeReading):
		return KindTapeReading
	default:
		return KindTrade
	}
}

// reader turns one record into a typed Entry, collecting issues on the way.
type reader struct {
	opts   Options
	now    time.Time
	index  int
	id     string
	issues []Issue
}

func (rd *reader) issue(field, format string, args ...any) {
	rd.issues = append(rd.issues, Issue{
		Index:   rd.index,
		EntryID: rd.id,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// money reads an amount. Missing amounts are zero; invalid ones are zero and reported.
func (rd *reader) money(r Record, path string) (m Money, present bool) {
	d, present, valid := r.Number(path)
	if present && !valid {
		v, _ := r.lookup(path)
		rd.issue(path, "non numeric amount %v, counted as 0", v)
	}
	minor, ok := toMinor(d, rd.opts.Currency)
	if !ok {
		rd.issue(path, "amount %s is out of range, counted as 0", d)
	}
	return Money{minor: minor, cur: rd.opts.Currency}, present
}

// flag reads a boolean flag. Numbers that are not finite read as false and are reported.
func (rd *reader) flag(r Record, path string) bool {
	v, ok := r.lookup(path)
	if !ok {
		return false
	}
	switch v.(type) {
	case bool, string:
	default:
		if _, present, valid := r.Number(path); present && !valid {
			rd.issue(path, "invalid flag %v, read as false", v)
		}
	}
	return r.Flag(path)
}

func (rd *reader) logicalDate(r Record) optional.Option[Date] {
	paths := [][3]string{
		{pathYear, pathMonth, pathDay},
		{pathNestedYear, pathNestedMonth, pathNestedDay},
	}
	for _, p := range paths {
		y, okY := r.Text(p[0])
		m, okM := r.Text(p[1])
		d, okD := r.Text(p[2])
		if !okY && !okM && !okD {
			continue
		}
		if date, ok := ParseLogicalDate(y, m, d); ok {
			return optional.Some(date)
		}
		rd.issue(p[0], "invalid logical date %q-%q-%q, ignored", y, m, d)
		return optional.None[Date]()
	}
	return optional.None[Date]()
}

func (rd *reader) read(r Record) Entry {
	rd.id = fmt.Sprintf("#%d", rd.index)
	if id, ok := r.Text(pathID); ok {
		rd.id = id
	}

	flags := 0
	for _, p := range []string{pathIsDeposit, pathIsPayout, pathIsTapeReading} {
		if rd.flag(r, p) {
			flags++
		}
	}
	kind := Classify(r)
	if flags > 1 {
		rd.issue("$", "conflicting kind flags, read as %s", kind)
	}

	loc := rd.opts.location()
	logical := rd.logicalDate(r)
	marker, hasMarker := r.Text(pathCreatedAt)
	instant := NormalizeInstant(marker, logical, rd.now, loc)
	switch {
	case instant.Source == FallbackNow:
		rd.issue(pathCreatedAt, "no usable date, placed at the reference time")
	case hasMarker && instant.Source != FromMarker:
		rd.issue(pathCreatedAt, "unparsable marker %q, using %s", marker, instant.Source)
	}

	b := baseEntry{
		id:      rd.id,
		index:   rd.index,
		instant: instant,
		logical: logical,
		date:    logical.TakeOr(DateOf(instant.Time(loc), loc)),
	}

	switch kind {
	case KindDeposit:
		amount, present := rd.money(r, pathPnL)
		if !present {
			rd.issue(pathPnL, "deposit without amount, counted as 0")
		}
		return Deposit{baseEntry: b, Amount: amount}
	case KindPayout:
		amount, present := rd.money(r, pathPnL)
		if !present {
			rd.issue(pathPnL, "payout without amount, counted as 0")
		}
		if amount.IsPositive() {
			rd.issue(pathPnL, "payout amount %s is positive, it will increase the balance", amount)
		}
		return Payout{baseEntry: b, Amount: amount}
	case KindTapeReading:
		return TapeReading{baseEntry: b, currency: rd.opts.Currency}
	}

	pnl, present := rd.money(r, pathPnL)
	if !present {
		rd.issue(pathPnL, "trade without pnl, left out of the statistics")
	}
	t := Trade{
		baseEntry:     b,
		PnL:           pnl,
		HasPnL:        present,
		ResetExcluded: rd.flag(r, pathResetExcluded),
		RR:            rd.float(r, pathRR),
		Ticker:        optional.None[string](),
		Duration:      optional.None[time.Duration](),
	}
	if minutes := rd.float(r, pathDuration); minutes.IsSome() {
		t.Duration = optional.Some(time.Duration(minutes.Unwrap() * float64(time.Minute)))
	}
	if ticker, ok := r.Text(pathTicker); ok {
		t.Ticker = optional.Some(ticker)
	}
	return t
}

// float reads an optional descriptive number. Invalid values are reported and dropped.
func (rd *reader) float(r Record, path string) optional.Option[float64] {
	f, present, valid := r.Float(path)
	if !present {
		return optional.None[float64]()
	}
	if !valid {
		v, _ := r.lookup(path)
		rd.issue(path, "non numeric value %v, ignored", v)
		return optional.None[float64]()
	}
	return optional.Some(f)
}
