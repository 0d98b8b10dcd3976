package tradebook

import (
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
)

// Provenance tells which source an entry's instant was taken from.
type Provenance int

const (
	FromMarker      Provenance = iota // parsed from the creation marker
	FromLogicalDate                   // midnight of the logical date
	FallbackNow                       // neither source was usable
)

func (p Provenance) String() string {
	switch p {
	case FromMarker:
		return "marker"
	case FromLogicalDate:
		return "logical-date"
	case FallbackNow:
		return "fallback-now"
	default:
		return "unknown"
	}
}

// MarshalText writes the provenance by name.
func (p Provenance) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Instant is the normalized, totally ordered position of an entry in time.
type Instant struct {
	UnixMilli int64      `json:"unixMilli"`
	Source    Provenance `json:"source"`
}

// Time returns the instant as a time.Time in loc.
func (i Instant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(i.UnixMilli).In(loc)
}

// Compare orders instants by time only; the source does not take part.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.UnixMilli < j.UnixMilli:
		return -1
	case i.UnixMilli > j.UnixMilli:
		return 1
	}
	return 0
}

// markerTagMinIndex is the smallest index at which a '-' can start the random
// tag of a marker; hyphens before it belong to the date itself.
const markerTagMinIndex = 10

// layouts accepted for creation markers. Layouts without a zone are read in
// the caller's location.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04",
	}
)

// ParseMarker extracts the instant of a creation marker such as
// "2025-01-06T03:43:47.677Z-u38k53".
//
// The random tag, if any, starts at the last '-' found after index 10. The part
// before it is tried first, then the whole marker.
func ParseMarker(marker string, loc *time.Location) (time.Time, bool) {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return time.Time{}, false
	}
	if i := strings.LastIndex(marker, "-"); i > markerTagMinIndex {
		if t, ok := parseISO(marker[:i], loc); ok {
			return t, true
		}
	}
	return parseISO(marker, loc)
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	// a bare ISO date is a UTC instant
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseLogicalDate reads a (year, month, day) triple carried as text.
// All three parts must be integers and form a real calendar day.
func ParseLogicalDate(year, month, day string) (Date, bool) {
	y, ok1 := atoi(year)
	m, ok2 := atoi(month)
	d, ok3 := atoi(day)
	if !ok1 || !ok2 || !ok3 {
		return Date{}, false
	}
	if y < 1 || y > 9999 || m < 1 || m > 12 || d < 1 {
		return Date{}, false
	}
	date := NewDate(y, time.Month(m), d)
	if date.Day() != d {
		// NewDate normalized an overflowing day (e.g. February 30th).
		return Date{}, false
	}
	return date, true
}

// NormalizeInstant resolves an entry's instant from its marker, then its
// logical date, and finally now. It never fails.
func NormalizeInstant(marker string, logical optional.Option[Date], now time.Time, loc *time.Location) Instant {
	if t, ok := ParseMarker(marker, loc); ok {
		return Instant{UnixMilli: t.UnixMilli(), Source: FromMarker}
	}
	if logical.IsSome() {
		return Instant{UnixMilli: logical.Unwrap().Midnight(loc).UnixMilli(), Source: FromLogicalDate}
	}
	return Instant{UnixMilli: now.UnixMilli(), Source: FallbackNow}
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
