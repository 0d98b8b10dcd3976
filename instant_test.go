package tradebook

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
)

func TestParseMarker(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("no tz database: %v", err)
	}
	testCases := []struct {
		name   string
		marker string
		want   time.Time
		ok     bool
	}{
		{
			name:   "tag suffix is stripped",
			marker: "2025-01-06T03:43:47.677Z-u38k53",
			want:   time.Date(2025, time.January, 6, 3, 43, 47, 677_000_000, time.UTC),
			ok:     true,
		},
		{
			name:   "no tag",
			marker: "2025-01-06T03:43:47.677Z",
			want:   time.Date(2025, time.January, 6, 3, 43, 47, 677_000_000, time.UTC),
			ok:     true,
		},
		{
			name:   "zone offset is kept when the prefix does not parse",
			marker: "2025-01-06T03:43:47+01:00",
			want:   time.Date(2025, time.January, 6, 2, 43, 47, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "negative offset splits into a local time",
			marker: "2025-01-06T03:43:47-05:00",
			want:   time.Date(2025, time.January, 6, 3, 43, 47, 0, paris),
			ok:     true,
		},
		{
			name:   "tag with hyphens is not stripped",
			marker: "2025-01-06T03:43:47.677Z-ab-cd",
			ok:     false,
		},
		{
			name:   "bare date",
			marker: "2025-01-06",
			want:   time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{name: "garbage", marker: "yesterday-ish", ok: false},
		{name: "empty", marker: "   ", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseMarker(tc.marker, paris)
			if ok != tc.ok {
				t.Fatalf("ParseMarker(%q) ok = %v, want %v", tc.marker, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ParseMarker(%q) = %v, want %v", tc.marker, got, tc.want)
			}
		})
	}
}

func TestParseLogicalDate(t *testing.T) {
	testCases := []struct {
		y, m, d string
		want    Date
		ok      bool
	}{
		{"2025", "1", "6", NewDate(2025, time.January, 6), true},
		{" 2025", "01 ", "06", NewDate(2025, time.January, 6), true},
		{"2024", "2", "29", NewDate(2024, time.February, 29), true},
		{"2025", "2", "29", Date{}, false},
		{"2025", "13", "1", Date{}, false},
		{"2025", "0", "1", Date{}, false},
		{"2025", "1", "0", Date{}, false},
		{"2025", "1", "6.5", Date{}, false},
		{"twenty", "1", "6", Date{}, false},
		{"", "", "", Date{}, false},
	}
	for _, tc := range testCases {
		got, ok := ParseLogicalDate(tc.y, tc.m, tc.d)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseLogicalDate(%q, %q, %q) = %v, %v, want %v, %v", tc.y, tc.m, tc.d, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeInstant(t *testing.T) {
	logical := optional.Some(NewDate(2025, time.January, 3))
	testCases := []struct {
		name    string
		marker  string
		logical optional.Option[Date]
		want    Instant
	}{
		{
			name:    "marker wins",
			marker:  "2025-01-06T03:43:47.677Z-u38k53",
			logical: logical,
			want:    Instant{UnixMilli: time.Date(2025, 1, 6, 3, 43, 47, 677_000_000, time.UTC).UnixMilli(), Source: FromMarker},
		},
		{
			name:    "logical date at local midnight",
			marker:  "not a date",
			logical: logical,
			want:    Instant{UnixMilli: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC).UnixMilli(), Source: FromLogicalDate},
		},
		{
			name:    "fallback now",
			logical: optional.None[Date](),
			want:    Instant{UnixMilli: refNow.UnixMilli(), Source: FallbackNow},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeInstant(tc.marker, tc.logical, refNow, utc); got != tc.want {
				t.Errorf("NormalizeInstant() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
