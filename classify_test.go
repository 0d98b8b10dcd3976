package tradebook

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		record Record
		want   Kind
	}{
		{"no flag", Record{"pnl": num(10)}, KindTrade},
		{"deposit", Record{"isDeposit": true}, KindDeposit},
		{"payout as text", Record{"isPayout": "yes"}, KindPayout},
		{"tape reading as number", Record{"isTapeReading": num(1)}, KindTapeReading},
		{"false flags", Record{"isDeposit": false, "isPayout": "false", "isTapeReading": num(0)}, KindTrade},
		{"deposit beats payout", Record{"isDeposit": true, "isPayout": true}, KindDeposit},
		{"payout beats tape reading", Record{"isPayout": true, "isTapeReading": true}, KindPayout},
		{"all flags", Record{"isDeposit": true, "isPayout": true, "isTapeReading": true}, KindDeposit},
		{"nil record", nil, KindTrade},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.record); got != tc.want {
				t.Errorf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}

// readOne classifies a single record and returns its entry and issues.
func readOne(r Record) (Entry, []Issue) {
	j := journalOf(r)
	return j.Entries()[0], j.Issues()
}

func hasIssue(issues []Issue, field, fragment string) bool {
	for _, i := range issues {
		if i.Field == field && strings.Contains(i.Message, fragment) {
			return true
		}
	}
	return false
}

func TestReadTrade(t *testing.T) {
	r := with(trade("t1", "2025-01-06", 125.5),
		"rr", num(2.5),
		"duration", "90",
		"ticker", " NQ ",
		"isResetExcluded", false,
	)
	e, issues := readOne(r)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	tr, ok := e.(Trade)
	if !ok {
		t.Fatalf("entry is a %T, want Trade", e)
	}
	if got, want := tr.PnL, USD(125.5); !got.Equal(want) {
		t.Errorf("PnL = %v, want %v", got, want)
	}
	if !tr.HasPnL || !tr.Counted() {
		t.Errorf("trade should be counted")
	}
	if got := tr.RR.TakeOr(0); got != 2.5 {
		t.Errorf("RR = %v, want 2.5", got)
	}
	if got := tr.Duration.TakeOr(0); got != 90*time.Minute {
		t.Errorf("Duration = %v, want 1h30m", got)
	}
	if got := tr.Ticker.TakeOr(""); got != "NQ" {
		t.Errorf("Ticker = %q, want NQ", got)
	}
	if got, want := tr.Date(), NewDate(2025, time.January, 6); got != want {
		t.Errorf("Date = %v, want %v", got, want)
	}
	if tr.Instant().Source != FromMarker {
		t.Errorf("Instant source = %v, want marker", tr.Instant().Source)
	}
}

func TestReadIssues(t *testing.T) {
	testCases := []struct {
		name     string
		record   Record
		field    string
		fragment string
		check    func(t *testing.T, e Entry)
	}{
		{
			name:     "missing pnl",
			record:   Record{"id": "a", "createdAt": marker("2025-01-06")},
			field:    "$.pnl",
			fragment: "without pnl",
			check: func(t *testing.T, e Entry) {
				tr := e.(Trade)
				if tr.HasPnL || tr.Counted() {
					t.Errorf("a trade without pnl should not be counted")
				}
			},
		},
		{
			name:     "non numeric pnl",
			record:   Record{"id": "a", "createdAt": marker("2025-01-06"), "pnl": "lots"},
			field:    "$.pnl",
			fragment: "non numeric",
			check: func(t *testing.T, e Entry) {
				tr := e.(Trade)
				if !tr.HasPnL || !tr.PnL.IsZero() {
					t.Errorf("non numeric pnl should count as a present 0, got %v (present %v)", tr.PnL, tr.HasPnL)
				}
			},
		},
		{
			name:     "deposit without amount",
			record:   Record{"id": "d", "createdAt": marker("2025-01-06"), "isDeposit": true},
			field:    "$.pnl",
			fragment: "deposit without amount",
		},
		{
			name:     "positive payout",
			record:   payout("p", "2025-01-06", 100),
			field:    "$.pnl",
			fragment: "is positive",
			check: func(t *testing.T, e Entry) {
				if got := e.Change(); !got.Equal(USD(100)) {
					t.Errorf("a positive payout is kept as is, got %v", got)
				}
			},
		},
		{
			name:     "conflicting flags",
			record:   with(deposit("d", "2025-01-06", 100), "isPayout", true),
			field:    "$",
			fragment: "conflicting",
			check: func(t *testing.T, e Entry) {
				if e.Kind() != KindDeposit {
					t.Errorf("Kind = %v, want deposit", e.Kind())
				}
			},
		},
		{
			name:     "invalid logical date",
			record:   with(trade("a", "2025-01-06", 1), "year", "2025", "month", "2", "day", "30"),
			field:    "$.year",
			fragment: "invalid logical date",
			check: func(t *testing.T, e Entry) {
				if got, want := e.Date(), NewDate(2025, time.January, 6); got != want {
					t.Errorf("Date = %v, want the marker's day %v", got, want)
				}
			},
		},
		{
			name:     "unparsable marker",
			record:   Record{"id": "a", "createdAt": "sometime", "year": num(2025), "month": num(1), "day": num(3), "pnl": num(1)},
			field:    "$.createdAt",
			fragment: "unparsable marker",
			check: func(t *testing.T, e Entry) {
				if got := e.Instant().Source; got != FromLogicalDate {
					t.Errorf("Source = %v, want logical-date", got)
				}
			},
		},
		{
			name:     "no date",
			record:   Record{"id": "a", "pnl": num(1)},
			field:    "$.createdAt",
			fragment: "no usable date",
			check: func(t *testing.T, e Entry) {
				if got := e.Instant().Source; got != FallbackNow {
					t.Errorf("Source = %v, want fallback-now", got)
				}
				if got, want := e.Date(), NewDate(2025, time.January, 15); got != want {
					t.Errorf("Date = %v, want reference day %v", got, want)
				}
			},
		},
		{
			name:     "non numeric rr",
			record:   with(trade("a", "2025-01-06", 1), "rr", "high"),
			field:    "$.rr",
			fragment: "ignored",
			check: func(t *testing.T, e Entry) {
				if e.(Trade).RR.IsSome() {
					t.Errorf("invalid rr should be dropped")
				}
			},
		},
		{
			name:     "NaN pnl",
			record:   Record{"id": "a", "createdAt": marker("2025-01-06"), "pnl": math.NaN()},
			field:    "$.pnl",
			fragment: "non numeric",
			check:    wantZeroPnL,
		},
		{
			name:     "infinite pnl",
			record:   Record{"id": "a", "createdAt": marker("2025-01-06"), "pnl": math.Inf(-1)},
			field:    "$.pnl",
			fragment: "non numeric",
			check:    wantZeroPnL,
		},
		{
			name:     "pnl out of range",
			record:   trade("a", "2025-01-06", 1e20),
			field:    "$.pnl",
			fragment: "out of range",
			check:    wantZeroPnL,
		},
		{
			name:     "infinite deposit flag",
			record:   with(trade("a", "2025-01-06", 10), "isDeposit", math.Inf(1)),
			field:    "$.isDeposit",
			fragment: "invalid flag",
			check: func(t *testing.T, e Entry) {
				if e.Kind() != KindTrade {
					t.Errorf("Kind = %v, want trade", e.Kind())
				}
			},
		},
		{
			name:     "NaN reset flag",
			record:   with(trade("a", "2025-01-06", 10), "isResetExcluded", math.NaN()),
			field:    "$.isResetExcluded",
			fragment: "invalid flag",
			check: func(t *testing.T, e Entry) {
				if e.(Trade).ResetExcluded {
					t.Errorf("a NaN flag should read as false")
				}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, issues := readOne(tc.record)
			if !hasIssue(issues, tc.field, tc.fragment) {
				t.Errorf("missing issue on %s containing %q, got %v", tc.field, tc.fragment, issues)
			}
			if tc.check != nil {
				tc.check(t, e)
			}
		})
	}
}

func wantZeroPnL(t *testing.T, e Entry) {
	t.Helper()
	tr := e.(Trade)
	if !tr.HasPnL || !tr.PnL.IsZero() {
		t.Errorf("PnL = %v (present %v), want a present 0", tr.PnL, tr.HasPnL)
	}
}

// Amounts that cannot be read never stop the analysis.
func TestAnalyzeNonFiniteAmounts(t *testing.T) {
	records := []Record{
		deposit("d", "2025-01-01", 1000),
		{"id": "nan", "createdAt": marker("2025-01-02"), "pnl": math.NaN()},
		{"id": "inf", "createdAt": marker("2025-01-03"), "pnl": 50.0, "isDeposit": math.Inf(1)},
		trade("huge", "2025-01-04", 1e20),
	}
	s := Analyze(records, refNow, testOptions())
	if s == nil {
		t.Fatal("Analyze() = nil")
	}
	if want := USD(1050); !s.Equity.Balance.Equal(want) {
		t.Errorf("Balance = %v, want %v", s.Equity.Balance, want)
	}
	if len(s.Issues) != 3 {
		t.Errorf("got %d issues, want 3: %v", len(s.Issues), s.Issues)
	}
}

func TestReadDates(t *testing.T) {
	jan3 := NewDate(2025, time.January, 3)
	testCases := []struct {
		name   string
		record Record
		want   Date
	}{
		{
			name:   "flat logical date wins over the marker day",
			record: with(trade("a", "2025-01-06", 1), "year", num(2025), "month", num(1), "day", num(3)),
			want:   jan3,
		},
		{
			name:   "logical date as text",
			record: with(trade("a", "2025-01-06", 1), "year", "2025", "month", "01", "day", "03"),
			want:   jan3,
		},
		{
			name:   "nested logical date",
			record: with(trade("a", "2025-01-06", 1), "date", map[string]any{"year": num(2025), "month": num(1), "day": num(3)}),
			want:   jan3,
		},
		{
			name:   "marker day",
			record: trade("a", "2025-01-06", 1),
			want:   NewDate(2025, time.January, 6),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := readOne(tc.record)
			if got := e.Date(); got != tc.want {
				t.Errorf("Date = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReadDefaultID(t *testing.T) {
	j := journalOf(trade("a", "2025-01-06", 1), Record{"pnl": num(1), "createdAt": marker("2025-01-06")})
	if got := j.Entries()[1].ID(); got != "#1" {
		t.Errorf("ID = %q, want #1", got)
	}
}

func TestReadTapeReadingCarriesNoMoney(t *testing.T) {
	e, _ := readOne(tape("r", "2025-01-06"))
	if e.Kind() != KindTapeReading {
		t.Fatalf("Kind = %v, want tape-reading", e.Kind())
	}
	if !e.Change().IsZero() {
		t.Errorf("Change = %v, want 0", e.Change())
	}
}
