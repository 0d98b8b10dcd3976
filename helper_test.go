package tradebook

import (
	"encoding/json"
	"time"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// num mimics a number decoded from the entry store.
func num(v float64) json.Number { return json.Number(formatFloat(v)) }

func formatFloat(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// utc is the location used by the tests, so that results do not depend on the machine.
var utc = time.UTC

// testOptions are the default options pinned to UTC.
func testOptions() Options {
	o := DefaultOptions()
	o.Location = utc
	return o
}

// refNow is the reference time of the tests: Wednesday 2025-01-15 12:00 UTC.
var refNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

// marker builds a creation marker at noon UTC, with a random-like tag.
func marker(date string) string { return date + "T12:00:00.000Z-tag" }

func trade(id, date string, pnl float64) Record {
	return Record{"id": id, "createdAt": marker(date), "pnl": num(pnl)}
}

func deposit(id, date string, amount float64) Record {
	return Record{"id": id, "createdAt": marker(date), "pnl": num(amount), "isDeposit": true}
}

func payout(id, date string, amount float64) Record {
	return Record{"id": id, "createdAt": marker(date), "pnl": num(amount), "isPayout": true}
}

func tape(id, date string) Record {
	return Record{"id": id, "createdAt": marker(date), "isTapeReading": true, "pnl": num(999)}
}

// with returns a copy of r with extra fields.
func with(r Record, kv ...any) Record {
	out := make(Record, len(r)+len(kv)/2)
	for k, v := range r {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}

func journalOf(records ...Record) *Journal {
	return NewJournal(records, refNow, testOptions())
}
