// Package tradebook computes the performance of a trading journal.
//
// A journal is a list of loosely structured records, one per line of a .jsonl
// file. Records are classified into trades, deposits, payouts and tape
// readings, then normalized: every entry gets an instant and a logical date,
// and every field that could not be read is reported as a data-quality issue
// instead of failing the whole analysis.
//
// From a [Journal] the package derives:
//   - the equity curve of the account ([NewEquityCurve]),
//   - daily, weekly, monthly and yearly P&L buckets ([NewBuckets]),
//   - trade statistics ([NewStats]),
//   - winning and losing streaks ([NewStreaks]),
//   - capital performance over the standard windows ([NewPerformance]),
//   - a month calendar of daily P&L ([NewCalendarMonth]).
//
// [Analyze] bundles all of them in a [Snapshot]. Everything is computed from
// scratch on each call; nothing is cached.
//
// Amounts are integer minor units of a single currency, see [Money].
package tradebook
