package tradebook

import (
	"time"

	"github.com/moznion/go-optional"
)

// Kind identifies the semantic kind of a journal entry.
type Kind string

// Entry kinds.
const (
	KindTrade       Kind = "trade"
	KindDeposit     Kind = "deposit"
	KindPayout      Kind = "payout"
	KindTapeReading Kind = "tape-reading"
)

// Entry is a classified journal record: one of Trade, Deposit, Payout or TapeReading.
type Entry interface {
	ID() string
	Kind() Kind
	// Index is the position of the record in the journal's input sequence.
	Index() int
	// Instant is the normalized creation instant, used to rebuild the balance.
	Instant() Instant
	// Date is the effective date, used for grouping: the logical date when
	// valid, the day of Instant otherwise.
	Date() Date
	// Change is the entry's effect on the account balance.
	Change() Money

	base() baseEntry
}

type baseEntry struct {
	id      string
	index   int
	instant Instant
	logical optional.Option[Date]
	date    Date
}

func (e baseEntry) ID() string       { return e.id }
func (e baseEntry) Index() int       { return e.index }
func (e baseEntry) Instant() Instant { return e.instant }
func (e baseEntry) Date() Date       { return e.date }
func (e baseEntry) base() baseEntry  { return e }

// LogicalDate returns the date journaled by the user, if it was valid.
func (e baseEntry) LogicalDate() optional.Option[Date] { return e.logical }

// Trade is a closed trade with its realized profit or loss.
type Trade struct {
	baseEntry
	PnL    Money
	HasPnL bool // false when the record carried no pnl at all
	// ResetExcluded trades are kept for display but ignored by the balance and the statistics.
	ResetExcluded bool
	RR            optional.Option[float64]
	Duration      optional.Option[time.Duration]
	Ticker        optional.Option[string]
}

func (Trade) Kind() Kind { return KindTrade }

// Change returns the trade's pnl, or zero when it is reset-excluded.
func (t Trade) Change() Money {
	if t.ResetExcluded {
		return Money{cur: t.PnL.cur}
	}
	return t.PnL
}

// Counted reports whether the trade takes part in statistics, buckets and streaks.
func (t Trade) Counted() bool { return !t.ResetExcluded && t.HasPnL }

// Deposit adds capital to the account.
type Deposit struct {
	baseEntry
	Amount Money
}

func (Deposit) Kind() Kind      { return KindDeposit }
func (d Deposit) Change() Money { return d.Amount }

// Payout withdraws capital. Its Amount is negative.
type Payout struct {
	baseEntry
	Amount Money
}

func (Payout) Kind() Kind      { return KindPayout }
func (p Payout) Change() Money { return p.Amount }

// TapeReading is a market observation note; it carries no money.
type TapeReading struct {
	baseEntry
	currency string
}

func (TapeReading) Kind() Kind      { return KindTapeReading }
func (t TapeReading) Change() Money { return Money{cur: t.currency} }

// affectsBalance reports whether e moves the balance and therefore gets an equity point.
func affectsBalance(e Entry) bool {
	switch v := e.(type) {
	case Deposit, Payout:
		return true
	case Trade:
		return !v.ResetExcluded
	default:
		return false
	}
}
