package tradebook

import (
	"time"
)

// TickerStats summarizes the trades of one instrument.
type TickerStats struct {
	Ticker string `json:"ticker"`
	PnL    Money  `json:"pnl"`
	Trades int    `json:"trades"`
	Wins   int    `json:"wins"`
}

// Stats summarizes the counted trades of a journal.
//
// A trade is counted when it is not reset-excluded and carries a pnl; deposits,
// payouts and tape readings never take part. Every average of an empty set is 0.
type Stats struct {
	Trades     int `json:"trades"`
	Wins       int `json:"wins"`       // pnl > 0
	Losses     int `json:"losses"`     // pnl < 0
	Breakevens int `json:"breakevens"` // pnl == 0

	TotalPnL Money   `json:"totalPnl"`
	AvgPnL   Money   `json:"avgPnl"`
	WinRate  Percent `json:"winRate"`
	AvgWin   Money   `json:"avgWin"`
	AvgLoss  Money   `json:"avgLoss"` // negative

	GrossProfit  Money   `json:"grossProfit"`
	GrossLoss    Money   `json:"grossLoss"` // negative
	ProfitFactor float64 `json:"profitFactor"`
	BestTrade    Money   `json:"bestTrade"`
	WorstTrade   Money   `json:"worstTrade"`

	AvgRR              float64       `json:"avgRR"` // trades without rr count as 0
	AvgDuration        time.Duration `json:"-"`     // trades without duration count as 0
	AvgDurationMinutes float64       `json:"avgDurationMinutes"`

	ByDay    Buckets                `json:"byDay"`
	ByWeek   Buckets                `json:"byWeek"`
	ByMonth  Buckets                `json:"byMonth"`
	ByYear   Buckets                `json:"byYear"`
	ByTicker map[string]TickerStats `json:"byTicker"`
}

// NewStats computes the statistics of the journal.
func NewStats(j *Journal) Stats {
	zero := j.zero()
	s := Stats{
		TotalPnL:    zero,
		AvgPnL:      zero,
		AvgWin:      zero,
		AvgLoss:     zero,
		GrossProfit: zero,
		GrossLoss:   zero,
		BestTrade:   zero,
		WorstTrade:  zero,
		ByDay:       NewBuckets(j, Daily),
		ByWeek:      NewBuckets(j, Weekly),
		ByMonth:     NewBuckets(j, Monthly),
		ByYear:      NewBuckets(j, Yearly),
		ByTicker:    make(map[string]TickerStats),
	}

	var rrSum float64
	var durationSum time.Duration
	for i, t := range j.Trades() {
		s.Trades++
		s.TotalPnL = s.TotalPnL.Add(t.PnL)
		switch {
		case t.PnL.IsPositive():
			s.Wins++
			s.GrossProfit = s.GrossProfit.Add(t.PnL)
		case t.PnL.IsNegative():
			s.Losses++
			s.GrossLoss = s.GrossLoss.Add(t.PnL)
		default:
			s.Breakevens++
		}
		if i == 0 || t.PnL.GreaterThan(s.BestTrade) {
			s.BestTrade = t.PnL
		}
		if i == 0 || t.PnL.LessThan(s.WorstTrade) {
			s.WorstTrade = t.PnL
		}
		rrSum += t.RR.TakeOr(0)
		durationSum += t.Duration.TakeOr(0)

		ticker := t.Ticker.TakeOr("")
		ts, ok := s.ByTicker[ticker]
		if !ok {
			ts = TickerStats{Ticker: ticker, PnL: zero}
		}
		ts.PnL = ts.PnL.Add(t.PnL)
		ts.Trades++
		if t.PnL.IsPositive() {
			ts.Wins++
		}
		s.ByTicker[ticker] = ts
	}

	if s.Trades == 0 {
		return s
	}
	s.AvgPnL = s.TotalPnL.Div(s.Trades)
	s.WinRate = Percent(float64(s.Wins) * 100 / float64(s.Trades))
	s.AvgWin = s.GrossProfit.Div(s.Wins)
	s.AvgLoss = s.GrossLoss.Div(s.Losses)
	s.ProfitFactor = s.GrossProfit.Ratio(s.GrossLoss.Abs())
	s.AvgRR = rrSum / float64(s.Trades)
	s.AvgDuration = durationSum / time.Duration(s.Trades)
	s.AvgDurationMinutes = durationSum.Minutes() / float64(s.Trades)
	return s
}

// HasData reports whether at least one trade was counted.
func (s Stats) HasData() bool { return s.Trades > 0 }
