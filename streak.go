package tradebook

// Streaks counts consecutive winning and losing trades in date order.
type Streaks struct {
	CurrentGreen int `json:"currentGreen"`
	CurrentLoss  int `json:"currentLoss"`
	MaxGreen     int `json:"maxGreen"`
	MaxLoss      int `json:"maxLoss"`
}

// NewStreaks walks the counted trades by effective date.
//
// This is deliberately not the equity curve order: a trade journaled late with
// a backfilled date counts on the day it was traded. A breakeven trade ends
// both the green and the loss run.
func NewStreaks(j *Journal) Streaks {
	var s Streaks
	for _, t := range j.TradesByDate() {
		s.add(t.PnL)
	}
	return s
}

func (s *Streaks) add(pnl Money) {
	switch {
	case pnl.IsPositive():
		s.CurrentGreen++
		s.CurrentLoss = 0
		s.MaxGreen = max(s.MaxGreen, s.CurrentGreen)
	case pnl.IsNegative():
		s.CurrentLoss++
		s.CurrentGreen = 0
		s.MaxLoss = max(s.MaxLoss, s.CurrentLoss)
	default:
		s.CurrentGreen = 0
		s.CurrentLoss = 0
	}
}
