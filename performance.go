package tradebook

// MonthlyGoal is the monthly return targeted by the trader.
const MonthlyGoal Percent = 20

// PeriodPerformance is the trading result of one window, relative to the original capital.
type PeriodPerformance struct {
	Range      Range   `json:"-"`
	PnL        Money   `json:"pnl"`
	Percentage Percent `json:"percentage"`
	HasTrades  bool    `json:"hasTrades"`
	Trades     int     `json:"trades"`
}

// Performance measures trading returns against the capital deposited.
//
// The denominator is the sum of deposits only. Payouts are not subtracted, so
// withdrawing profits does not inflate later returns.
type Performance struct {
	On              Date              `json:"on"`
	Year            int               `json:"year,omitempty"` // AllYears when unrestricted
	OriginalCapital Money             `json:"originalCapital"`
	Day             PeriodPerformance `json:"day"`
	Week            PeriodPerformance `json:"week"`
	Month           PeriodPerformance `json:"month"`
	Overall         PeriodPerformance `json:"overall"`
	// GoalProgress is the month's percentage as a share of MonthlyGoal, within [0, 100].
	GoalProgress Percent `json:"goalProgress"`
}

// NewPerformance computes the performance of the journal as of its reference time.
//
// When the journal options select a year, both the capital and the trades are
// restricted to that year. The day, week and month windows are the ones
// containing the reference day; a window without trades reports 0%.
func NewPerformance(j *Journal) Performance {
	opts := j.Options()
	j = j.Year(opts.Year)
	today := j.Today()

	p := Performance{
		On:              today,
		Year:            opts.Year,
		OriginalCapital: j.zero(),
	}
	for _, d := range j.Deposits() {
		p.OriginalCapital = p.OriginalCapital.Add(d.Amount)
	}

	trades := j.Trades()
	week := today.StartOfWeek(opts.WeekStart)
	p.Day = window(j, trades, Range{From: today, To: today}, p.OriginalCapital)
	p.Week = window(j, trades, Range{From: week, To: week.Add(6)}, p.OriginalCapital)
	p.Month = window(j, trades, Monthly.Range(today), p.OriginalCapital)
	p.Overall = window(j, trades, Range{}, p.OriginalCapital)

	p.GoalProgress = (p.Month.Percentage * 100 / MonthlyGoal).Clamp(0, 100)
	return p
}

// window sums the trades whose effective date falls in r. The zero Range selects every trade.
func window(j *Journal, trades []Trade, r Range, capital Money) PeriodPerformance {
	all := r == (Range{})
	w := PeriodPerformance{Range: r, PnL: j.zero()}
	for _, t := range trades {
		if !all && !r.Contains(t.Date()) {
			continue
		}
		w.PnL = w.PnL.Add(t.PnL)
		w.Trades++
	}
	w.HasTrades = w.Trades > 0
	if w.HasTrades {
		w.Percentage = PercentOf(w.PnL, capital)
	}
	return w
}
