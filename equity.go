package tradebook

// EquityPoint is the account balance right after one balance-affecting entry.
type EquityPoint struct {
	Sequence int   `json:"sequence"`
	Balance  Money `json:"balance"`
	// Kind is empty for the origin point.
	Kind Kind `json:"kind,omitempty"`
	// PnL is the entry's change, shown as a magnitude for payouts.
	PnL     Money  `json:"pnl"`
	EntryID string  `json:"entryId,omitempty"`
	Instant Instant `json:"instant,omitzero"`
	Date    Date    `json:"date,omitzero"`
}

// EquityCurve is the running balance of an account in creation order.
type EquityCurve struct {
	Points      []EquityPoint `json:"points"`
	Balance     Money         `json:"balance"`     // final balance
	Peak        Money         `json:"peak"`        // highest balance reached
	MaxDrawdown Money         `json:"maxDrawdown"` // largest fall from a previous peak, as a positive amount
}

// NewEquityCurve folds the journal into a running balance.
//
// Entries are replayed in normalized-instant order. Deposits, payouts and
// trades move the balance and add a point; tape readings and reset-excluded
// trades add nothing. The curve always starts with a point at zero, which has
// no entry and a zero Instant.
func NewEquityCurve(j *Journal) EquityCurve {
	zero := j.zero()
	curve := EquityCurve{
		Points:      []EquityPoint{{Sequence: 0, Balance: zero, PnL: zero}},
		Balance:     zero,
		Peak:        zero,
		MaxDrawdown: zero,
	}
	for _, e := range j.Chronological() {
		if !affectsBalance(e) {
			continue
		}
		change := e.Change()
		curve.Balance = curve.Balance.Add(change)

		display := change
		if e.Kind() == KindPayout {
			display = change.Abs()
		}
		curve.Points = append(curve.Points, EquityPoint{
			Sequence: len(curve.Points),
			Balance:  curve.Balance,
			Kind:     e.Kind(),
			PnL:      display,
			EntryID:  e.ID(),
			Instant:  e.Instant(),
			Date:     e.Date(),
		})

		if curve.Balance.GreaterThan(curve.Peak) {
			curve.Peak = curve.Balance
		}
		if dd := curve.Peak.Sub(curve.Balance); dd.GreaterThan(curve.MaxDrawdown) {
			curve.MaxDrawdown = dd
		}
	}
	return curve
}

// Len returns the number of points, origin included.
func (c EquityCurve) Len() int { return len(c.Points) }
