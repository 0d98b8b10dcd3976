package tradebook

import "fmt"

type Percent float64

// PercentOf returns part as a percentage of whole, or 0 when whole is not positive.
func PercentOf(part, whole Money) Percent {
	if !whole.IsPositive() {
		return 0
	}
	// multiply first: 15000*100/100000 is exact where 0.15*100 is not.
	return Percent(float64(part.minor) * 100 / float64(whole.minor))
}

// Clamp bounds p to [lo, hi].
func (p Percent) Clamp(lo, hi Percent) Percent {
	switch {
	case p < lo:
		return lo
	case p > hi:
		return hi
	}
	return p
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
