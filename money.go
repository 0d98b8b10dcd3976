package tradebook

import (
	"encoding/json"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when a journal does not declare one.
const DefaultCurrency = "USD"

// Money represents a monetary value.
//
// The value is held in the minor unit of its currency (cents for USD or EUR)
// so that sums over thousands of entries never drift.
type Money struct {
	minor int64 // amount in the currency's smallest unit
	cur   string
}

// M converts a value expressed in major units (e.g. 12.34 dollars) into Money,
// rounding to the nearest minor unit, half away from zero.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return fromDecimal(newDecimal(value), currency)
}

// minMinor and maxMinor bound the amounts Money can hold.
var (
	minMinor = decimal.NewFromInt(math.MinInt64)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// toMinor rounds d to the minor unit of currency. ok is false when the result
// does not fit in Money.
func toMinor(d decimal.Decimal, currency string) (minor int64, ok bool) {
	shifted := d.Shift(fraction(currency)).Round(0)
	if shifted.LessThan(minMinor) || shifted.GreaterThan(maxMinor) {
		return 0, false
	}
	return shifted.IntPart(), true
}

// fromDecimal converts d into Money. Amounts out of range are zero.
func fromDecimal(d decimal.Decimal, currency string) Money {
	minor, _ := toMinor(d, currency)
	return Money{minor: minor, cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// fraction returns the number of minor-unit digits of a currency, 2 when unknown.
func fraction(code string) int32 {
	if code == "" {
		code = DefaultCurrency
	}
	c := money.GetCurrency(code)
	if c == nil {
		return 2
	}
	return int32(c.Fraction)
}

// String returns the string representation of the money value.
func (m Money) String() string {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	return money.New(m.minor, code).Display()
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.minor == 0 {
		return "-"
	}
	if m.minor > 0 {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string         { return m.cur }
func (m Money) MinorUnits() int64        { return m.minor }
func (m Money) Equal(n Money) bool       { return m.minor == n.minor && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.minor == 0 }
func (m Money) IsPositive() bool         { return m.minor > 0 }
func (m Money) IsNegative() bool         { return m.minor < 0 }
func (m Money) LessThan(n Money) bool    { return m.minor < n.minor }
func (m Money) GreaterThan(n Money) bool { return m.minor > n.minor }
func (m Money) Neg() Money               { return Money{minor: -m.minor, cur: m.cur} }
func (m Money) Decimal() decimal.Decimal { return decimal.New(m.minor, -fraction(m.cur)) }
func (m Money) Add(n Money) Money        { return Money{minor: m.minor + n.minor, cur: cur(m, n)} }
func (m Money) Sub(n Money) Money        { return Money{minor: m.minor - n.minor, cur: cur(m, n)} }

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m.minor < 0 {
		return m.Neg()
	}
	return m
}

// Div divides m by n and rounds to the nearest minor unit. Dividing by zero yields zero.
func (m Money) Div(n int) Money {
	if n == 0 {
		return Money{cur: m.cur}
	}
	q := decimal.NewFromInt(m.minor).Div(decimal.NewFromInt(int64(n))).Round(0)
	return Money{minor: q.IntPart(), cur: m.cur}
}

// Ratio returns m/n as a float, or 0 when n is zero.
func (m Money) Ratio(n Money) float64 {
	if n.minor == 0 {
		return 0
	}
	return float64(m.minor) / float64(n.minor)
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", json.Number(m.Decimal().StringFixed(fraction(m.cur))))
	return w.MarshalJSON()
}
