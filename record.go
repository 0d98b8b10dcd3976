package tradebook

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Record is one raw journal document as held by the entry store.
//
// The store is schemaless: any key may be missing, hold text where a number
// is expected, or change type between old and new documents. Record is only
// read through the accessors below, which never fail.
type Record map[string]any

// JSON paths of the keys understood in a Record.
const (
	pathID            = "$.id"
	pathCreatedAt     = "$.createdAt"
	pathYear          = "$.year"
	pathMonth         = "$.month"
	pathDay           = "$.day"
	pathNestedYear    = "$.date.year"
	pathNestedMonth   = "$.date.month"
	pathNestedDay     = "$.date.day"
	pathPnL           = "$.pnl"
	pathRR            = "$.rr"
	pathDuration      = "$.duration"
	pathTicker        = "$.ticker"
	pathIsDeposit     = "$.isDeposit"
	pathIsPayout      = "$.isPayout"
	pathIsTapeReading = "$.isTapeReading"
	pathResetExcluded = "$.isResetExcluded"
)

// lookup returns the value at path, or false when it is absent or null.
func (r Record) lookup(path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, err := jsonpath.Get(path, map[string]any(r))
	if err != nil || v == nil {
		return nil, false
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, false
		}
		v = list[0]
	}
	return v, v != nil
}

// Text returns the value at path as trimmed text. Numbers are formatted
// without exponent. It returns false for absent, null or blank values.
func (r Record) Text(path string) (string, bool) {
	v, ok := r.lookup(path)
	if !ok {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = fmt.Sprint(t)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Number returns the value at path as a decimal.
//
// present reports whether the key holds anything at all (absent, null and
// blank strings are not present). valid reports whether that content could be
// read as a number; an invalid value is returned as zero.
func (r Record) Number(path string) (d decimal.Decimal, present, valid bool) {
	v, ok := r.lookup(path)
	if !ok {
		return decimal.Zero, false, false
	}
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, true, false
		}
		return d, true, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, true, false
		}
		return decimal.NewFromFloat(t), true, true
	case int:
		return decimal.NewFromInt(int64(t)), true, true
	case int64:
		return decimal.NewFromInt(t), true, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, false, false
		}
		s = strings.TrimPrefix(s, "+")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "$")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, true, false
		}
		return d, true, true
	default:
		return decimal.Zero, true, false
	}
}

// Float is Number as a float64, zero when absent or invalid.
func (r Record) Float(path string) (f float64, present, valid bool) {
	d, present, valid := r.Number(path)
	return d.InexactFloat64(), present, valid
}

// Flag reports whether the value at path is truthy: true, "true", "yes", or a non zero number.
func (r Record) Flag(path string) bool {
	v, ok := r.lookup(path)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true
		}
		return false
	default:
		d, _, valid := r.Number(path)
		return valid && !d.IsZero()
	}
}

// Int returns the value at path as an integer. Text such as " 07" is accepted,
// fractional or non numeric values are not.
func (r Record) Int(path string) (int, bool) {
	s, ok := r.Text(path)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
