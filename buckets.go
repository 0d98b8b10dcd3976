package tradebook

import (
	"maps"
	"slices"
)

// Bucket sums the counted trades of one period.
type Bucket struct {
	Key    string `json:"key"`
	PnL    Money  `json:"pnl"`
	Trades int    `json:"trades"`
}

// Buckets maps a period key (see Period.Key) to its bucket.
// A period without trades has no bucket.
type Buckets map[string]Bucket

// NewBuckets groups the counted trades of the journal by period, using their effective date.
func NewBuckets(j *Journal, p Period) Buckets {
	buckets := make(Buckets)
	for _, t := range j.Trades() {
		key := p.Key(t.Date())
		b, ok := buckets[key]
		if !ok {
			b = Bucket{Key: key, PnL: j.zero()}
		}
		b.PnL = b.PnL.Add(t.PnL)
		b.Trades++
		buckets[key] = b
	}
	return buckets
}

// Get returns the bucket for key, a zero bucket when the period had no trade.
func (b Buckets) Get(key string) Bucket {
	if bucket, ok := b[key]; ok {
		return bucket
	}
	return Bucket{Key: key}
}

// Keys returns the bucket keys in ascending order. Keys of one period sort chronologically.
func (b Buckets) Keys() []string {
	return slices.Sorted(maps.Keys(b))
}

// Sorted returns the buckets in ascending key order.
func (b Buckets) Sorted() []Bucket {
	out := make([]Bucket, 0, len(b))
	for _, k := range b.Keys() {
		out = append(out, b[k])
	}
	return out
}
