package analytics

import "github.com/shopspring/decimal"

// Bucket is the number of rows and their summed amount for one category.
type Bucket struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type tally struct {
	count int
	sum   decimal.Decimal
}

func (t *tally) add(amount decimal.Decimal) {
	t.count++
	t.sum = t.sum.Add(amount)
}

func (t tally) bucket() Bucket {
	return Bucket{Count: t.count, Amount: roundAmount(t.sum)}
}

// tallies accumulates named buckets. Every name passed to newTallies is
// present in the output even when nothing lands in it.
type tallies struct {
	names  []string
	counts map[string]*tally
}

func newTallies(names ...string) *tallies {
	t := &tallies{names: names, counts: make(map[string]*tally, len(names))}
	for _, name := range names {
		t.counts[name] = &tally{}
	}
	return t
}

func (t *tallies) add(name string, amount decimal.Decimal) {
	t.counts[name].add(amount)
}

func (t *tallies) buckets() map[string]Bucket {
	out := make(map[string]Bucket, len(t.names))
	for _, name := range t.names {
		out[name] = t.counts[name].bucket()
	}
	return out
}
