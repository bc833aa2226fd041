package analytics

import (
	"sort"

	"mpesa-wrap/internal/models"

	"github.com/shopspring/decimal"
)

// Soulmate is the running total for one counterparty.
type Soulmate struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

// SoulMates holds the top counterparty in each direction, keyed by phone.
// Each map has at most one entry.
type SoulMates struct {
	TopSenders   map[string]Soulmate `json:"top_senders"`
	TopReceivers map[string]Soulmate `json:"top_receivers"`
}

type counterparty struct {
	phone string
	name  string
	total decimal.Decimal
	count int
}

// ranking accumulates counterparties in first-seen order.
type ranking struct {
	index   map[string]int
	entries []*counterparty
}

func newRanking() *ranking {
	return &ranking{index: make(map[string]int)}
}

func (r *ranking) add(n Narrative, amount decimal.Decimal) {
	if i, ok := r.index[n.Phone]; ok {
		e := r.entries[i]
		e.total = e.total.Add(amount)
		e.count++
		return
	}
	r.index[n.Phone] = len(r.entries)
	r.entries = append(r.entries, &counterparty{
		phone: n.Phone,
		name:  n.Name,
		total: amount,
		count: 1,
	})
}

// ranked sorts by total descending; ties keep first-seen order.
func (r *ranking) ranked() []*counterparty {
	out := append([]*counterparty(nil), r.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].total.GreaterThan(out[j].total)
	})
	return out
}

func (r *ranking) top() map[string]Soulmate {
	out := make(map[string]Soulmate, 1)
	ranked := r.ranked()
	if len(ranked) == 0 {
		return out
	}
	best := ranked[0]
	out[best.phone] = Soulmate{
		Name:        best.name,
		TotalAmount: roundAmount(best.total),
		Count:       best.count,
	}
	return out
}

// Soulmates finds who sent the most money to, and received the most from,
// the statement owner.
func Soulmates(ledger []models.Transaction) SoulMates {
	senders := newRanking()
	receivers := newRanking()

	for _, tx := range ledger {
		n := Classify(tx.Details)
		switch n.Kind {
		case Received:
			if amount, ok := ParseAmount(tx.PaidIn); ok {
				senders.add(n, amount)
			}
		case Sent:
			if amount, ok := ParseAmount(tx.Withdrawn); ok {
				receivers.add(n, amount)
			}
		}
	}

	return SoulMates{
		TopSenders:   senders.top(),
		TopReceivers: receivers.top(),
	}
}
