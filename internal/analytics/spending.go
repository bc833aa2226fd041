package analytics

import (
	"sort"
	"time"

	"mpesa-wrap/internal/models"
)

// Time-of-day bucket names.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	Night     = "night"
)

// Week-part bucket names.
const (
	Weekday = "weekday"
	Weekend = "weekend"
)

// WeekdayNames lists the per-weekday buckets, Monday first.
var WeekdayNames = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// dayPeriod maps an hour to morning [5,12), afternoon [12,17),
// evening [17,21) or night [21,5).
func dayPeriod(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// TimeOfDay buckets withdrawals by the hour they completed.
func TimeOfDay(ledger []models.Transaction) map[string]Bucket {
	t := newTallies(Morning, Afternoon, Evening, Night)
	for _, s := range spends(ledger) {
		t.add(dayPeriod(s.at.Hour()), s.amount)
	}
	return t.buckets()
}

// WeekdayVsWeekend splits withdrawals into Monday-Friday and Saturday-Sunday.
func WeekdayVsWeekend(ledger []models.Transaction) map[string]Bucket {
	t := newTallies(Weekday, Weekend)
	for _, s := range spends(ledger) {
		switch s.at.Weekday() {
		case time.Saturday, time.Sunday:
			t.add(Weekend, s.amount)
		default:
			t.add(Weekday, s.amount)
		}
	}
	return t.buckets()
}

// WeekdaySpending buckets withdrawals by day of the week.
func WeekdaySpending(ledger []models.Transaction) map[string]Bucket {
	t := newTallies(WeekdayNames...)
	for _, s := range spends(ledger) {
		t.add(s.at.Weekday().String(), s.amount)
	}
	return t.buckets()
}

// MonthBucket is the withdrawal total for one calendar month ("2026-01").
type MonthBucket struct {
	Month  string  `json:"month"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// MonthlySpending buckets withdrawals by calendar month, oldest first.
func MonthlySpending(ledger []models.Transaction) []MonthBucket {
	months := make(map[string]*tally)
	for _, s := range spends(ledger) {
		key := s.at.Format("2006-01")
		if months[key] == nil {
			months[key] = &tally{}
		}
		months[key].add(s.amount)
	}

	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		b := months[key].bucket()
		out = append(out, MonthBucket{Month: key, Count: b.Count, Amount: b.Amount})
	}
	return out
}
