package report

import "school-meal-reports/internal/ledger"

// Totals maps dish names to summed serving counts while remembering the
// order in which dishes were first seen, so report tables list dishes in
// ledger order rather than Go map order.
type Totals struct {
	names  []string
	counts map[string]int
}

func newTotals() *Totals {
	return &Totals{counts: make(map[string]int)}
}

func (t *Totals) add(name string, servings int) {
	if _, seen := t.counts[name]; !seen {
		t.names = append(t.names, name)
	}
	t.counts[name] += servings
}

// Names returns the dish names in first-seen order.
func (t *Totals) Names() []string { return t.names }

// Count returns the total servings for a dish, 0 if absent.
func (t *Totals) Count(name string) int { return t.counts[name] }

// Sum returns the total servings across all dishes.
func (t *Totals) Sum() int {
	var sum int
	for _, n := range t.counts {
		sum += n
	}
	return sum
}

// Len returns the number of distinct dishes.
func (t *Totals) Len() int { return len(t.names) }

// WeeklyTotals sums serving counts per dish across every user and day in
// the ledger.
func WeeklyTotals(l *ledger.Ledger) *Totals {
	totals := newTotals()
	for _, day := range l.Days {
		accumulateDay(totals, day)
	}
	return totals
}

// DailyTotals sums serving counts per dish for one day. A day absent from
// the ledger yields empty totals.
func DailyTotals(l *ledger.Ledger, dayName string) *Totals {
	totals := newTotals()
	if day, ok := l.Day(dayName); ok {
		accumulateDay(totals, day)
	}
	return totals
}

func accumulateDay(totals *Totals, day ledger.Day) {
	for _, user := range day.Users {
		for _, d := range user.Dishes {
			totals.add(d.Name, d.Count)
		}
	}
}

// DailyRevenue prices a day's totals. Dishes missing from the price table
// contribute zero revenue but still count toward the order count, so volume
// stays accurate even with an incomplete price table.
func DailyRevenue(totals *Totals, prices PriceTable) (revenue float64, orders int) {
	for _, name := range totals.Names() {
		count := totals.Count(name)
		revenue += float64(count) * prices[name]
		orders += count
	}
	return revenue, orders
}
