package domain

import (
	"sort"
	"time"
)

// Total is the summed parking minutes of a single aircraft or airport.
type Total struct {
	ID      string
	Minutes int64
}

// Totals keeps the iteration order of the collection it was built from.
type Totals []Total

func (t Totals) Get(id string) (int64, bool) {
	for _, total := range t {
		if total.ID == id {
			return total.Minutes, true
		}
	}
	return 0, false
}

func (t Totals) Map() map[string]int64 {
	m := make(map[string]int64, len(t))
	for _, total := range t {
		m[total.ID] = total.Minutes
	}
	return m
}

func (t Totals) Sum() int64 {
	var sum int64
	for _, total := range t {
		sum += total.Minutes
	}
	return sum
}

// SortedDesc returns a copy ordered by minutes, highest first. Ties keep their
// input order.
func (t Totals) SortedDesc() Totals {
	sorted := make(Totals, len(t))
	copy(sorted, t)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Minutes > sorted[j].Minutes
	})
	return sorted
}

// DateTotal is the summed parking minutes of a single calendar day.
type DateTotal struct {
	Date    string
	Day     time.Time
	Minutes int64
}

type ContinentTotal struct {
	Continent Continent
	Minutes   int64
}
