package parking

import (
	"sort"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
)

// TotalsByAirport sums parking minutes per airport. Every known airport is
// present, in catalog order, with zero when it has no records. Records for
// airports outside the catalog are ignored.
func (c *Catalog) TotalsByAirport(records []domain.ParkingRecord) domain.Totals {
	totals := make(domain.Totals, len(c.airports))
	for i, a := range c.airports {
		totals[i].ID = a.ID
	}
	for _, r := range records {
		if i, ok := c.airportIdx[r.AirportID]; ok {
			totals[i].Minutes += r.ParkingMinutes
		}
	}
	return totals
}

// TotalsByAircraft sums parking minutes per aircraft, zero-filled over the fleet.
func (c *Catalog) TotalsByAircraft(records []domain.ParkingRecord) domain.Totals {
	totals := make(domain.Totals, len(c.aircraft))
	for i, a := range c.aircraft {
		totals[i].ID = a.ID
	}
	for _, r := range records {
		if i, ok := c.aircraftIdx[r.AircraftID]; ok {
			totals[i].Minutes += r.ParkingMinutes
		}
	}
	return totals
}

// TotalsByDate sums parking minutes per calendar day, oldest first. Only days
// present in records are returned. Dates that do not parse sort after valid
// ones, by their raw text.
func TotalsByDate(records []domain.ParkingRecord) []domain.DateTotal {
	idx := make(map[string]int)
	var totals []domain.DateTotal

	for _, r := range records {
		i, ok := idx[r.Date]
		if !ok {
			day, _ := r.Day()
			i = len(totals)
			idx[r.Date] = i
			totals = append(totals, domain.DateTotal{Date: r.Date, Day: day})
		}
		totals[i].Minutes += r.ParkingMinutes
	}

	sort.SliceStable(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Day.IsZero() != b.Day.IsZero() {
			return !a.Day.IsZero()
		}
		if !a.Day.Equal(b.Day) {
			return a.Day.Before(b.Day)
		}
		return a.Date < b.Date
	})
	return totals
}

// TotalMinutes sums parking minutes over records.
func TotalMinutes(records []domain.ParkingRecord) int64 {
	var sum int64
	for _, r := range records {
		sum += r.ParkingMinutes
	}
	return sum
}
