package parking

import (
	"math"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
)

// Cost is the parking fee for the given minutes at a flat per-minute rate.
func Cost(minutes int64, ratePerMinute float64) float64 {
	return float64(minutes) * ratePerMinute
}

// Percentage is part/whole in [0,1], or 0 when whole is 0.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// Average is total/count, or 0 when count is 0.
func Average(total int64, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// Hours converts minutes to whole hours, rounding half away from zero.
func Hours(minutes int64) int64 {
	return int64(math.Round(float64(minutes) / 60))
}

// Top returns the total with the most minutes. The first one wins a tie.
func Top(totals domain.Totals) (domain.Total, bool) {
	return extreme(totals, func(a, b int64) bool { return a > b })
}

// Bottom returns the total with the fewest minutes. The first one wins a tie.
func Bottom(totals domain.Totals) (domain.Total, bool) {
	return extreme(totals, func(a, b int64) bool { return a < b })
}

func extreme(totals domain.Totals, better func(a, b int64) bool) (domain.Total, bool) {
	if len(totals) == 0 {
		return domain.Total{}, false
	}
	best := totals[0]
	for _, t := range totals[1:] {
		if better(t.Minutes, best.Minutes) {
			best = t
		}
	}
	return best, true
}

const (
	markerBaseSize   = 5.0
	markerMaxSize    = 25.0
	markerMinMinutes = 100
	markerMaxMinutes = 3000
)

// MarkerSize scales a map marker radius linearly between 5 and 25 for
// 100 to 3000 parking minutes.
func MarkerSize(minutes int64) float64 {
	if minutes <= markerMinMinutes {
		return markerBaseSize
	}
	if minutes >= markerMaxMinutes {
		return markerMaxSize
	}
	ratio := float64(minutes-markerMinMinutes) / float64(markerMaxMinutes-markerMinMinutes)
	return markerBaseSize + ratio*(markerMaxSize-markerBaseSize)
}
