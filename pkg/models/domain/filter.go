package domain

// All disables a filter dimension.
const All = "all"

// Filter restricts parking records before aggregation. Dimensions are combined
// with AND; an empty value or All means no restriction.
type Filter struct {
	AircraftID string
	AirportID  string
	Continent  string
}

func (f Filter) HasAircraft() bool {
	return !isAll(f.AircraftID)
}

func (f Filter) HasAirport() bool {
	return !isAll(f.AirportID)
}

func (f Filter) HasContinent() bool {
	return !isAll(f.Continent)
}

func isAll(v string) bool {
	return v == "" || v == All
}
