package parking

import "github.com/de-tools/parking-atlas/pkg/models/domain"

var continents = map[string]domain.Continent{
	"United States":        domain.NorthAmerica,
	"Canada":               domain.NorthAmerica,
	"Mexico":               domain.NorthAmerica,
	"Brazil":               domain.SouthAmerica,
	"Argentina":            domain.SouthAmerica,
	"Colombia":             domain.SouthAmerica,
	"United Kingdom":       domain.Europe,
	"France":               domain.Europe,
	"Germany":              domain.Europe,
	"Italy":                domain.Europe,
	"Spain":                domain.Europe,
	"China":                domain.Asia,
	"Japan":                domain.Asia,
	"South Korea":          domain.Asia,
	"India":                domain.Asia,
	"Singapore":            domain.Asia,
	"Thailand":             domain.Asia,
	"United Arab Emirates": domain.Asia,
	"Australia":            domain.Oceania,
	"New Zealand":          domain.Oceania,
	"South Africa":         domain.Africa,
	"Egypt":                domain.Africa,
	"Kenya":                domain.Africa,
}

// ClassifyContinent maps a country name (exact match) to its continent.
// Unlisted countries are Other.
func ClassifyContinent(country string) domain.Continent {
	if c, ok := continents[country]; ok {
		return c
	}
	return domain.Other
}

// IsContinent reports whether name is one of the selectable continents.
func IsContinent(name string) bool {
	for _, c := range domain.Continents {
		if string(c) == name {
			return true
		}
	}
	return false
}

// ContinentTotals groups airport totals by continent, in order of first
// appearance. Totals for ids missing from the catalog count as Other.
func (c *Catalog) ContinentTotals(totals domain.Totals) []domain.ContinentTotal {
	idx := make(map[domain.Continent]int)
	var result []domain.ContinentTotal

	for _, t := range totals {
		continent := domain.Other
		if airport, ok := c.LookupAirport(t.ID); ok {
			continent = ClassifyContinent(airport.Country)
		}

		i, ok := idx[continent]
		if !ok {
			i = len(result)
			idx[continent] = i
			result = append(result, domain.ContinentTotal{Continent: continent})
		}
		result[i].Minutes += t.Minutes
	}
	return result
}
