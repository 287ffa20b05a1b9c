package domain

type Continent string

const (
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Europe       Continent = "Europe"
	Asia         Continent = "Asia"
	Oceania      Continent = "Oceania"
	Africa       Continent = "Africa"
	Other        Continent = "Other"
)

// Continents lists the selectable regions in display order.
var Continents = []Continent{
	NorthAmerica,
	SouthAmerica,
	Europe,
	Asia,
	Oceania,
	Africa,
}
