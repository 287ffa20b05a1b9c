package parking

import (
	"testing"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyContinent(t *testing.T) {
	tests := []struct {
		country  string
		expected domain.Continent
	}{
		{country: "Japan", expected: domain.Asia},
		{country: "United Arab Emirates", expected: domain.Asia},
		{country: "United States", expected: domain.NorthAmerica},
		{country: "Brazil", expected: domain.SouthAmerica},
		{country: "Germany", expected: domain.Europe},
		{country: "Australia", expected: domain.Oceania},
		{country: "Kenya", expected: domain.Africa},
		{country: "Atlantis", expected: domain.Other},
		{country: "japan", expected: domain.Other},
		{country: "", expected: domain.Other},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyContinent(tt.country))
		})
	}
}

func TestIsContinent(t *testing.T) {
	assert.True(t, IsContinent("Europe"))
	assert.False(t, IsContinent("Other"))
	assert.False(t, IsContinent("europe"))
}

func TestCatalog_ContinentTotals(t *testing.T) {
	c := sampleCatalog(t)
	totals := c.TotalsByAirport(c.Records(domain.Filter{}))

	assert.Equal(t, []domain.ContinentTotal{
		{Continent: domain.NorthAmerica, Minutes: 1395},
		{Continent: domain.Europe, Minutes: 3740},
		{Continent: domain.Asia, Minutes: 4590},
		{Continent: domain.Oceania, Minutes: 720},
		{Continent: domain.SouthAmerica, Minutes: 630},
	}, c.ContinentTotals(totals))
}

func TestCatalog_ContinentTotalsUnknownAirport(t *testing.T) {
	c := sampleCatalog(t)

	result := c.ContinentTotals(domain.Totals{{ID: "atlantis", Minutes: 10}})

	assert.Equal(t, []domain.ContinentTotal{{Continent: domain.Other, Minutes: 10}}, result)
}
