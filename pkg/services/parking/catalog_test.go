package parking

import (
	"testing"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(ds *domain.Dataset)
		expected error
	}{
		{
			name: "duplicate aircraft",
			mutate: func(ds *domain.Dataset) {
				ds.Aircraft = append(ds.Aircraft, domain.Aircraft{ID: "b777-1"})
			},
			expected: ErrDuplicateID,
		},
		{
			name: "duplicate airport",
			mutate: func(ds *domain.Dataset) {
				ds.Airports = append(ds.Airports, domain.Airport{ID: "jfk"})
			},
			expected: ErrDuplicateID,
		},
		{
			name: "unknown aircraft reference",
			mutate: func(ds *domain.Dataset) {
				ds.Records = append(ds.Records, domain.ParkingRecord{AircraftID: "b747-1", AirportID: "jfk", Date: "2023-06-12"})
			},
			expected: ErrUnknownReference,
		},
		{
			name: "unknown airport reference",
			mutate: func(ds *domain.Dataset) {
				ds.Records = append(ds.Records, domain.ParkingRecord{AircraftID: "b777-1", AirportID: "cdg", Date: "2023-06-12"})
			},
			expected: ErrUnknownReference,
		},
		{
			name: "negative minutes",
			mutate: func(ds *domain.Dataset) {
				ds.Records[0].ParkingMinutes = -1
			},
			expected: ErrInvalidRecord,
		},
		{
			name: "more than a day of minutes",
			mutate: func(ds *domain.Dataset) {
				ds.Records[0].ParkingMinutes = MaxParkingMinutes + 1
			},
			expected: ErrInvalidRecord,
		},
		{
			name: "minutes that would overflow totals",
			mutate: func(ds *domain.Dataset) {
				ds.Records[0].ParkingMinutes = 5e18
				ds.Records[1].ParkingMinutes = 5e18
			},
			expected: ErrInvalidRecord,
		},
		{
			name: "bad date",
			mutate: func(ds *domain.Dataset) {
				ds.Records[0].Date = "10/06/2023"
			},
			expected: ErrInvalidRecord,
		},
		{
			name: "latitude out of range",
			mutate: func(ds *domain.Dataset) {
				ds.Airports[0].Coordinates.Latitude = 91
			},
			expected: ErrInvalidRecord,
		},
		{
			name: "empty aircraft id",
			mutate: func(ds *domain.Dataset) {
				ds.Aircraft[0].ID = ""
			},
			expected: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := smallDataset()
			tt.mutate(&ds)

			_, err := NewCatalog(ds)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNewCatalog_FullDayAccepted(t *testing.T) {
	ds := smallDataset()
	ds.Records[0].ParkingMinutes = MaxParkingMinutes
	ds.Records[1].ParkingMinutes = MaxParkingMinutes

	c, err := NewCatalog(ds)

	require.NoError(t, err)
	totals := c.TotalsByAirport(c.Records(domain.Filter{}))
	jfk, ok := totals.Get("jfk")
	require.True(t, ok)
	assert.Equal(t, int64(MaxParkingMinutes), jfk)
	assert.Equal(t, int64(2*MaxParkingMinutes), totals.Sum())
}

func TestNewCatalog_Empty(t *testing.T) {
	c, err := NewCatalog(domain.Dataset{})
	require.NoError(t, err)
	assert.Empty(t, c.Records(domain.Filter{}))
	assert.Empty(t, c.TotalsByAirport(nil))
}

func TestCatalog_DoesNotShareInput(t *testing.T) {
	ds := smallDataset()
	c, err := NewCatalog(ds)
	require.NoError(t, err)

	ds.Records[0].ParkingMinutes = 9999
	ds.Aircraft[0].Model = "changed"

	assert.Equal(t, int64(320), c.Records(domain.Filter{})[0].ParkingMinutes)
	a, _ := c.LookupAircraft("b777-1")
	assert.Equal(t, "Boeing 777-300ER", a.Model)

	fleet := c.Fleet()
	fleet[0].Model = "changed again"
	a, _ = c.LookupAircraft("b777-1")
	assert.Equal(t, "Boeing 777-300ER", a.Model)
}

func TestCatalog_Lookup(t *testing.T) {
	c := sampleCatalog(t)

	aircraft, ok := c.LookupAircraft("a380-1")
	require.True(t, ok)
	assert.Equal(t, "Airbus A380", aircraft.Model)

	airport, ok := c.LookupAirport("hnd")
	require.True(t, ok)
	assert.Equal(t, "Tokyo", airport.City)

	_, ok = c.LookupAircraft("concorde")
	assert.False(t, ok)

	_, ok = c.LookupAirport("xxx")
	assert.False(t, ok)
}

func TestCatalog_Records(t *testing.T) {
	c := sampleCatalog(t)

	tests := []struct {
		name     string
		filter   domain.Filter
		count    int
		expected int64
	}{
		{name: "no filter", filter: domain.Filter{}, count: 35, expected: 11075},
		{name: "all sentinel", filter: domain.Filter{AircraftID: domain.All, AirportID: domain.All, Continent: domain.All}, count: 35, expected: 11075},
		{name: "airport jfk", filter: domain.Filter{AirportID: "jfk"}, count: 5, expected: 1395},
		{name: "aircraft b777-1", filter: domain.Filter{AircraftID: "b777-1"}, count: 7, expected: 2040},
		{name: "aircraft and airport", filter: domain.Filter{AircraftID: "b777-1", AirportID: "lhr"}, count: 2, expected: 450},
		{name: "continent europe", filter: domain.Filter{Continent: string(domain.Europe)}, count: 13, expected: 3740},
		{name: "continent and aircraft", filter: domain.Filter{Continent: string(domain.Oceania), AircraftID: "b747-1"}, count: 1, expected: 380},
		{name: "no match", filter: domain.Filter{AircraftID: "b777-1", AirportID: "gru"}, count: 0, expected: 0},
		{name: "continent africa", filter: domain.Filter{Continent: string(domain.Africa)}, count: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := c.Records(tt.filter)
			assert.Len(t, records, tt.count)
			assert.Equal(t, tt.expected, TotalMinutes(records))
		})
	}
}

func TestCatalog_RecordsAirportFilterMatchesManualSum(t *testing.T) {
	c := sampleCatalog(t)

	var expected int64
	for _, r := range c.Records(domain.Filter{}) {
		if r.AirportID == "jfk" {
			expected += r.ParkingMinutes
		}
	}

	assert.Equal(t, expected, TotalMinutes(c.Records(domain.Filter{AirportID: "jfk"})))
}
