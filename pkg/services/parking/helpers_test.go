package parking

import (
	"testing"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/store/dataset"
	"github.com/de-tools/parking-atlas/pkg/store/pricing"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	ds, err := dataset.Sample()
	require.NoError(t, err)
	c, err := NewCatalog(ds)
	require.NoError(t, err)
	return c
}

func sampleService(t *testing.T) *Service {
	t.Helper()
	return NewService(sampleCatalog(t), pricing.NewStore(pricing.Settings{}))
}

// smallDataset has two aircraft, three airports and one airport without records.
func smallDataset() domain.Dataset {
	return domain.Dataset{
		Aircraft: []domain.Aircraft{
			{ID: "b777-1", Model: "Boeing 777-300ER", RegistrationNumber: "LN-A101", Capacity: 386, YearManufactured: 2018},
			{ID: "a380-1", Model: "Airbus A380", RegistrationNumber: "LN-A103", Capacity: 525, YearManufactured: 2019},
		},
		Airports: []domain.Airport{
			{ID: "jfk", Code: "JFK", Country: "United States", Coordinates: domain.Coordinates{Longitude: -73.7781, Latitude: 40.6413}},
			{ID: "lhr", Code: "LHR", Country: "United Kingdom", Coordinates: domain.Coordinates{Longitude: -0.4543, Latitude: 51.47}},
			{ID: "hnd", Code: "HND", Country: "Japan", Coordinates: domain.Coordinates{Longitude: 139.7798, Latitude: 35.5494}},
		},
		Records: []domain.ParkingRecord{
			{AircraftID: "b777-1", AirportID: "jfk", Date: "2023-06-10", ParkingMinutes: 320},
			{AircraftID: "b777-1", AirportID: "lhr", Date: "2023-06-11", ParkingMinutes: 210},
		},
	}
}
