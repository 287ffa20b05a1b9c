package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	ds, err := Sample()
	require.NoError(t, err)

	assert.Len(t, ds.Aircraft, 5)
	assert.Len(t, ds.Airports, 10)
	assert.Len(t, ds.Records, 35)

	assert.Equal(t, domain.Aircraft{
		ID:                 "b777-1",
		Model:              "Boeing 777-300ER",
		RegistrationNumber: "LN-A101",
		Capacity:           386,
		YearManufactured:   2018,
		Image:              ds.Aircraft[0].Image,
	}, ds.Aircraft[0])
	assert.Equal(t, domain.Coordinates{Longitude: -73.7781, Latitude: 40.6413}, ds.Airports[0].Coordinates)
	assert.Equal(t, domain.ParkingRecord{
		AircraftID:     "b777-1",
		AirportID:      "jfk",
		Date:           "2023-06-10",
		ParkingMinutes: 320,
	}, ds.Records[0])
}

func TestLoad_EmptyPathReturnsSample(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)
	assert.Len(t, ds.Records, 35)
}

func TestLoad_File(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	content := `aircraft:
  - id: b777-1
    model: Boeing 777-300ER
    registration_number: LN-A101
    capacity: 386
    year_manufactured: 2018
airports:
  - id: jfk
    name: John F. Kennedy International Airport
    code: JFK
    city: New York
    country: United States
    coordinates: [-73.7781, 40.6413]
parking:
  - {aircraft_id: b777-1, airport_id: jfk, date: "2023-06-10", parking_minutes: 320}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	ds, err := Load(path)

	// Then
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, int64(320), ds.Records[0].ParkingMinutes)
	assert.Equal(t, "United States", ds.Airports[0].Country)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown key",
			content: "fleet: []\n",
		},
		{
			name: "coordinates without latitude",
			content: `airports:
  - id: jfk
    coordinates: [-73.7781]
`,
		},
		{
			name:    "malformed yaml",
			content: "aircraft: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	ds, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Records)
}
