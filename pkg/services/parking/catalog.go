package parking

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
)

var (
	ErrDuplicateID      = errors.New("duplicate id")
	ErrUnknownReference = errors.New("unknown reference")
	ErrInvalidRecord    = errors.New("invalid record")
)

// MaxParkingMinutes caps a single record at one day of ground time.
const MaxParkingMinutes = 24 * 60

// Catalog is the read-only data store behind every report. It is built once
// at startup and never modified, so it is safe for concurrent readers.
type Catalog struct {
	aircraft []domain.Aircraft
	airports []domain.Airport
	records  []domain.ParkingRecord

	aircraftIdx map[string]int
	airportIdx  map[string]int
}

// NewCatalog validates the dataset and indexes it. Records that reference an
// unknown aircraft or airport are rejected here rather than skipped during
// aggregation.
func NewCatalog(ds domain.Dataset) (*Catalog, error) {
	c := &Catalog{
		aircraft:    append([]domain.Aircraft(nil), ds.Aircraft...),
		airports:    append([]domain.Airport(nil), ds.Airports...),
		records:     append([]domain.ParkingRecord(nil), ds.Records...),
		aircraftIdx: make(map[string]int, len(ds.Aircraft)),
		airportIdx:  make(map[string]int, len(ds.Airports)),
	}

	for i, a := range c.aircraft {
		if a.ID == "" {
			return nil, fmt.Errorf("aircraft #%d: empty id: %w", i, ErrInvalidRecord)
		}
		if _, exists := c.aircraftIdx[a.ID]; exists {
			return nil, fmt.Errorf("aircraft %q: %w", a.ID, ErrDuplicateID)
		}
		c.aircraftIdx[a.ID] = i
	}

	for i, a := range c.airports {
		if a.ID == "" {
			return nil, fmt.Errorf("airport #%d: empty id: %w", i, ErrInvalidRecord)
		}
		if _, exists := c.airportIdx[a.ID]; exists {
			return nil, fmt.Errorf("airport %q: %w", a.ID, ErrDuplicateID)
		}
		if !validCoordinates(a.Coordinates) {
			return nil, fmt.Errorf("airport %q: coordinates out of range: %w", a.ID, ErrInvalidRecord)
		}
		c.airportIdx[a.ID] = i
	}

	for i, r := range c.records {
		if _, ok := c.aircraftIdx[r.AircraftID]; !ok {
			return nil, fmt.Errorf("record #%d: aircraft %q: %w", i, r.AircraftID, ErrUnknownReference)
		}
		if _, ok := c.airportIdx[r.AirportID]; !ok {
			return nil, fmt.Errorf("record #%d: airport %q: %w", i, r.AirportID, ErrUnknownReference)
		}
		if r.ParkingMinutes < 0 {
			return nil, fmt.Errorf("record #%d: negative parking minutes %d: %w", i, r.ParkingMinutes, ErrInvalidRecord)
		}
		if r.ParkingMinutes > MaxParkingMinutes {
			return nil, fmt.Errorf("record #%d: parking minutes %d exceed %d: %w", i, r.ParkingMinutes, MaxParkingMinutes, ErrInvalidRecord)
		}
		if _, err := r.Day(); err != nil {
			return nil, fmt.Errorf("record #%d: date %q: %w", i, r.Date, ErrInvalidRecord)
		}
	}

	return c, nil
}

func validCoordinates(c domain.Coordinates) bool {
	for _, v := range []float64{c.Longitude, c.Latitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return c.Longitude >= -180 && c.Longitude <= 180 && c.Latitude >= -90 && c.Latitude <= 90
}

// Fleet returns the aircraft in dataset order.
func (c *Catalog) Fleet() []domain.Aircraft {
	return append([]domain.Aircraft(nil), c.aircraft...)
}

// Airports returns the airports in dataset order.
func (c *Catalog) Airports() []domain.Airport {
	return append([]domain.Airport(nil), c.airports...)
}

func (c *Catalog) LookupAircraft(id string) (domain.Aircraft, bool) {
	i, ok := c.aircraftIdx[id]
	if !ok {
		return domain.Aircraft{}, false
	}
	return c.aircraft[i], true
}

func (c *Catalog) LookupAirport(id string) (domain.Airport, bool) {
	i, ok := c.airportIdx[id]
	if !ok {
		return domain.Airport{}, false
	}
	return c.airports[i], true
}

// Records returns the parking records matching the filter in dataset order.
func (c *Catalog) Records(f domain.Filter) []domain.ParkingRecord {
	matched := make([]domain.ParkingRecord, 0, len(c.records))
	for _, r := range c.records {
		if c.matches(f, r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func (c *Catalog) matches(f domain.Filter, r domain.ParkingRecord) bool {
	if f.HasAircraft() && r.AircraftID != f.AircraftID {
		return false
	}
	if f.HasAirport() && r.AirportID != f.AirportID {
		return false
	}
	if f.HasContinent() {
		airport, ok := c.LookupAirport(r.AirportID)
		if !ok || string(ClassifyContinent(airport.Country)) != f.Continent {
			return false
		}
	}
	return true
}
