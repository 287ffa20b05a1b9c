package adapters

import (
	"fmt"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/models/store"
)

func MapStoreDatasetToDomain(ds store.Dataset) (domain.Dataset, error) {
	result := domain.Dataset{
		Aircraft: make([]domain.Aircraft, 0, len(ds.Aircraft)),
		Airports: make([]domain.Airport, 0, len(ds.Airports)),
		Records:  make([]domain.ParkingRecord, 0, len(ds.Parking)),
	}

	for _, a := range ds.Aircraft {
		result.Aircraft = append(result.Aircraft, domain.Aircraft{
			ID:                 a.ID,
			Model:              a.Model,
			RegistrationNumber: a.RegistrationNumber,
			Capacity:           a.Capacity,
			YearManufactured:   a.YearManufactured,
			Image:              a.Image,
		})
	}

	for _, a := range ds.Airports {
		if len(a.Coordinates) != 2 {
			return domain.Dataset{}, fmt.Errorf("airport %q: expected [longitude, latitude], got %d values", a.ID, len(a.Coordinates))
		}
		result.Airports = append(result.Airports, domain.Airport{
			ID:      a.ID,
			Name:    a.Name,
			Code:    a.Code,
			City:    a.City,
			Country: a.Country,
			Coordinates: domain.Coordinates{
				Longitude: a.Coordinates[0],
				Latitude:  a.Coordinates[1],
			},
		})
	}

	for _, r := range ds.Parking {
		result.Records = append(result.Records, domain.ParkingRecord{
			AircraftID:     r.AircraftID,
			AirportID:      r.AirportID,
			Date:           r.Date,
			ParkingMinutes: r.ParkingMinutes,
		})
	}

	return result, nil
}
