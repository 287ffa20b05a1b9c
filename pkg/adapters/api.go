package adapters

import (
	"github.com/de-tools/parking-atlas/pkg/models/api"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
)

// MoneyFormatter renders amounts for display, see currency.Formatter.
type MoneyFormatter interface {
	Format(amount float64) string
	Code() string
}

func MapMoneyToApi(amount float64, f MoneyFormatter) api.Money {
	return api.Money{
		Amount:   amount,
		Currency: f.Code(),
		Display:  f.Format(amount),
	}
}

func MapAircraftDomainToApi(a domain.Aircraft) api.Aircraft {
	return api.Aircraft{
		ID:                 a.ID,
		Model:              a.Model,
		RegistrationNumber: a.RegistrationNumber,
		Capacity:           a.Capacity,
		YearManufactured:   a.YearManufactured,
		Image:              a.Image,
	}
}

func MapAirportDomainToApi(a domain.Airport, continent domain.Continent) api.Airport {
	return api.Airport{
		ID:          a.ID,
		Name:        a.Name,
		Code:        a.Code,
		City:        a.City,
		Country:     a.Country,
		Continent:   string(continent),
		Coordinates: [2]float64{a.Coordinates.Longitude, a.Coordinates.Latitude},
	}
}

func MapTimePeriodDomainToApi(p domain.TimePeriod) api.TimePeriod {
	return api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}

func MapAirportMinutesDomainToApi(a domain.AirportMinutes, f MoneyFormatter) api.AirportMinutes {
	return api.AirportMinutes{
		Airport: MapAirportDomainToApi(a.Airport, a.Continent),
		Minutes: a.Minutes,
		Cost:    MapMoneyToApi(a.Cost, f),
	}
}

func MapAircraftMinutesDomainToApi(a domain.AircraftMinutes, f MoneyFormatter) api.AircraftMinutes {
	return api.AircraftMinutes{
		Aircraft:   MapAircraftDomainToApi(a.Aircraft),
		Minutes:    a.Minutes,
		Hours:      a.Hours,
		Cost:       MapMoneyToApi(a.Cost, f),
		Percentage: a.Percentage,
	}
}

func mapAirportList(list []domain.AirportMinutes, f MoneyFormatter) []api.AirportMinutes {
	result := make([]api.AirportMinutes, 0, len(list))
	for _, a := range list {
		result = append(result, MapAirportMinutesDomainToApi(a, f))
	}
	return result
}

func mapAircraftList(list []domain.AircraftMinutes, f MoneyFormatter) []api.AircraftMinutes {
	result := make([]api.AircraftMinutes, 0, len(list))
	for _, a := range list {
		result = append(result, MapAircraftMinutesDomainToApi(a, f))
	}
	return result
}

func optionalAirport(a *domain.AirportMinutes, f MoneyFormatter) *api.AirportMinutes {
	if a == nil {
		return nil
	}
	mapped := MapAirportMinutesDomainToApi(*a, f)
	return &mapped
}

func optionalAircraft(a *domain.AircraftMinutes, f MoneyFormatter) *api.AircraftMinutes {
	if a == nil {
		return nil
	}
	mapped := MapAircraftMinutesDomainToApi(*a, f)
	return &mapped
}

func MapDashboardDomainToApi(d domain.Dashboard, f MoneyFormatter) api.Dashboard {
	return api.Dashboard{
		Period:                MapTimePeriodDomainToApi(d.Period),
		FleetSize:             d.FleetSize,
		AirportsServed:        d.AirportsServed,
		TotalMinutes:          d.TotalMinutes,
		TotalCost:             MapMoneyToApi(d.TotalCost, f),
		AvgMinutesPerAircraft: d.AvgMinutesPerAircraft,
		AvgCostPerAircraft:    MapMoneyToApi(d.AvgCostPerAircraft, f),
		MostActiveAircraft:    optionalAircraft(d.MostActiveAircraft, f),
		MostUsedAirport:       optionalAirport(d.MostUsedAirport, f),
		MostExpensiveAirport:  optionalAirport(d.MostExpensiveAirport, f),
		Airports:              mapAirportList(d.Airports, f),
		Aircraft:              mapAircraftList(d.Aircraft, f),
	}
}

func MapFleetDomainToApi(fl domain.Fleet, f MoneyFormatter) api.Fleet {
	return api.Fleet{
		TotalMinutes:          fl.TotalMinutes,
		TotalCost:             MapMoneyToApi(fl.TotalCost, f),
		AvgMinutesPerAircraft: fl.AvgMinutesPerAircraft,
		MostParked:            optionalAircraft(fl.MostParked, f),
		LeastParked:           optionalAircraft(fl.LeastParked, f),
		Aircraft:              mapAircraftList(fl.Aircraft, f),
	}
}

func MapAnalyticsDomainToApi(a domain.Analytics, f MoneyFormatter) api.Analytics {
	result := api.Analytics{
		Filter: api.Filter{
			Aircraft:  orAll(a.Filter.AircraftID),
			Airport:   orAll(a.Filter.AirportID),
			Continent: orAll(a.Filter.Continent),
		},
		Period:              MapTimePeriodDomainToApi(a.Period),
		TotalMinutes:        a.TotalMinutes,
		TotalHours:          a.TotalHours,
		TotalCost:           MapMoneyToApi(a.TotalCost, f),
		AvgMinutesPerRecord: a.AvgMinutesPerRecord,
		AvgCostPerRecord:    MapMoneyToApi(a.AvgCostPerRecord, f),
		RecordCount:         a.RecordCount,
		Airports:            mapAirportList(a.Airports, f),
		Aircraft:            mapAircraftList(a.Aircraft, f),
		Dates:               make([]api.DateTotal, 0, len(a.Dates)),
		Records:             make([]api.RecordRow, 0, len(a.Rows)),
	}

	for _, d := range a.Dates {
		result.Dates = append(result.Dates, api.DateTotal{Date: d.Date, Minutes: d.Minutes})
	}

	for _, row := range a.Rows {
		result.Records = append(result.Records, api.RecordRow{
			Date:           row.Record.Date,
			AircraftID:     row.Record.AircraftID,
			Aircraft:       aircraftLabel(row),
			AirportID:      row.Record.AirportID,
			Airport:        airportLabel(row),
			ParkingMinutes: row.Record.ParkingMinutes,
			Cost:           MapMoneyToApi(row.Cost, f),
		})
	}

	return result
}

func MapGlobalDomainToApi(g domain.Global, f MoneyFormatter) api.Global {
	result := api.Global{
		Continent:    orAll(g.Continent),
		TotalMinutes: g.TotalMinutes,
		TotalCost:    MapMoneyToApi(g.TotalCost, f),
		Airports:     make([]api.GlobalAirport, 0, len(g.Airports)),
		Continents:   make([]api.ContinentTotal, 0, len(g.Continents)),
	}

	for _, a := range g.Airports {
		result.Airports = append(result.Airports, api.GlobalAirport{
			AirportMinutes: MapAirportMinutesDomainToApi(a.AirportMinutes, f),
			MarkerSize:     a.MarkerSize,
		})
	}
	if g.MostUsedAirport != nil {
		most := api.GlobalAirport{
			AirportMinutes: MapAirportMinutesDomainToApi(g.MostUsedAirport.AirportMinutes, f),
			MarkerSize:     g.MostUsedAirport.MarkerSize,
		}
		result.MostUsedAirport = &most
	}

	for _, c := range g.Continents {
		result.Continents = append(result.Continents, api.ContinentTotal{
			Continent: string(c.Continent),
			Minutes:   c.Minutes,
		})
	}

	return result
}

// aircraftLabel falls back to the raw id when the aircraft is not in the catalog.
func aircraftLabel(row domain.RecordRow) string {
	if row.Aircraft == nil {
		return row.Record.AircraftID
	}
	return row.Aircraft.Model
}

func airportLabel(row domain.RecordRow) string {
	if row.Airport == nil {
		return row.Record.AirportID
	}
	return row.Airport.Name
}

func orAll(v string) string {
	if v == "" {
		return domain.All
	}
	return v
}
