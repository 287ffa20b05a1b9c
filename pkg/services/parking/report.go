package parking

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Dashboard summarizes the whole dataset.
func (s *Service) Dashboard(ctx context.Context) domain.Dashboard {
	logger := zerolog.Ctx(ctx)
	rate := s.Price(ctx).PricePerMinute

	records := s.catalog.Records(domain.Filter{})
	byAirport := s.catalog.TotalsByAirport(records)
	byAircraft := s.catalog.TotalsByAircraft(records)
	total := TotalMinutes(records)
	fleetSize := len(s.catalog.aircraft)

	d := domain.Dashboard{
		Period:                period(records),
		FleetSize:             fleetSize,
		AirportsServed:        len(s.catalog.airports),
		TotalMinutes:          total,
		TotalCost:             Cost(total, rate),
		AvgMinutesPerAircraft: Average(total, fleetSize),
		AvgCostPerAircraft:    averageCost(total, fleetSize, rate),
		Airports:              s.airportMinutes(byAirport.SortedDesc(), rate),
		Aircraft:              s.aircraftMinutes(byAircraft, total, rate),
	}

	if top, ok := Top(byAircraft); ok {
		d.MostActiveAircraft = findAircraft(d.Aircraft, top.ID)
	}
	if top, ok := Top(byAirport); ok {
		d.MostUsedAirport = findAirport(d.Airports, top.ID)
	}
	d.MostExpensiveAirport = mostExpensive(d.Airports)

	logger.Debug().
		Int("records", len(records)).
		Int64("minutes", total).
		Msg("dashboard computed")
	return d
}

// Fleet lists every aircraft with its share of the fleet parking time.
func (s *Service) Fleet(ctx context.Context) domain.Fleet {
	logger := zerolog.Ctx(ctx)
	rate := s.Price(ctx).PricePerMinute

	records := s.catalog.Records(domain.Filter{})
	byAircraft := s.catalog.TotalsByAircraft(records)
	total := byAircraft.Sum()

	f := domain.Fleet{
		TotalMinutes:          total,
		TotalCost:             Cost(total, rate),
		AvgMinutesPerAircraft: Average(total, len(byAircraft)),
		Aircraft:              s.aircraftMinutes(byAircraft.SortedDesc(), total, rate),
	}
	if top, ok := Top(byAircraft); ok {
		f.MostParked = findAircraft(f.Aircraft, top.ID)
	}
	if bottom, ok := Bottom(byAircraft); ok {
		f.LeastParked = findAircraft(f.Aircraft, bottom.ID)
	}

	logger.Debug().Int("aircraft", len(f.Aircraft)).Msg("fleet computed")
	return f
}

// Analytics aggregates the records selected by f.
func (s *Service) Analytics(ctx context.Context, f domain.Filter) (domain.Analytics, error) {
	logger := zerolog.Ctx(ctx)
	if err := s.validateFilter(f); err != nil {
		return domain.Analytics{}, err
	}
	rate := s.Price(ctx).PricePerMinute

	records := s.catalog.Records(f)
	total := TotalMinutes(records)

	seenAirports := make(map[string]bool)
	seenAircraft := make(map[string]bool)
	rows := make([]domain.RecordRow, 0, len(records))
	for _, r := range records {
		seenAirports[r.AirportID] = true
		seenAircraft[r.AircraftID] = true

		row := domain.RecordRow{Record: r, Cost: Cost(r.ParkingMinutes, rate)}
		if a, ok := s.catalog.LookupAircraft(r.AircraftID); ok {
			row.Aircraft = &a
		}
		if a, ok := s.catalog.LookupAirport(r.AirportID); ok {
			row.Airport = &a
		}
		rows = append(rows, row)
	}

	byAirport := onlyIDs(s.catalog.TotalsByAirport(records), seenAirports)
	byAircraft := onlyIDs(s.catalog.TotalsByAircraft(records), seenAircraft)

	a := domain.Analytics{
		Filter:              f,
		Period:              period(records),
		TotalMinutes:        total,
		TotalHours:          Hours(total),
		TotalCost:           Cost(total, rate),
		AvgMinutesPerRecord: Average(total, len(records)),
		AvgCostPerRecord:    averageCost(total, len(records), rate),
		RecordCount:         len(records),
		Airports:            s.airportMinutes(byAirport.SortedDesc(), rate),
		Aircraft:            s.aircraftMinutes(byAircraft.SortedDesc(), total, rate),
		Dates:               TotalsByDate(records),
		Rows:                rows,
	}

	logger.Debug().
		Str("aircraft", f.AircraftID).
		Str("airport", f.AirportID).
		Str("continent", f.Continent).
		Int("records", len(records)).
		Msg("analytics computed")
	return a, nil
}

// Global places airports on the world map, optionally restricted to one continent.
func (s *Service) Global(ctx context.Context, continent string) (domain.Global, error) {
	logger := zerolog.Ctx(ctx)
	f := domain.Filter{Continent: continent}
	if err := s.validateFilter(f); err != nil {
		return domain.Global{}, err
	}
	rate := s.Price(ctx).PricePerMinute

	byAirport := s.catalog.TotalsByAirport(s.catalog.Records(domain.Filter{}))
	selected := make(domain.Totals, 0, len(byAirport))
	for _, t := range byAirport {
		airport, _ := s.catalog.LookupAirport(t.ID)
		if !f.HasContinent() || string(ClassifyContinent(airport.Country)) == continent {
			selected = append(selected, t)
		}
	}

	g := domain.Global{
		Continent:    continent,
		TotalMinutes: selected.Sum(),
		TotalCost:    Cost(selected.Sum(), rate),
		Continents:   s.catalog.ContinentTotals(selected),
	}
	for _, am := range s.airportMinutes(selected.SortedDesc(), rate) {
		g.Airports = append(g.Airports, domain.GlobalAirport{
			AirportMinutes: am,
			MarkerSize:     MarkerSize(am.Minutes),
		})
	}
	if len(g.Airports) > 0 {
		g.MostUsedAirport = &g.Airports[0]
	}

	logger.Debug().Str("continent", continent).Int("airports", len(g.Airports)).Msg("global view computed")
	return g, nil
}

func (s *Service) validateFilter(f domain.Filter) error {
	if f.HasAircraft() {
		if _, ok := s.catalog.LookupAircraft(f.AircraftID); !ok {
			return fmt.Errorf("aircraft %q: %w", f.AircraftID, ErrUnknownFilter)
		}
	}
	if f.HasAirport() {
		if _, ok := s.catalog.LookupAirport(f.AirportID); !ok {
			return fmt.Errorf("airport %q: %w", f.AirportID, ErrUnknownFilter)
		}
	}
	if f.HasContinent() && !IsContinent(f.Continent) && f.Continent != string(domain.Other) {
		return fmt.Errorf("continent %q: %w", f.Continent, ErrUnknownFilter)
	}
	return nil
}

func (s *Service) airportMinutes(totals domain.Totals, rate float64) []domain.AirportMinutes {
	result := make([]domain.AirportMinutes, 0, len(totals))
	for _, t := range totals {
		airport, _ := s.catalog.LookupAirport(t.ID)
		result = append(result, domain.AirportMinutes{
			Airport:   airport,
			Continent: ClassifyContinent(airport.Country),
			Minutes:   t.Minutes,
			Cost:      Cost(t.Minutes, rate),
		})
	}
	return result
}

func (s *Service) aircraftMinutes(totals domain.Totals, whole int64, rate float64) []domain.AircraftMinutes {
	result := make([]domain.AircraftMinutes, 0, len(totals))
	for _, t := range totals {
		aircraft, _ := s.catalog.LookupAircraft(t.ID)
		result = append(result, domain.AircraftMinutes{
			Aircraft:   aircraft,
			Minutes:    t.Minutes,
			Hours:      Hours(t.Minutes),
			Cost:       Cost(t.Minutes, rate),
			Percentage: Percentage(t.Minutes, whole),
		})
	}
	return result
}

func onlyIDs(totals domain.Totals, ids map[string]bool) domain.Totals {
	kept := make(domain.Totals, 0, len(ids))
	for _, t := range totals {
		if ids[t.ID] {
			kept = append(kept, t)
		}
	}
	return kept
}

func findAircraft(list []domain.AircraftMinutes, id string) *domain.AircraftMinutes {
	for i := range list {
		if list[i].Aircraft.ID == id {
			return &list[i]
		}
	}
	return nil
}

func findAirport(list []domain.AirportMinutes, id string) *domain.AirportMinutes {
	for i := range list {
		if list[i].Airport.ID == id {
			return &list[i]
		}
	}
	return nil
}

func mostExpensive(list []domain.AirportMinutes) *domain.AirportMinutes {
	if len(list) == 0 {
		return nil
	}
	sorted := make([]domain.AirportMinutes, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})
	return findAirport(list, sorted[0].Airport.ID)
}

func averageCost(total int64, count int, rate float64) float64 {
	if count == 0 {
		return 0
	}
	return Cost(total, rate) / float64(count)
}

// period spans the earliest to the latest record day, inclusive.
func period(records []domain.ParkingRecord) domain.TimePeriod {
	var p domain.TimePeriod
	for _, r := range records {
		day, err := r.Day()
		if err != nil {
			continue
		}
		if p.Start.IsZero() || day.Before(p.Start) {
			p.Start = day
		}
		if p.End.IsZero() || day.After(p.End) {
			p.End = day
		}
	}
	if !p.Start.IsZero() {
		p.Duration = int(p.End.Sub(p.Start).Hours()/24) + 1
	}
	return p
}
