package adapters

import (
	"fmt"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
)

func MapDashboardToReport(d domain.Dashboard, f MoneyFormatter) *domain.Report {
	overview := domain.ReportSection{
		Title: "Overview",
		Summary: map[string]interface{}{
			"Total Fleet Size": d.FleetSize,
			"Airports Served":  d.AirportsServed,
		},
		Details: []domain.ReportDetail{
			{Name: "Total Parking Time", Value: d.TotalMinutes, Unit: "minutes"},
			{Name: "Total Parking Cost", Value: f.Format(d.TotalCost)},
			{Name: "Avg Parking per Aircraft", Value: fmt.Sprintf("%.0f", d.AvgMinutesPerAircraft), Unit: "minutes"},
			{Name: "Avg Cost per Aircraft", Value: f.Format(d.AvgCostPerAircraft)},
		},
	}
	if d.MostActiveAircraft != nil {
		overview.Details = append(overview.Details, domain.ReportDetail{
			Name:        "Most Active Aircraft",
			Value:       d.MostActiveAircraft.Minutes,
			Unit:        "minutes",
			Description: d.MostActiveAircraft.Aircraft.Model,
		})
	}
	if d.MostUsedAirport != nil {
		overview.Details = append(overview.Details, domain.ReportDetail{
			Name:        "Most Used Airport",
			Value:       d.MostUsedAirport.Minutes,
			Unit:        "minutes",
			Description: airportDescription(d.MostUsedAirport.Airport),
		})
	}
	if d.MostExpensiveAirport != nil {
		overview.Details = append(overview.Details, domain.ReportDetail{
			Name:        "Most Expensive Airport",
			Value:       f.Format(d.MostExpensiveAirport.Cost),
			Description: airportDescription(d.MostExpensiveAirport.Airport),
		})
	}

	return &domain.Report{
		Title:       "Fleet Parking Dashboard",
		Period:      d.Period,
		TotalAmount: d.TotalCost,
		Currency:    f.Code(),
		Sections: []domain.ReportSection{
			overview,
			airportSection("Parking Minutes by Airport", d.Airports, f),
			aircraftSection("Parking Minutes by Aircraft", d.Aircraft, f),
		},
	}
}

func MapFleetToReport(fl domain.Fleet, f MoneyFormatter) *domain.Report {
	summary := map[string]interface{}{
		"Total Parking Time":       fmt.Sprintf("%d minutes", fl.TotalMinutes),
		"Avg Parking per Aircraft": fmt.Sprintf("%.0f minutes", fl.AvgMinutesPerAircraft),
	}
	if fl.MostParked != nil {
		summary["Most Parked"] = fl.MostParked.Aircraft.Model
	}
	if fl.LeastParked != nil {
		summary["Least Parked"] = fl.LeastParked.Aircraft.Model
	}

	section := aircraftSection("Fleet", fl.Aircraft, f)
	section.Summary = summary

	return &domain.Report{
		Title:       "Fleet Management",
		TotalAmount: fl.TotalCost,
		Currency:    f.Code(),
		Sections:    []domain.ReportSection{section},
	}
}

func MapAnalyticsToReport(a domain.Analytics, f MoneyFormatter) *domain.Report {
	summary := domain.ReportSection{
		Title: "Summary Statistics",
		Summary: map[string]interface{}{
			"Aircraft":  orAll(a.Filter.AircraftID),
			"Airport":   orAll(a.Filter.AirportID),
			"Continent": orAll(a.Filter.Continent),
		},
		Details: []domain.ReportDetail{
			{Name: "Total Parking Time", Value: a.TotalMinutes, Unit: "minutes", Description: fmt.Sprintf("%d hours", a.TotalHours)},
			{Name: "Total Parking Cost", Value: f.Format(a.TotalCost)},
			{Name: "Average Parking Time", Value: fmt.Sprintf("%.0f", a.AvgMinutesPerRecord), Unit: "minutes", Description: fmt.Sprintf("%s per event", f.Format(a.AvgCostPerRecord))},
			{Name: "Total Records", Value: a.RecordCount, Description: "Parking events analyzed"},
		},
	}

	timeline := domain.ReportSection{Title: "Parking Minutes Over Time"}
	for _, d := range a.Dates {
		timeline.Details = append(timeline.Details, domain.ReportDetail{Name: d.Date, Value: d.Minutes, Unit: "minutes"})
	}

	records := domain.ReportSection{Title: "Detailed Parking Records"}
	for _, row := range a.Rows {
		records.Details = append(records.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s %s", row.Record.Date, aircraftLabel(row)),
			Value:       row.Record.ParkingMinutes,
			Unit:        "minutes",
			Description: fmt.Sprintf("%s, %s", airportLabel(row), f.Format(row.Cost)),
		})
	}

	return &domain.Report{
		Title:       "Parking Analytics",
		Period:      a.Period,
		TotalAmount: a.TotalCost,
		Currency:    f.Code(),
		Sections: []domain.ReportSection{
			summary,
			timeline,
			airportSection("Parking Minutes by Airport", a.Airports, f),
			aircraftSection("Parking Minutes by Aircraft", a.Aircraft, f),
			records,
		},
	}
}

func MapGlobalToReport(g domain.Global, f MoneyFormatter) *domain.Report {
	airports := domain.ReportSection{
		Title: "Airport Details",
		Summary: map[string]interface{}{
			"Region": orAll(g.Continent),
		},
	}
	if g.MostUsedAirport != nil {
		airports.Summary["Most Used Airport"] = airportDescription(g.MostUsedAirport.Airport)
	}
	for _, a := range g.Airports {
		airports.Details = append(airports.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s (%s)", a.Airport.Code, a.Continent),
			Value:       a.Minutes,
			Unit:        "minutes",
			Description: fmt.Sprintf("%s, %s", airportDescription(a.Airport), f.Format(a.Cost)),
		})
	}

	continents := domain.ReportSection{Title: "Regional Breakdown"}
	for _, c := range g.Continents {
		continents.Details = append(continents.Details, domain.ReportDetail{
			Name:  string(c.Continent),
			Value: c.Minutes,
			Unit:  "minutes",
		})
	}

	return &domain.Report{
		Title:       "Global Parking Overview",
		TotalAmount: g.TotalCost,
		Currency:    f.Code(),
		Sections:    []domain.ReportSection{airports, continents},
	}
}

func airportSection(title string, list []domain.AirportMinutes, f MoneyFormatter) domain.ReportSection {
	section := domain.ReportSection{Title: title}
	for _, a := range list {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        a.Airport.Code,
			Value:       a.Minutes,
			Unit:        "minutes",
			Description: fmt.Sprintf("%s, %s", airportDescription(a.Airport), f.Format(a.Cost)),
		})
	}
	return section
}

func aircraftSection(title string, list []domain.AircraftMinutes, f MoneyFormatter) domain.ReportSection {
	section := domain.ReportSection{Title: title}
	for _, a := range list {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  a.Aircraft.Model,
			Value: a.Minutes,
			Unit:  "minutes",
			Description: fmt.Sprintf("%s, %d h, %s, %.1f%%",
				a.Aircraft.RegistrationNumber, a.Hours, f.Format(a.Cost), a.Percentage*100),
		})
	}
	return section
}

func airportDescription(a domain.Airport) string {
	return fmt.Sprintf("%s (%s, %s)", a.Name, a.City, a.Country)
}
