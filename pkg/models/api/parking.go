package api

import "time"

type Aircraft struct {
	ID                 string `json:"id"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registration_number"`
	Capacity           int    `json:"capacity"`
	YearManufactured   int    `json:"year_manufactured"`
	Image              string `json:"image,omitempty"`
}

type Airport struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Continent   string     `json:"continent"`
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
}

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Display  string  `json:"display"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type AirportMinutes struct {
	Airport Airport `json:"airport"`
	Minutes int64   `json:"minutes"`
	Cost    Money   `json:"cost"`
}

type AircraftMinutes struct {
	Aircraft   Aircraft `json:"aircraft"`
	Minutes    int64    `json:"minutes"`
	Hours      int64    `json:"hours"`
	Cost       Money    `json:"cost"`
	Percentage float64  `json:"percentage"`
}

type DateTotal struct {
	Date    string `json:"date"`
	Minutes int64  `json:"minutes"`
}

type ContinentTotal struct {
	Continent string `json:"continent"`
	Minutes   int64  `json:"minutes"`
}

type Dashboard struct {
	Period                TimePeriod        `json:"period"`
	FleetSize             int               `json:"fleet_size"`
	AirportsServed        int               `json:"airports_served"`
	TotalMinutes          int64             `json:"total_minutes"`
	TotalCost             Money             `json:"total_cost"`
	AvgMinutesPerAircraft float64           `json:"avg_minutes_per_aircraft"`
	AvgCostPerAircraft    Money             `json:"avg_cost_per_aircraft"`
	MostActiveAircraft    *AircraftMinutes  `json:"most_active_aircraft,omitempty"`
	MostUsedAirport       *AirportMinutes   `json:"most_used_airport,omitempty"`
	MostExpensiveAirport  *AirportMinutes   `json:"most_expensive_airport,omitempty"`
	Airports              []AirportMinutes  `json:"airports"`
	Aircraft              []AircraftMinutes `json:"aircraft"`
}

type Fleet struct {
	TotalMinutes          int64             `json:"total_minutes"`
	TotalCost             Money             `json:"total_cost"`
	AvgMinutesPerAircraft float64           `json:"avg_minutes_per_aircraft"`
	MostParked            *AircraftMinutes  `json:"most_parked,omitempty"`
	LeastParked           *AircraftMinutes  `json:"least_parked,omitempty"`
	Aircraft              []AircraftMinutes `json:"aircraft"`
}

type Filter struct {
	Aircraft  string `json:"aircraft"`
	Airport   string `json:"airport"`
	Continent string `json:"continent"`
}

type RecordRow struct {
	Date           string `json:"date"`
	AircraftID     string `json:"aircraft_id"`
	Aircraft       string `json:"aircraft"`
	AirportID      string `json:"airport_id"`
	Airport        string `json:"airport"`
	ParkingMinutes int64  `json:"parking_minutes"`
	Cost           Money  `json:"cost"`
}

type Analytics struct {
	Filter              Filter            `json:"filter"`
	Period              TimePeriod        `json:"period"`
	TotalMinutes        int64             `json:"total_minutes"`
	TotalHours          int64             `json:"total_hours"`
	TotalCost           Money             `json:"total_cost"`
	AvgMinutesPerRecord float64           `json:"avg_minutes_per_record"`
	AvgCostPerRecord    Money             `json:"avg_cost_per_record"`
	RecordCount         int               `json:"record_count"`
	Airports            []AirportMinutes  `json:"airports"`
	Aircraft            []AircraftMinutes `json:"aircraft"`
	Dates               []DateTotal       `json:"dates"`
	Records             []RecordRow       `json:"records"`
}

type GlobalAirport struct {
	AirportMinutes
	MarkerSize float64 `json:"marker_size"`
}

type Global struct {
	Continent       string           `json:"continent"`
	TotalMinutes    int64            `json:"total_minutes"`
	TotalCost       Money            `json:"total_cost"`
	MostUsedAirport *GlobalAirport   `json:"most_used_airport,omitempty"`
	Airports        []GlobalAirport  `json:"airports"`
	Continents      []ContinentTotal `json:"continents"`
}

type Continent struct {
	Country   string `json:"country"`
	Continent string `json:"continent"`
}
