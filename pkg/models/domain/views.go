package domain

// AirportMinutes is an airport joined with its aggregated parking minutes.
type AirportMinutes struct {
	Airport   Airport
	Continent Continent
	Minutes   int64
	Cost      float64
}

// AircraftMinutes is an aircraft joined with its aggregated parking minutes.
type AircraftMinutes struct {
	Aircraft   Aircraft
	Minutes    int64
	Hours      int64
	Cost       float64
	Percentage float64 // share of the fleet total, 0..1
}

type Dashboard struct {
	Period                TimePeriod
	FleetSize             int
	AirportsServed        int
	TotalMinutes          int64
	TotalCost             float64
	AvgMinutesPerAircraft float64
	AvgCostPerAircraft    float64
	MostActiveAircraft    *AircraftMinutes
	MostUsedAirport       *AirportMinutes
	MostExpensiveAirport  *AirportMinutes
	Airports              []AirportMinutes // highest first
	Aircraft              []AircraftMinutes
}

type Fleet struct {
	TotalMinutes          int64
	TotalCost             float64
	AvgMinutesPerAircraft float64
	MostParked            *AircraftMinutes
	LeastParked           *AircraftMinutes
	Aircraft              []AircraftMinutes // highest first
}

// RecordRow is a parking record joined with its aircraft and airport.
type RecordRow struct {
	Record   ParkingRecord
	Aircraft *Aircraft
	Airport  *Airport
	Cost     float64
}

type Analytics struct {
	Filter              Filter
	Period              TimePeriod
	TotalMinutes        int64
	TotalHours          int64
	TotalCost           float64
	AvgMinutesPerRecord float64
	AvgCostPerRecord    float64
	RecordCount         int
	Airports            []AirportMinutes  // only airports with records, highest first
	Aircraft            []AircraftMinutes // only aircraft with records, highest first
	Dates               []DateTotal       // oldest first
	Rows                []RecordRow
}

// GlobalAirport is an airport placed on the world map.
type GlobalAirport struct {
	AirportMinutes
	MarkerSize float64
}

type Global struct {
	Continent       string
	TotalMinutes    int64
	TotalCost       float64
	MostUsedAirport *GlobalAirport
	Airports        []GlobalAirport // highest first
	Continents      []ContinentTotal
}
