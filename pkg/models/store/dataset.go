package store

// Dataset mirrors the YAML layout of a dataset file.
type Dataset struct {
	Aircraft []Aircraft      `yaml:"aircraft"`
	Airports []Airport       `yaml:"airports"`
	Parking  []ParkingRecord `yaml:"parking"`
}

type Aircraft struct {
	ID                 string `yaml:"id"`
	Model              string `yaml:"model"`
	RegistrationNumber string `yaml:"registration_number"`
	Capacity           int    `yaml:"capacity"`
	YearManufactured   int    `yaml:"year_manufactured"`
	Image              string `yaml:"image"`
}

type Airport struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
	// Coordinates are [longitude, latitude].
	Coordinates []float64 `yaml:"coordinates"`
}

type ParkingRecord struct {
	AircraftID     string `yaml:"aircraft_id"`
	AirportID      string `yaml:"airport_id"`
	Date           string `yaml:"date"`
	ParkingMinutes int64  `yaml:"parking_minutes"`
}
