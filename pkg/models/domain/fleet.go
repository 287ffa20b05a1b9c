package domain

// Aircraft is a member of the fleet.
type Aircraft struct {
	ID                 string // b777-1
	Model              string // Boeing 777-300ER
	RegistrationNumber string // LN-A101
	Capacity           int    // 386 passengers
	YearManufactured   int    // 2018
	Image              string // picture URL, only used by the UI
}

type Coordinates struct {
	Longitude float64
	Latitude  float64
}

type Airport struct {
	ID          string // jfk
	Name        string // John F. Kennedy International Airport
	Code        string // JFK
	City        string
	Country     string // United States
	Coordinates Coordinates
}
