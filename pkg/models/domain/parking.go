package domain

import "time"

// DateLayout is the calendar date format used by parking records.
const DateLayout = "2006-01-02"

// ParkingRecord is the ground time of one aircraft at one airport on one day.
type ParkingRecord struct {
	AircraftID     string
	AirportID      string
	Date           string // 2023-06-10
	ParkingMinutes int64
}

// Day parses the record date.
func (r ParkingRecord) Day() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// Dataset is the full set of reference data and parking records loaded at startup.
type Dataset struct {
	Aircraft []Aircraft
	Airports []Airport
	Records  []ParkingRecord
}
