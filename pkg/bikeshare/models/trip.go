package models

import (
	"time"
)

// Column names as they appear in the city CSV files. SQL tables use the
// snake_case form of the same names.
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

const (
	UserTypeSubscriber = "Subscriber"
	UserTypeCustomer   = "Customer"

	GenderUnspecified = "Unspecified"
)

// TripRecord is one bikeshare ride. Month, WeekdayName, WeekdayNumber and
// StartHour are derived from StartTime when the record is loaded.
type TripRecord struct {
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	UserType     string
	Gender       string // empty when missing
	BirthYear    int
	HasBirthYear bool

	Month         int
	WeekdayName   string
	WeekdayNumber int // 0=Monday .. 6=Sunday
	StartHour     int
}

// Derive fills in the fields computed from StartTime.
func (r *TripRecord) Derive() {
	r.Month = int(r.StartTime.Month())
	r.WeekdayName = r.StartTime.Weekday().String()
	r.WeekdayNumber = (int(r.StartTime.Weekday()) + 6) % 7
	r.StartHour = r.StartTime.Hour()
}

// Schema describes which optional demographic columns a dataset carries.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// TripDataset is the filtered, ordered set of trips for a single analysis run.
type TripDataset struct {
	City    City
	Schema  Schema
	Records []TripRecord
}

func (d *TripDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Page returns up to size records starting at offset. The returned slice is
// empty once offset moves past the end.
func (d *TripDataset) Page(offset, size int) []TripRecord {
	if d == nil || offset < 0 || offset >= len(d.Records) || size <= 0 {
		return nil
	}
	end := offset + size
	if end > len(d.Records) {
		end = len(d.Records)
	}
	return d.Records[offset:end]
}
