package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFilterInput = errors.New("invalid filter input")

const All = "all"

type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// Title returns the city name as shown to the operator.
func (c City) Title() string {
	switch c {
	case Chicago:
		return "Chicago"
	case NewYorkCity:
		return "New York City"
	case Washington:
		return "Washington"
	}
	return string(c)
}

// Months are the only months present in the datasets. Index+1 is the
// calendar month number.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Weekdays are ordered Monday first to match TripRecord.WeekdayNumber.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// FilterSpec selects which trips of a city are analyzed. It can only be built
// through NewFilterSpec and does not change afterwards.
type FilterSpec struct {
	city  City
	month int
	day   string
}

// ParseCity validates an operator supplied city name.
func ParseCity(input string) (City, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, c := range Cities {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown city %q", ErrInvalidFilterInput, input)
}

// ParseMonth returns 0 for "all" and 1..6 for january..june.
func ParseMonth(input string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == All {
		return 0, nil
	}
	for i, m := range Months {
		if m == normalized {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidFilterInput, input)
}

// ParseDay returns "" for "all" and the title-cased weekday name otherwise.
func ParseDay(input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == All {
		return "", nil
	}
	for _, d := range Weekdays {
		if strings.ToLower(d) == normalized {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrInvalidFilterInput, input)
}

// NewFilterSpec builds a FilterSpec from raw operator input.
func NewFilterSpec(city, month, day string) (FilterSpec, error) {
	c, err := ParseCity(city)
	if err != nil {
		return FilterSpec{}, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return FilterSpec{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return FilterSpec{}, err
	}
	return FilterSpec{city: c, month: m, day: d}, nil
}

func (f FilterSpec) City() City { return f.city }

// Month returns the requested calendar month, or 0 for all months.
func (f FilterSpec) Month() int { return f.month }

// Day returns the requested weekday name, or "" for all days.
func (f FilterSpec) Day() string { return f.day }

func (f FilterSpec) AllMonths() bool { return f.month == 0 }

func (f FilterSpec) AllDays() bool { return f.day == "" }

// Matches reports whether a loaded record passes the month and day filters.
func (f FilterSpec) Matches(r *TripRecord) bool {
	if !f.AllMonths() && r.Month != f.month {
		return false
	}
	if !f.AllDays() && r.WeekdayName != f.day {
		return false
	}
	return true
}

func (f FilterSpec) String() string {
	month := All
	if !f.AllMonths() {
		month = Months[f.month-1]
	}
	day := All
	if !f.AllDays() {
		day = strings.ToLower(f.day)
	}
	return fmt.Sprintf("city=%s month=%s day=%s", f.city, month, day)
}
