package models

import "time"

type TimeStats struct {
	MostCommonMonth   string
	MostCommonWeekday string
	MostCommonHour    int
}

type StationStats struct {
	MostCommonStartStation string
	MostCommonEndStation   string
	MostCommonTrip         string
}

// DurationStats covers the trips summed by the duration aggregation. Pairs is
// the number of trips that contributed. HasMean is false when Pairs is zero.
type DurationStats struct {
	Pairs   int
	Total   time.Duration
	Mean    time.Duration
	HasMean bool
}

// CategoryCount is one entry of a frequency table, kept in first-seen order.
type CategoryCount struct {
	Name  string
	Count int
}

type BirthYearStats struct {
	Earliest   int
	MostRecent int
	Median     int
}

// UserStats holds the rider breakdown. Genders is nil when the dataset has no
// Gender column; BirthYears is nil when it has no usable Birth Year values.
type UserStats struct {
	Subscribers int
	Customers   int
	Genders     []CategoryCount
	BirthYears  *BirthYearStats
}

// SectionTimings records how long each aggregation took to compute.
type SectionTimings struct {
	Time     time.Duration
	Station  time.Duration
	Duration time.Duration
	User     time.Duration
}

type StatsReport struct {
	Filter   FilterSpec
	Records  int
	Time     TimeStats
	Station  StationStats
	Duration DurationStats
	User     UserStats
	Timings  SectionTimings
}
