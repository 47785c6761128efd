package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewFilterSpec(t *testing.T) {
	tests := []struct {
		city, month, day string
		wantCity         City
		wantMonth        int
		wantDay          string
	}{
		{"Chicago", "all", "all", Chicago, 0, ""},
		{"new york city", "June", "sunday", NewYorkCity, 6, "Sunday"},
		{" WASHINGTON ", "january", "Wednesday", Washington, 1, "Wednesday"},
	}
	for _, tt := range tests {
		spec, err := NewFilterSpec(tt.city, tt.month, tt.day)
		if err != nil {
			t.Fatalf("NewFilterSpec(%q, %q, %q): %v", tt.city, tt.month, tt.day, err)
		}
		if spec.City() != tt.wantCity || spec.Month() != tt.wantMonth || spec.Day() != tt.wantDay {
			t.Errorf("Unexpected spec %s", spec)
		}
	}
}

func TestNewFilterSpecInvalid(t *testing.T) {
	tests := [][3]string{
		{"boston", "all", "all"},
		{"chicago", "july", "all"},
		{"chicago", "all", "someday"},
		{"chicago", "", "all"},
	}
	for _, tt := range tests {
		if _, err := NewFilterSpec(tt[0], tt[1], tt[2]); !errors.Is(err, ErrInvalidFilterInput) {
			t.Errorf("NewFilterSpec(%v): expected ErrInvalidFilterInput, got %v", tt, err)
		}
	}
}

func TestFilterSpecMatches(t *testing.T) {
	r := TripRecord{StartTime: time.Date(2017, 3, 10, 9, 0, 0, 0, time.UTC)} // Friday
	r.Derive()

	tests := []struct {
		month, day string
		want       bool
	}{
		{"all", "all", true},
		{"march", "all", true},
		{"april", "all", false},
		{"all", "friday", true},
		{"march", "monday", false},
	}
	for _, tt := range tests {
		spec, err := NewFilterSpec("chicago", tt.month, tt.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := spec.Matches(&r); got != tt.want {
			t.Errorf("%s: Matches = %v, want %v", spec, got, tt.want)
		}
	}
}

func TestFilterSpecString(t *testing.T) {
	spec, _ := NewFilterSpec("new york city", "may", "Saturday")
	if got := spec.String(); got != "city=new york city month=may day=saturday" {
		t.Errorf("Unexpected String() %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"2017-01-01 09:07:57", "2017-01-01T09:07:57Z", "2017-01-01 09:07:57.000000"} {
		ts, err := ParseTimestamp(in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", in, err)
			continue
		}
		if ts.Hour() != 9 || ts.Minute() != 7 || ts.Day() != 1 {
			t.Errorf("ParseTimestamp(%q) = %v", in, ts)
		}
	}
	if _, err := ParseTimestamp(""); err == nil {
		t.Error("Expected error for empty timestamp")
	}
	if _, err := ParseTimestamp("01/02/2017"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestDatasetPage(t *testing.T) {
	ds := &TripDataset{Records: make([]TripRecord, 7)}
	if got := len(ds.Page(0, 5)); got != 5 {
		t.Errorf("Expected 5 records, got %d", got)
	}
	if got := len(ds.Page(5, 5)); got != 2 {
		t.Errorf("Expected 2 records, got %d", got)
	}
	if ds.Page(10, 5) != nil {
		t.Error("Expected nil past the end")
	}
	var empty *TripDataset
	if empty.Len() != 0 || empty.Page(0, 5) != nil {
		t.Error("Expected nil dataset to be empty")
	}
}
