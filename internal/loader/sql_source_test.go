package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/common/db"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/internal/loader/parser"
)

func newSQLiteLoader(t *testing.T, statements ...string) *Loader {
	t.Helper()
	log := logger.Nop()

	database, err := db.New(context.Background(), "sqlite", ":memory:", log)
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	for _, stmt := range statements {
		if _, err := database.Conn().Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}

	return New(NewSQLSource(database.Conn(), config.DefaultCatalog(), parser.New(log)), log)
}

func TestSQLSourceMatchesCSVSemantics(t *testing.T) {
	l := newSQLiteLoader(t,
		`CREATE TABLE chicago_trips (
			start_time TEXT, end_time TEXT, start_station TEXT, end_station TEXT,
			user_type TEXT, gender TEXT, birth_year REAL)`,
		`INSERT INTO chicago_trips VALUES
			('2017-01-04 08:27:49', '2017-01-04 08:34:45', 'May St & Taylor St', 'Wood St & Taylor St', 'Subscriber', 'Male', 1981),
			('2017-03-06 13:49:38', '2017-03-06 13:55:28', 'Christiana Ave & Lawrence Ave', 'St. Louis Ave & Balmoral Ave', 'Subscriber', NULL, NULL),
			('2017-01-17 14:53:07', '2017-01-17 15:02:01', 'Clark St & Randolph St', 'Desplaines St & Jackson Blvd', 'Customer', 'Female', 1990.0)`,
	)

	ds, err := l.Load(context.Background(), mustSpec(t, "chicago", "january", "all"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ds.Schema.HasGender || !ds.Schema.HasBirthYear {
		t.Errorf("Expected demographic columns, got %+v", ds.Schema)
	}
	if ds.Len() != 2 {
		t.Fatalf("Expected 2 january trips, got %d", ds.Len())
	}
	if ds.Records[0].StartStation != "May St & Taylor St" || ds.Records[1].StartStation != "Clark St & Randolph St" {
		t.Errorf("Unexpected order %+v", ds.Records)
	}
	if ds.Records[1].BirthYear != 1990 || !ds.Records[1].HasBirthYear || ds.Records[1].WeekdayName != "Tuesday" {
		t.Errorf("Unexpected record %+v", ds.Records[1])
	}
}

func TestSQLSourceNullGenderIsMissing(t *testing.T) {
	l := newSQLiteLoader(t,
		`CREATE TABLE chicago_trips (start_time TEXT, end_time TEXT, start_station TEXT, end_station TEXT, user_type TEXT, gender TEXT)`,
		`INSERT INTO chicago_trips VALUES ('2017-03-06 13:49:38', '2017-03-06 13:55:28', 'A', 'B', 'Subscriber', NULL)`,
	)

	ds, err := l.Load(context.Background(), mustSpec(t, "chicago", "all", "all"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ds.Schema.HasGender || ds.Schema.HasBirthYear {
		t.Errorf("Unexpected schema %+v", ds.Schema)
	}
	if ds.Records[0].Gender != "" {
		t.Errorf("Expected NULL gender to load as missing, got %q", ds.Records[0].Gender)
	}
}

func TestSQLSourceMissingTable(t *testing.T) {
	l := newSQLiteLoader(t)

	_, err := l.Load(context.Background(), mustSpec(t, "washington", "all", "all"))
	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("Expected DataSourceError, got %v", err)
	}
	if dsErr.Location != "table washington_trips" {
		t.Errorf("Unexpected location %q", dsErr.Location)
	}
}
