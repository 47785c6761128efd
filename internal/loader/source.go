package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/loader/parser"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// Source reads every trip of a city, in storage order, and reports the
// dataset's schema.
type Source interface {
	Read(ctx context.Context, city models.City, onRecord func(*models.TripRecord) error) (models.Schema, error)
	Location(city models.City) string
}

// CSVSource reads one CSV file per city from a directory.
type CSVSource struct {
	dir     string
	catalog config.Catalog
	parser  *parser.Parser
}

func NewCSVSource(dir string, catalog config.Catalog, p *parser.Parser) *CSVSource {
	return &CSVSource{dir: dir, catalog: catalog, parser: p}
}

func (s *CSVSource) Location(city models.City) string {
	src, err := s.catalog.Lookup(city)
	if err != nil {
		return s.dir
	}
	return filepath.Join(s.dir, src.File)
}

func (s *CSVSource) Read(ctx context.Context, city models.City, onRecord func(*models.TripRecord) error) (models.Schema, error) {
	if _, err := s.catalog.Lookup(city); err != nil {
		return models.Schema{}, err
	}

	f, err := os.Open(s.Location(city))
	if err != nil {
		return models.Schema{}, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	return s.parser.ParseCSV(ctx, f, onRecord)
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads one table per city. Any database/sql driver works: the
// schema is discovered from the result columns and every value is scanned as
// text, so Postgres and SQLite tables share the CSV column semantics.
type SQLSource struct {
	db      *sql.DB
	catalog config.Catalog
	parser  *parser.Parser
}

func NewSQLSource(db *sql.DB, catalog config.Catalog, p *parser.Parser) *SQLSource {
	return &SQLSource{db: db, catalog: catalog, parser: p}
}

func (s *SQLSource) Location(city models.City) string {
	src, err := s.catalog.Lookup(city)
	if err != nil {
		return "database"
	}
	return "table " + src.Table
}

func (s *SQLSource) Read(ctx context.Context, city models.City, onRecord func(*models.TripRecord) error) (models.Schema, error) {
	src, err := s.catalog.Lookup(city)
	if err != nil {
		return models.Schema{}, err
	}
	if !identifier.MatchString(src.Table) {
		return models.Schema{}, fmt.Errorf("invalid table name %q", src.Table)
	}

	// rows come back in storage order, which is load order for both drivers
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, src.Table))
	if err != nil {
		return models.Schema{}, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return models.Schema{}, fmt.Errorf("reading columns: %w", err)
	}

	header, err := s.parser.ReadHeader(columns)
	if err != nil {
		return models.Schema{}, err
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	row := make([]string, len(columns))

	count := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return header.Schema, fmt.Errorf("scanning row %d: %w", count+1, err)
		}
		for i, v := range values {
			row[i] = strings.TrimSpace(v.String) // NULL scans as ""
		}

		count++
		record, err := s.parser.ParseRecord(row, header)
		if err != nil {
			return header.Schema, fmt.Errorf("row %d: %w", count, err)
		}
		if err := onRecord(&record); err != nil {
			return header.Schema, err
		}
	}
	if err := rows.Err(); err != nil {
		return header.Schema, fmt.Errorf("iterating rows: %w", err)
	}

	return header.Schema, nil
}
