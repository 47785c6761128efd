package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrMalformedRecord = errors.New("malformed trip record")
)

var requiredColumns = []string{
	models.ColumnStartTime,
	models.ColumnEndTime,
	models.ColumnStartStation,
	models.ColumnEndStation,
	models.ColumnUserType,
}

type Parser struct {
	logger logger.Logger
}

func New(logger logger.Logger) *Parser {
	return &Parser{logger: logger}
}

// Header maps normalized column names to their position in a row.
type Header struct {
	index  map[string]int
	Schema models.Schema
}

// NormalizeColumn makes "Start Time", "start_time" and " START TIME " equal.
func NormalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_'
	}), "_")
}

// ReadHeader validates the column list of a dataset and records which
// optional demographic columns it carries.
func (p *Parser) ReadHeader(columns []string) (*Header, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		name := NormalizeColumn(c)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[NormalizeColumn(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	_, hasGender := index[NormalizeColumn(models.ColumnGender)]
	_, hasBirthYear := index[NormalizeColumn(models.ColumnBirthYear)]

	return &Header{
		index: index,
		Schema: models.Schema{
			HasGender:    hasGender,
			HasBirthYear: hasBirthYear,
		},
	}, nil
}

// ParseCSV reads a city dataset and hands every record, derived fields
// included, to onRecord in file order.
func (p *Parser) ParseCSV(ctx context.Context, r io.Reader, onRecord func(*models.TripRecord) error) (models.Schema, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Variable number of fields
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	columns, err := reader.Read()
	if err == io.EOF {
		return models.Schema{}, fmt.Errorf("reading header: %w", ErrMissingColumn)
	}
	if err != nil {
		return models.Schema{}, fmt.Errorf("reading header: %w", err)
	}

	header, err := p.ReadHeader(columns)
	if err != nil {
		return models.Schema{}, err
	}

	p.logger.Debug("CSV header parsed",
		"columns", len(columns),
		"has_gender", header.Schema.HasGender,
		"has_birth_year", header.Schema.HasBirthYear)

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return header.Schema, fmt.Errorf("reading record: %w", err)
		}

		count++
		record, err := p.ParseRecord(row, header)
		if err != nil {
			return header.Schema, fmt.Errorf("row %d: %w", count, err)
		}
		if err := onRecord(&record); err != nil {
			return header.Schema, err
		}

		if count%10000 == 0 {
			select {
			case <-ctx.Done():
				return header.Schema, ctx.Err()
			default:
			}
			p.logger.Debug("Progress", "records", count)
		}
	}

	p.logger.Info("CSV parsed", "records", count)
	return header.Schema, nil
}

// ParseRecord converts one row into a TripRecord and derives its time fields.
func (p *Parser) ParseRecord(row []string, header *Header) (models.TripRecord, error) {
	start, err := models.ParseTimestamp(p.getString(row, header, models.ColumnStartTime))
	if err != nil {
		return models.TripRecord{}, fmt.Errorf("%w: start time: %v", ErrMalformedRecord, err)
	}
	end, err := models.ParseTimestamp(p.getString(row, header, models.ColumnEndTime))
	if err != nil {
		return models.TripRecord{}, fmt.Errorf("%w: end time: %v", ErrMalformedRecord, err)
	}

	record := models.TripRecord{
		StartTime:    start,
		EndTime:      end,
		StartStation: p.getString(row, header, models.ColumnStartStation),
		EndStation:   p.getString(row, header, models.ColumnEndStation),
		UserType:     p.getString(row, header, models.ColumnUserType),
	}

	if header.Schema.HasGender {
		record.Gender = p.getString(row, header, models.ColumnGender)
	}
	if header.Schema.HasBirthYear {
		record.BirthYear, record.HasBirthYear = p.getYear(row, header, models.ColumnBirthYear)
	}

	record.Derive()
	return record, nil
}

// Helper functions to safely get values from rows
func (p *Parser) getString(row []string, header *Header, field string) string {
	if idx, ok := header.index[NormalizeColumn(field)]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// getYear accepts the float formatting pandas exports use ("1989.0").
// Blank and unparseable cells count as missing.
func (p *Parser) getYear(row []string, header *Header, field string) (int, bool) {
	str := p.getString(row, header, field)
	if str == "" || strings.EqualFold(str, "nan") {
		return 0, false
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		p.logger.Debug("Ignoring unparseable year", "field", field, "value", str)
		return 0, false
	}
	return int(val), true
}
