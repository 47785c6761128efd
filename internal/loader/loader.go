package loader

import (
	"context"
	"time"

	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

type Loader struct {
	source Source
	logger logger.Logger
}

func New(source Source, logger logger.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load reads the city's trips and applies the month and day filters. Every
// record has its derived fields populated before filtering, and the result
// keeps source order.
func (l *Loader) Load(ctx context.Context, spec models.FilterSpec) (*models.TripDataset, error) {
	started := time.Now()
	city := spec.City()

	var records []models.TripRecord
	schema, err := l.source.Read(ctx, city, func(r *models.TripRecord) error {
		records = append(records, *r)
		return nil
	})
	if err != nil {
		return nil, &DataSourceError{City: city, Location: l.source.Location(city), Err: err}
	}

	full := &models.TripDataset{City: city, Schema: schema, Records: records}
	filtered := Filter(full, spec)

	l.logger.Info("Trips loaded",
		"city", city,
		"source", l.source.Location(city),
		"filter", spec.String(),
		"total", full.Len(),
		"retained", filtered.Len(),
		"took", time.Since(started))

	return filtered, nil
}

// Filter returns a new dataset holding the records of ds that match spec, in
// their original order. Filtering an already filtered dataset with the same
// spec yields the same records.
func Filter(ds *models.TripDataset, spec models.FilterSpec) *models.TripDataset {
	out := &models.TripDataset{City: ds.City, Schema: ds.Schema}
	if spec.AllMonths() && spec.AllDays() {
		out.Records = append([]models.TripRecord(nil), ds.Records...)
		return out
	}

	for i := range ds.Records {
		if spec.Matches(&ds.Records[i]) {
			out.Records = append(out.Records, ds.Records[i])
		}
	}
	return out
}
