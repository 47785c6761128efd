package analysis

import (
	"time"

	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// ExcludeFinalRecord reproduces the historical report, which leaves the last
// filtered trip out of the most-common-trip and duration aggregations.
const ExcludeFinalRecord = true

type Options struct {
	// ExcludeFinalRecord drops the last trip from trip pair and duration stats.
	ExcludeFinalRecord bool
}

func DefaultOptions() Options {
	return Options{ExcludeFinalRecord: ExcludeFinalRecord}
}

// Engine computes the report sections. Each section is a pure function of the
// dataset; the engine holds no state between calls.
type Engine struct {
	opts   Options
	logger logger.Logger
}

func New(opts Options, logger logger.Logger) *Engine {
	return &Engine{opts: opts, logger: logger}
}

// pairLimit is the number of leading records used by the trip pair and
// duration aggregations.
func (e *Engine) pairLimit(ds *models.TripDataset) int {
	n := ds.Len()
	if e.opts.ExcludeFinalRecord && n > 0 {
		return n - 1
	}
	return n
}

// Analyze computes every section in display order. Any failure aborts the
// whole report.
func (e *Engine) Analyze(ds *models.TripDataset, spec models.FilterSpec) (*models.StatsReport, error) {
	report := &models.StatsReport{Filter: spec, Records: ds.Len()}

	started := time.Now()
	timeStats, err := e.TimeStats(ds)
	if err != nil {
		return nil, err
	}
	report.Time = timeStats
	report.Timings.Time = time.Since(started)

	started = time.Now()
	stationStats, err := e.StationStats(ds)
	if err != nil {
		return nil, err
	}
	report.Station = stationStats
	report.Timings.Station = time.Since(started)

	started = time.Now()
	report.Duration = e.DurationStats(ds)
	report.Timings.Duration = time.Since(started)

	started = time.Now()
	userStats, err := e.UserStats(ds)
	if err != nil {
		return nil, err
	}
	report.User = userStats
	report.Timings.User = time.Since(started)

	e.logger.Debug("Report computed",
		"records", report.Records,
		"time_stats", report.Timings.Time,
		"station_stats", report.Timings.Station,
		"duration_stats", report.Timings.Duration,
		"user_stats", report.Timings.User)

	return report, nil
}
