package analysis

import (
	"time"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DurationStats sums end minus start over the leading records chosen by
// pairLimit. End times are not checked against start times, so a negative
// trip lowers the total.
func (e *Engine) DurationStats(ds *models.TripDataset) models.DurationStats {
	limit := e.pairLimit(ds)
	seconds := make([]float64, limit)
	for i := 0; i < limit; i++ {
		r := &ds.Records[i]
		seconds[i] = r.EndTime.Sub(r.StartTime).Seconds()
	}

	out := models.DurationStats{Pairs: limit}
	if limit == 0 {
		return out
	}

	out.Total = secondsToDuration(floats.Sum(seconds))
	out.Mean = secondsToDuration(stat.Mean(seconds, nil))
	out.HasMean = true
	return out
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
