package analysis

import (
	"strings"
	"time"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// TimeStats reports the "most common" month, weekday and start hour. Each one
// is the median of the integer codes truncated to an int, not the mode: a
// skewed distribution can name a value that never occurs most often.
func (e *Engine) TimeStats(ds *models.TripDataset) (models.TimeStats, error) {
	n := ds.Len()
	if n == 0 {
		return models.TimeStats{}, ErrEmptyDataset
	}

	months := make([]float64, n)
	weekdays := make([]float64, n)
	hours := make([]float64, n)
	for i := range ds.Records {
		r := &ds.Records[i]
		months[i] = float64(r.Month)
		weekdays[i] = float64(r.WeekdayNumber)
		hours[i] = float64(r.StartHour)
	}

	return models.TimeStats{
		MostCommonMonth:   monthName(int(median(months) - 1)),
		MostCommonWeekday: models.Weekdays[int(median(weekdays))],
		MostCommonHour:    int(median(hours)),
	}, nil
}

// monthName maps a zero based month index to its title-cased name.
func monthName(idx int) string {
	if idx >= 0 && idx < len(models.Months) {
		m := models.Months[idx]
		return strings.ToUpper(m[:1]) + m[1:]
	}
	return time.Month(idx + 1).String()
}
