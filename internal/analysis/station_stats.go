package analysis

import (
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

const tripSeparator = " to "

// StationStats finds the most used start station, end station and start/end
// pair. The pair count covers the same records as DurationStats.
func (e *Engine) StationStats(ds *models.TripDataset) (models.StationStats, error) {
	if ds.Len() == 0 {
		return models.StationStats{}, ErrEmptyDataset
	}

	starts := newFrequency()
	ends := newFrequency()
	for i := range ds.Records {
		starts.Add(ds.Records[i].StartStation)
		ends.Add(ds.Records[i].EndStation)
	}

	trips := newFrequency()
	for i := 0; i < e.pairLimit(ds); i++ {
		r := &ds.Records[i]
		trips.Add(r.StartStation + tripSeparator + r.EndStation)
	}

	trip, ok := trips.MostCommon()
	if !ok {
		return models.StationStats{}, ErrNoTripPairs
	}
	start, _ := starts.MostCommon()
	end, _ := ends.MostCommon()

	return models.StationStats{
		MostCommonStartStation: start,
		MostCommonEndStation:   end,
		MostCommonTrip:         trip,
	}, nil
}
