package analysis

import (
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
	"gonum.org/v1/gonum/floats"
)

// UserStats counts riders by user type, gender and birth year. Subscriber and
// Customer must both occur; a missing one yields a *MissingCategoryError
// instead of a zero count.
func (e *Engine) UserStats(ds *models.TripDataset) (models.UserStats, error) {
	types := newFrequency()
	for i := range ds.Records {
		types.Add(ds.Records[i].UserType)
	}

	var out models.UserStats
	var ok bool
	if out.Subscribers, ok = types.Count(models.UserTypeSubscriber); !ok {
		return models.UserStats{}, &MissingCategoryError{Category: models.UserTypeSubscriber}
	}
	if out.Customers, ok = types.Count(models.UserTypeCustomer); !ok {
		return models.UserStats{}, &MissingCategoryError{Category: models.UserTypeCustomer}
	}

	if ds.Schema.HasGender {
		genders := newFrequency()
		for i := range ds.Records {
			g := ds.Records[i].Gender
			if g == "" {
				g = models.GenderUnspecified
			}
			genders.Add(g)
		}
		out.Genders = genders.Counts()
	}

	if ds.Schema.HasBirthYear {
		var years []float64
		for i := range ds.Records {
			if ds.Records[i].HasBirthYear {
				years = append(years, float64(ds.Records[i].BirthYear))
			}
		}
		if len(years) > 0 {
			out.BirthYears = &models.BirthYearStats{
				Earliest:   int(floats.Min(years)),
				MostRecent: int(floats.Max(years)),
				Median:     int(median(years)),
			}
		} else {
			e.logger.Debug("Birth Year column has no values", "city", ds.City)
		}
	}

	return out, nil
}
