package loader

import (
	"fmt"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

// DataSourceError reports a city dataset that could not be read or is
// missing required columns. It ends the current analysis run.
type DataSourceError struct {
	City     models.City
	Location string
	Err      error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("loading %s trips from %s: %v", e.City.Title(), e.Location, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
