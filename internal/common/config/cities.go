package config

import (
	"fmt"
	"os"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
	"gopkg.in/yaml.v3"
)

// CitySource tells the loader where a city's trips live.
type CitySource struct {
	File  string `yaml:"file"`
	Table string `yaml:"table"`
}

// Catalog maps every supported city to its backing source.
type Catalog map[models.City]CitySource

func DefaultCatalog() Catalog {
	return Catalog{
		models.Chicago:     {File: "chicago.csv", Table: "chicago_trips"},
		models.NewYorkCity: {File: "new_york_city.csv", Table: "new_york_city_trips"},
		models.Washington:  {File: "washington.csv", Table: "washington_trips"},
	}
}

type catalogFile struct {
	Cities map[string]CitySource `yaml:"cities"`
}

// LoadCatalog reads a YAML file of the form
//
//	cities:
//	  chicago:
//	    file: chicago-2017.csv
//	    table: trips_chicago
//
// Entries override the defaults field by field. Unknown cities are rejected.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cities file: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing cities file: %w", err)
	}

	catalog := DefaultCatalog()
	for name, override := range file.Cities {
		city, err := models.ParseCity(name)
		if err != nil {
			return nil, fmt.Errorf("cities file: %w", err)
		}
		entry := catalog[city]
		if override.File != "" {
			entry.File = override.File
		}
		if override.Table != "" {
			entry.Table = override.Table
		}
		catalog[city] = entry
	}
	return catalog, nil
}

// Lookup returns the source for a city.
func (c Catalog) Lookup(city models.City) (CitySource, error) {
	src, ok := c[city]
	if !ok {
		return CitySource{}, fmt.Errorf("no data source configured for city %q", city)
	}
	return src, nil
}
