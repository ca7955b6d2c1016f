package scraper

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed zagreb.yml
var defaultCityConfig []byte

// CityConfig describes the scrape target: where to list venues, how to
// geocode their addresses and which listings to treat as virtual kitchens.
type CityConfig struct {
	Name   string  `yaml:"name"`
	CityID string  `yaml:"city_id"`
	Lat    float64 `yaml:"lat"`
	Lon    float64 `yaml:"lon"`

	// GeocodeSuffix is appended to venue addresses before geocoding to
	// anchor ambiguous street names to the city (e.g. ", Zagreb").
	GeocodeSuffix string `yaml:"geocode_suffix"`

	// VirtualMarker flags delivery-only listings by address substring.
	VirtualMarker string `yaml:"virtual_marker"`

	AcceptLanguage string `yaml:"accept_language"`
	Language       string `yaml:"language"`
	Country        string `yaml:"country"`
}

// LoadCityConfig reads a city configuration from path, or the embedded
// Zagreb configuration when path is empty.
func LoadCityConfig(path string) (*CityConfig, error) {
	data := defaultCityConfig
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read city config: %w", err)
		}
	}

	var config CityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse city config: %w", err)
	}

	if err := validateCityConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateCityConfig(config *CityConfig) error {
	if config.Name == "" {
		return fmt.Errorf("city config: name is required")
	}
	if config.CityID == "" {
		return fmt.Errorf("city config: city_id is required")
	}
	if config.Lat == 0 && config.Lon == 0 {
		return fmt.Errorf("city config: lat/lon are required")
	}
	return nil
}
