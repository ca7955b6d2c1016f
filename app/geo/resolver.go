// Package geo resolves free-text addresses to named city districts. An
// address goes through autocomplete and geocode lookups, then the resolved
// point is matched to the nearest district centroid by haversine distance.
package geo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/projekt-r/restorang/app/wolt"
)

// GeocodingSource is the subset of the upstream client the resolver needs.
type GeocodingSource interface {
	AutocompletePlaceID(ctx context.Context, address string) (string, error)
	GeocodePlace(ctx context.Context, placeID string) (*wolt.Coordinates, error)
	GetDistricts(ctx context.Context, cityID string) ([]wolt.District, error)
}

// Resolver caches geocode results (including negative outcomes) and the
// district list for its own lifetime. It is owned by a single batch run and
// is not safe for concurrent use.
type Resolver struct {
	source    GeocodingSource
	cityID    string
	delay     time.Duration
	sleep     func(time.Duration)
	cache     map[string]*wolt.Coordinates // nil value caches a failed lookup
	districts []wolt.District
}

func NewResolver(source GeocodingSource, cityID string, geocodeDelay time.Duration) *Resolver {
	return &Resolver{
		source: source,
		cityID: cityID,
		delay:  geocodeDelay,
		sleep:  time.Sleep,
		cache:  make(map[string]*wolt.Coordinates),
	}
}

// Warm loads the district list. Called once before a batch run; a failure
// leaves the resolver usable but every quarter resolves as absent.
func (r *Resolver) Warm(ctx context.Context) error {
	districts, err := r.source.GetDistricts(ctx, r.cityID)
	if err != nil {
		return fmt.Errorf("failed to load districts: %w", err)
	}

	r.districts = districts
	slog.Debug("Districts loaded", "count", len(districts))
	return nil
}

// DistrictCount reports how many districts are loaded.
func (r *Resolver) DistrictCount() int {
	return len(r.districts)
}

// ResolveQuarter maps an address to the nearest district name. Returns an
// empty string when the address cannot be resolved; an unresolvable address
// is an expected outcome, not an error.
func (r *Resolver) ResolveQuarter(ctx context.Context, address string) string {
	if address == "" {
		return ""
	}

	coords := r.geocode(ctx, address)
	if coords == nil {
		return ""
	}

	name, ok := NearestDistrict(coords.Lat, coords.Lon, r.districts)
	if !ok {
		return ""
	}

	return name
}

func (r *Resolver) geocode(ctx context.Context, address string) *wolt.Coordinates {
	key := strings.ToLower(strings.TrimSpace(address))
	if coords, ok := r.cache[key]; ok {
		return coords
	}

	coords := r.lookup(ctx, address)
	r.cache[key] = coords
	return coords
}

func (r *Resolver) lookup(ctx context.Context, address string) *wolt.Coordinates {
	placeID, err := r.source.AutocompletePlaceID(ctx, address)
	if err != nil {
		slog.Debug("Autocomplete failed", "address", address, "error", err)
		return nil
	}
	if placeID == "" {
		return nil
	}

	// Pause between the two upstream calls to avoid throttling.
	r.sleep(r.delay)

	coords, err := r.source.GeocodePlace(ctx, placeID)
	if err != nil {
		slog.Debug("Geocode failed", "address", address, "place_id", placeID, "error", err)
		return nil
	}

	return coords
}
