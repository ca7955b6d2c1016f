// Package scraper runs the scrape-and-reconcile batch: venue listing,
// quarter resolution, menu classification and idempotent persistence.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/projekt-r/restorang/app/classify"
	"github.com/projekt-r/restorang/app/database"
	"github.com/projekt-r/restorang/app/wolt"
)

// SourceScraper marks automated price observations; user-submitted entries
// carry a user identifier as source instead.
const SourceScraper = "scraper"

// VenueSource is the subset of the upstream client the runner needs.
type VenueSource interface {
	ListVenues(ctx context.Context, lat, lon float64) ([]wolt.Venue, error)
	GetMenu(ctx context.Context, slug string) ([]wolt.MenuSection, error)
}

// QuarterResolver resolves a venue address to a district name, empty when
// unresolvable.
type QuarterResolver interface {
	Warm(ctx context.Context) error
	ResolveQuarter(ctx context.Context, address string) string
}

// IsVirtualPlace reports whether an address flags a delivery-only listing.
func IsVirtualPlace(address, marker string) bool {
	if address == "" || marker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(marker))
}

// Runner processes one city sequentially: one venue at a time, fully
// reconciled before moving on. All writes are upserts keyed on natural keys,
// so interrupted or repeated runs converge instead of duplicating rows.
type Runner struct {
	source      VenueSource
	resolver    QuarterResolver
	restaurants database.RestaurantRepository
	categories  database.CategoryRepository
	items       database.ItemRepository
	prices      database.PriceRepository
	city        *CityConfig
	venueDelay  time.Duration

	sleep func(time.Duration)
	now   func() time.Time

	// Process-lifetime memo of category name to id, negative results included.
	categoryIDs map[classify.Category]*int64
}

func NewRunner(source VenueSource, resolver QuarterResolver,
	restaurants database.RestaurantRepository, categories database.CategoryRepository,
	items database.ItemRepository, prices database.PriceRepository,
	city *CityConfig, venueDelay time.Duration) *Runner {
	return &Runner{
		source:      source,
		resolver:    resolver,
		restaurants: restaurants,
		categories:  categories,
		items:       items,
		prices:      prices,
		city:        city,
		venueDelay:  venueDelay,
		sleep:       time.Sleep,
		now:         time.Now,
		categoryIDs: make(map[classify.Category]*int64),
	}
}

// Run executes one full batch. Per-venue failures are logged and skipped;
// only an unavailable venue listing aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.resolver.Warm(ctx); err != nil {
		// Quarters stay absent for this run; everything else proceeds.
		slog.Warn("District list unavailable, quarters will not be resolved", "error", err)
	}

	venues, err := r.source.ListVenues(ctx, r.city.Lat, r.city.Lon)
	if err != nil {
		return fmt.Errorf("failed to list venues: %w", err)
	}

	filtered := venues[:0]
	virtualCount := 0
	for _, v := range venues {
		if IsVirtualPlace(v.Address, r.city.VirtualMarker) {
			virtualCount++
			continue
		}
		filtered = append(filtered, v)
	}

	slog.Info("Venue list loaded", "city", r.city.Name, "venues", len(filtered), "virtual_skipped", virtualCount)

	for i, venue := range filtered {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.processVenue(ctx, venue)

		slog.Debug("Venue done", "progress", fmt.Sprintf("%d/%d", i+1, len(filtered)))
		if i < len(filtered)-1 {
			r.sleep(r.venueDelay)
		}
	}

	return nil
}

func (r *Runner) processVenue(ctx context.Context, venue wolt.Venue) {
	location := venue.Address
	if location == "" {
		location = venue.City
	}

	quarter := ""
	if venue.Address != "" {
		quarter = r.resolver.ResolveQuarter(ctx, venue.Address+r.city.GeocodeSuffix)
	}

	restID, err := r.restaurants.UpsertRestaurant(venue.Name, venue.Slug, location, quarter)
	if err != nil {
		slog.Error("Failed to upsert restaurant", "venue", venue.Slug, "error", err)
		return
	}

	sections, err := r.source.GetMenu(ctx, venue.Slug)
	if err != nil {
		// The restaurant row stays; the menu is retried on the next run.
		slog.Warn("Menu fetch failed, skipping venue", "venue", venue.Slug, "error", err)
		return
	}

	// Midnight in the clock's own location, so the observation day follows
	// the configured timezone rather than UTC.
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var priceRows []database.Price
	for _, section := range sections {
		for _, item := range section.Items {
			if item.Name == "" || item.PriceCents == nil {
				continue
			}

			category := classify.Classify(section.Name, item.Name)
			categoryID := r.categoryID(category)

			itemID, err := r.resolveItem(item.Name, restID, categoryID, category.ItemType())
			if err != nil {
				slog.Error("Failed to resolve item", "venue", venue.Slug, "item", item.Name, "error", err)
				continue
			}

			priceRows = append(priceRows, database.Price{
				Date:   today,
				Value:  float64(*item.PriceCents) / 100,
				Source: SourceScraper,
				ItemID: itemID,
				RestID: restID,
			})
		}
	}

	if err := r.prices.BulkUpsertPrices(priceRows); err != nil {
		slog.Error("Failed to store prices", "venue", venue.Slug, "error", err)
		return
	}

	slog.Info("Venue processed", "venue", venue.Name, "items", len(priceRows), "quarter", quarter)
}

// resolveItem finds or creates the item row for (name, rest_id), correcting
// a stale category or type with a minimal-diff update. The (name, rest_id)
// key itself is never touched.
func (r *Runner) resolveItem(name string, restID int64, categoryID *int64, itemType string) (int64, error) {
	existing, err := r.items.GetItemByNameAndRestaurant(name, restID)
	if err != nil {
		return 0, err
	}

	if existing == nil {
		return r.items.InsertItem(name, itemType, categoryID, restID)
	}

	var newCategoryID *int64
	if categoryID != nil && (existing.CategoryID == nil || *existing.CategoryID != *categoryID) {
		newCategoryID = categoryID
	}

	var newType *string
	if itemType != "" && existing.Type != itemType {
		newType = &itemType
	}

	if newCategoryID != nil || newType != nil {
		if err := r.items.UpdateItemClassification(existing.ItemID, newCategoryID, newType); err != nil {
			return 0, err
		}
	}

	return existing.ItemID, nil
}

func (r *Runner) categoryID(category classify.Category) *int64 {
	if id, ok := r.categoryIDs[category]; ok {
		return id
	}

	id, err := r.categories.GetCategoryIDByName(string(category))
	if err != nil {
		slog.Error("Failed to look up category", "category", category, "error", err)
		return nil
	}

	r.categoryIDs[category] = id
	return id
}
