// Package wolt is a read-only client for the Wolt consumer and restaurant
// APIs: venue listings, venue menus, city districts and the proxied Google
// geocoding endpoints.
package wolt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultConsumerBaseURL   = "https://consumer-api.wolt.com"
	DefaultRestaurantBaseURL = "https://restaurant-api.wolt.com"
)

type Options struct {
	ConsumerBaseURL   string
	RestaurantBaseURL string
	UserAgent         string
	AcceptLanguage    string // e.g. "hr-HR,hr;q=0.9"
	Language          string // geocoding language, e.g. "hr"
	Country           string // geocoding country component, e.g. "hrv"
	Timeout           time.Duration
}

type Client struct {
	consumerBaseURL   string
	restaurantBaseURL string
	userAgent         string
	acceptLanguage    string
	language          string
	country           string
	httpClient        *http.Client
}

func NewClient(opts Options) *Client {
	if opts.ConsumerBaseURL == "" {
		opts.ConsumerBaseURL = DefaultConsumerBaseURL
	}
	if opts.RestaurantBaseURL == "" {
		opts.RestaurantBaseURL = DefaultRestaurantBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Client{
		consumerBaseURL:   opts.ConsumerBaseURL,
		restaurantBaseURL: opts.RestaurantBaseURL,
		userAgent:         opts.UserAgent,
		acceptLanguage:    opts.AcceptLanguage,
		language:          opts.Language,
		country:           opts.Country,
		httpClient:        &http.Client{Timeout: opts.Timeout},
	}
}

// ListVenues fetches the restaurant listing page for the given coordinates.
func (c *Client) ListVenues(ctx context.Context, lat, lon float64) ([]Venue, error) {
	reqURL := fmt.Sprintf("%s/v1/pages/restaurants?lat=%v&lon=%v", c.consumerBaseURL, lat, lon)

	var doc venueListDoc
	if err := c.getJSON(ctx, reqURL, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch venue list: %w", err)
	}

	var venues []Venue
	for _, section := range doc.Sections {
		for _, item := range section.Items {
			v := item.Venue
			if v == nil || v.Name == "" || v.Slug == "" {
				continue
			}

			address := v.Address
			if address == "" {
				address = v.StreetAddress
			}

			venues = append(venues, Venue{
				Name:    v.Name,
				Slug:    v.Slug,
				City:    v.City,
				Address: address,
			})
		}
	}

	return venues, nil
}

// GetMenu fetches the venue-content menu for a venue slug.
func (c *Client) GetMenu(ctx context.Context, slug string) ([]MenuSection, error) {
	reqURL := fmt.Sprintf("%s/consumer-api/venue-content-api/v3/web/venue-content/slug/%s",
		c.consumerBaseURL, url.PathEscape(slug))

	var doc menuDoc
	if err := c.getJSON(ctx, reqURL, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch menu for %s: %w", slug, err)
	}

	sections := make([]MenuSection, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		section := MenuSection{Name: s.Name}
		for _, it := range s.Items {
			section.Items = append(section.Items, MenuItem{
				Name:       it.Name,
				PriceCents: it.priceCents(),
			})
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// GetDistricts fetches the named district centroids for a city.
func (c *Client) GetDistricts(ctx context.Context, cityID string) ([]District, error) {
	reqURL := fmt.Sprintf("%s/v1/cities/%s/districts", c.restaurantBaseURL, url.PathEscape(cityID))

	var doc districtsDoc
	if err := c.getJSON(ctx, reqURL, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch districts: %w", err)
	}

	var districts []District
	for _, d := range doc.CityDistricts {
		if d.Name == "" || len(d.Location) != 2 {
			continue
		}
		// Upstream location is [lon, lat]
		districts = append(districts, District{
			Name: d.Name,
			Lat:  d.Location[1],
			Lon:  d.Location[0],
		})
	}

	return districts, nil
}

// AutocompletePlaceID resolves a free-text address to the first predicted
// place identifier. Returns an empty string when there are no predictions.
func (c *Client) AutocompletePlaceID(ctx context.Context, address string) (string, error) {
	reqURL := fmt.Sprintf(
		"%s/v2/google/places/autocomplete/json?components=country:%s&input=%s&language=%s&radius=100000&types=geocode",
		c.consumerBaseURL, url.QueryEscape(c.country), url.QueryEscape(address), url.QueryEscape(c.language))

	var doc autocompleteDoc
	if err := c.getJSON(ctx, reqURL, &doc); err != nil {
		return "", fmt.Errorf("failed to autocomplete address: %w", err)
	}

	if len(doc.Predictions) == 0 {
		return "", nil
	}

	return doc.Predictions[0].PlaceID, nil
}

// GeocodePlace resolves a place identifier to coordinates. Returns nil when
// the response carries no usable location.
func (c *Client) GeocodePlace(ctx context.Context, placeID string) (*Coordinates, error) {
	reqURL := fmt.Sprintf("%s/v1/google/geocode/json?language=%s&place_id=%s",
		c.restaurantBaseURL, url.QueryEscape(c.language), url.QueryEscape(placeID))

	var doc geocodeDoc
	if err := c.getJSON(ctx, reqURL, &doc); err != nil {
		return nil, fmt.Errorf("failed to geocode place: %w", err)
	}

	if len(doc.Results) == 0 {
		return nil, nil
	}

	loc := doc.Results[0].Geometry.Location
	lng := loc.Lng
	if lng == nil {
		lng = loc.Lon
	}
	if loc.Lat == nil || lng == nil {
		return nil, nil
	}

	return &Coordinates{Lat: *loc.Lat, Lon: *lng}, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
