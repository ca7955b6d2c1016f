package wolt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(consumerURL, restaurantURL string) *Client {
	return NewClient(Options{
		ConsumerBaseURL:   consumerURL,
		RestaurantBaseURL: restaurantURL,
		UserAgent:         "test-agent",
		AcceptLanguage:    "hr-HR,hr;q=0.9",
		Language:          "hr",
		Country:           "hrv",
	})
}

func TestListVenues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pages/restaurants" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"sections": [
				{"items": [
					{"venue": {"name": "Pizzeria Karlo", "slug": "pizzeria-karlo", "city": "Zagreb", "address": "Ilica 10"}},
					{"venue": {"name": "Burger Bar", "slug": "burger-bar", "city": "Zagreb", "street_address": "Vlaška 50"}},
					{"venue": {"name": "", "slug": "nameless"}},
					{}
				]}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	venues, err := client.ListVenues(context.Background(), 45.8, 15.99)
	if err != nil {
		t.Fatalf("ListVenues failed: %v", err)
	}

	if len(venues) != 2 {
		t.Fatalf("Expected 2 venues, got %d", len(venues))
	}
	if venues[0].Address != "Ilica 10" {
		t.Errorf("Expected address 'Ilica 10', got %q", venues[0].Address)
	}
	// street_address is the fallback when address is missing
	if venues[1].Address != "Vlaška 50" {
		t.Errorf("Expected street_address fallback 'Vlaška 50', got %q", venues[1].Address)
	}
}

func TestGetMenu_PriceKeyVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"sections": [
				{"name": "Popularno", "items": [
					{"name": "Flat price", "price": 1030},
					{"name": "Nested amount", "price": {"amount": 990}},
					{"name": "Nested value", "price": {"value": 550}},
					{"name": "Snake cents", "price_cents": 450},
					{"name": "Camel base", "basePrice": 780},
					{"name": "No price"}
				]}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	sections, err := client.GetMenu(context.Background(), "pizzeria-karlo")
	if err != nil {
		t.Fatalf("GetMenu failed: %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Name != "Popularno" {
		t.Errorf("Expected section name 'Popularno', got %q", sections[0].Name)
	}

	items := sections[0].Items
	if len(items) != 6 {
		t.Fatalf("Expected 6 items, got %d", len(items))
	}

	expected := []struct {
		name  string
		cents int64
		ok    bool
	}{
		{"Flat price", 1030, true},
		{"Nested amount", 990, true},
		{"Nested value", 550, true},
		{"Snake cents", 450, true},
		{"Camel base", 780, true},
		{"No price", 0, false},
	}

	for i, e := range expected {
		if items[i].Name != e.name {
			t.Errorf("Item %d: expected name %q, got %q", i, e.name, items[i].Name)
		}
		if e.ok {
			if items[i].PriceCents == nil {
				t.Errorf("Item %q: expected price %d, got nil", e.name, e.cents)
			} else if *items[i].PriceCents != e.cents {
				t.Errorf("Item %q: expected price %d, got %d", e.name, e.cents, *items[i].PriceCents)
			}
		} else if items[i].PriceCents != nil {
			t.Errorf("Item %q: expected no price, got %d", e.name, *items[i].PriceCents)
		}
	}
}

func TestGetMenu_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	if _, err := client.GetMenu(context.Background(), "pizzeria-karlo"); err == nil {
		t.Error("Expected error for HTTP 429 response")
	}
}

func TestGetDistricts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/cities/5bec257863cca509a72ce47c/districts" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"city_districts": [
				{"name": "Trešnjevka", "location": [15.95, 45.80]},
				{"name": "Malformed", "location": [15.95]},
				{"name": "", "location": [15.95, 45.80]}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	districts, err := client.GetDistricts(context.Background(), "5bec257863cca509a72ce47c")
	if err != nil {
		t.Fatalf("GetDistricts failed: %v", err)
	}

	if len(districts) != 1 {
		t.Fatalf("Expected 1 valid district, got %d", len(districts))
	}
	d := districts[0]
	if d.Name != "Trešnjevka" {
		t.Errorf("Expected name 'Trešnjevka', got %q", d.Name)
	}
	// location is [lon, lat] upstream
	if d.Lat != 45.80 || d.Lon != 15.95 {
		t.Errorf("Expected lat=45.80 lon=15.95, got lat=%v lon=%v", d.Lat, d.Lon)
	}
}

func TestAutocompletePlaceID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("input"); got != "Ilica 10" {
			t.Errorf("Expected input 'Ilica 10', got %q", got)
		}
		w.Write([]byte(`{"predictions": [{"place_id": "abc123"}, {"place_id": "def456"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	placeID, err := client.AutocompletePlaceID(context.Background(), "Ilica 10")
	if err != nil {
		t.Fatalf("AutocompletePlaceID failed: %v", err)
	}
	if placeID != "abc123" {
		t.Errorf("Expected first prediction 'abc123', got %q", placeID)
	}
}

func TestAutocompletePlaceID_NoPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	placeID, err := client.AutocompletePlaceID(context.Background(), "Nepostojeća ulica 99")
	if err != nil {
		t.Fatalf("AutocompletePlaceID failed: %v", err)
	}
	if placeID != "" {
		t.Errorf("Expected empty place ID, got %q", placeID)
	}
}

func TestGeocodePlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "abc123" {
			t.Errorf("Expected place_id 'abc123', got %q", got)
		}
		w.Write([]byte(`{"results": [{"geometry": {"location": {"lat": 45.81, "lng": 15.97}}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	coords, err := client.GeocodePlace(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GeocodePlace failed: %v", err)
	}
	if coords == nil {
		t.Fatal("Expected coordinates, got nil")
	}
	if coords.Lat != 45.81 || coords.Lon != 15.97 {
		t.Errorf("Expected lat=45.81 lon=15.97, got lat=%v lon=%v", coords.Lat, coords.Lon)
	}
}

func TestGeocodePlace_MalformedLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"geometry": {"location": {}}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	coords, err := client.GeocodePlace(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GeocodePlace failed: %v", err)
	}
	if coords != nil {
		t.Errorf("Expected nil coordinates for malformed location, got %+v", coords)
	}
}
