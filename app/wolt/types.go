package wolt

import "encoding/json"

// Venue is a restaurant listing from the venue-list endpoint.
type Venue struct {
	Name    string
	Slug    string
	City    string
	Address string
}

// MenuSection groups menu items under their source section name.
type MenuSection struct {
	Name  string
	Items []MenuItem
}

// MenuItem is a single menu entry. PriceCents is nil when the source
// carried no usable price field.
type MenuItem struct {
	Name       string
	PriceCents *int64
}

// District is a named city sub-area with its centroid.
type District struct {
	Name string
	Lat  float64
	Lon  float64
}

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Wire types below mirror the upstream JSON documents.

type venueListDoc struct {
	Sections []struct {
		Items []struct {
			Venue *venueDoc `json:"venue"`
		} `json:"items"`
	} `json:"sections"`
}

type venueDoc struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	City          string `json:"city"`
	Address       string `json:"address"`
	StreetAddress string `json:"street_address"`
}

type menuDoc struct {
	Sections []struct {
		Name  string        `json:"name"`
		Items []menuItemDoc `json:"items"`
	} `json:"sections"`
}

// menuItemDoc enumerates every price key variant the source has been seen
// to use, flat integers first, then the nested price object.
type menuItemDoc struct {
	Name            string          `json:"name"`
	Price           json.RawMessage `json:"price"`
	PriceCents      *int64          `json:"price_cents"`
	BasePriceSnake  *int64          `json:"base_price"`
	BasePriceCamel  *int64          `json:"basePrice"`
	BasePriceCents  *int64          `json:"basePriceCents"`
}

type priceObjectDoc struct {
	Amount *int64 `json:"amount"`
	Value  *int64 `json:"value"`
	Cents  *int64 `json:"cents"`
}

// priceCents resolves the item price in minor currency units, checking the
// accepted key variants in a fixed order. Returns nil when none is present.
func (d *menuItemDoc) priceCents() *int64 {
	if len(d.Price) > 0 {
		var flat int64
		if err := json.Unmarshal(d.Price, &flat); err == nil {
			return &flat
		}

		var obj priceObjectDoc
		if err := json.Unmarshal(d.Price, &obj); err == nil {
			for _, v := range []*int64{obj.Amount, obj.Value, obj.Cents} {
				if v != nil {
					return v
				}
			}
		}
	}

	for _, v := range []*int64{d.PriceCents, d.BasePriceSnake, d.BasePriceCamel, d.BasePriceCents} {
		if v != nil {
			return v
		}
	}

	return nil
}

type districtsDoc struct {
	CityDistricts []struct {
		Name     string    `json:"name"`
		Location []float64 `json:"location"` // [lon, lat]
	} `json:"city_districts"`
}

type autocompleteDoc struct {
	Predictions []struct {
		PlaceID string `json:"place_id"`
	} `json:"predictions"`
}

type geocodeDoc struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
				Lon *float64 `json:"lon"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}
