package database

type RestaurantRepository interface {
	// UpsertRestaurant inserts or updates a restaurant keyed on slug and
	// returns its rest_id. An empty quarter never overwrites a stored one.
	UpsertRestaurant(name, slug, location, quarter string) (int64, error)

	GetRestaurant(restID int64) (*Restaurant, error)
	ListRestaurants() ([]Restaurant, error)
	SearchRestaurantsByName(name string) ([]Restaurant, error)
	ListRestaurantsByType(restaurantType string) ([]Restaurant, error)
	ListRestaurantsByQuarter(quarter string) ([]Restaurant, error)
	ListRestaurantTypes() ([]string, error)
	GetRestaurantCount() (int, error)
}

type CategoryRepository interface {
	// GetCategoryIDByName looks up a category id by exact name, falling back
	// to a case-insensitive match. Returns nil when no category matches.
	GetCategoryIDByName(name string) (*int64, error)

	GetCategoryName(categoryID int64) (string, error)
}

type ItemRepository interface {
	GetItemByNameAndRestaurant(name string, restID int64) (*Item, error)
	InsertItem(name, itemType string, categoryID *int64, restID int64) (int64, error)

	// UpdateItemClassification updates only the provided fields; a nil
	// categoryID or itemType leaves the stored value untouched.
	UpdateItemClassification(itemID int64, categoryID *int64, itemType *string) error

	ListItemsByRestaurant(restID int64) ([]Item, error)
	SearchItemsByName(name string) ([]Item, error)
	GetItemCount() (int, error)
}

type PriceRepository interface {
	// BulkUpsertPrices inserts price rows, silently ignoring rows whose
	// (rest_id, item_id, date, source) tuple already exists.
	BulkUpsertPrices(rows []Price) error

	InsertPrice(row Price) (int64, error)
	ListPricesByItem(itemID int64) ([]Price, error)
	GetPriceCount() (int, error)
}

type ReportRepository interface {
	InsertReport(report PriceReport) (int64, error)
	ListReports() ([]PriceReport, error)
}
