package database

import (
	"database/sql"
	"fmt"
)

type restaurantRepository struct {
	db *DB
}

func NewRestaurantRepository(db *DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) UpsertRestaurant(name, slug, location, quarter string) (int64, error) {
	var quarterArg interface{}
	if quarter != "" {
		quarterArg = quarter
	}

	var restID int64
	err := r.db.QueryRow(`
		INSERT INTO restaurant (name, type, slug, location, quarter)
		VALUES ($1, 'restaurant', $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			quarter = COALESCE(EXCLUDED.quarter, restaurant.quarter)
		RETURNING rest_id
	`, name, slug, location, quarterArg).Scan(&restID)

	if err != nil {
		return 0, fmt.Errorf("failed to upsert restaurant: %w", err)
	}

	return restID, nil
}

func (r *restaurantRepository) GetRestaurant(restID int64) (*Restaurant, error) {
	var restaurant Restaurant
	err := r.db.QueryRow(`
		SELECT rest_id, name, type, slug, COALESCE(location, ''), quarter
		FROM restaurant
		WHERE rest_id = $1
	`, restID).Scan(
		&restaurant.RestID, &restaurant.Name, &restaurant.Type,
		&restaurant.Slug, &restaurant.Location, &restaurant.Quarter,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) ListRestaurants() ([]Restaurant, error) {
	return r.queryRestaurants(`
		SELECT rest_id, name, type, slug, COALESCE(location, ''), quarter
		FROM restaurant
		ORDER BY name
	`)
}

func (r *restaurantRepository) SearchRestaurantsByName(name string) ([]Restaurant, error) {
	return r.queryRestaurants(`
		SELECT rest_id, name, type, slug, COALESCE(location, ''), quarter
		FROM restaurant
		WHERE name ILIKE $1
		ORDER BY name
	`, "%"+name+"%")
}

func (r *restaurantRepository) ListRestaurantsByType(restaurantType string) ([]Restaurant, error) {
	return r.queryRestaurants(`
		SELECT rest_id, name, type, slug, COALESCE(location, ''), quarter
		FROM restaurant
		WHERE type ILIKE $1
		ORDER BY name
	`, "%"+restaurantType+"%")
}

func (r *restaurantRepository) ListRestaurantsByQuarter(quarter string) ([]Restaurant, error) {
	return r.queryRestaurants(`
		SELECT rest_id, name, type, slug, COALESCE(location, ''), quarter
		FROM restaurant
		WHERE quarter ILIKE $1
		ORDER BY name
	`, "%"+quarter+"%")
}

func (r *restaurantRepository) ListRestaurantTypes() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT type FROM restaurant ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan type row: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type rows: %w", err)
	}

	return types, nil
}

func (r *restaurantRepository) GetRestaurantCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM restaurant`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}

func (r *restaurantRepository) queryRestaurants(query string, args ...interface{}) ([]Restaurant, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var restaurant Restaurant
		err := rows.Scan(
			&restaurant.RestID, &restaurant.Name, &restaurant.Type,
			&restaurant.Slug, &restaurant.Location, &restaurant.Quarter,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}

	return restaurants, nil
}
