package database

import (
	"database/sql"
	"fmt"
)

type categoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetCategoryIDByName(name string) (*int64, error) {
	var categoryID int64
	err := r.db.QueryRow(`
		SELECT category_id FROM category WHERE name = $1
	`, name).Scan(&categoryID)

	if err == nil {
		return &categoryID, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	// Tolerant fallback for casing mismatches in seeded data
	err = r.db.QueryRow(`
		SELECT category_id FROM category WHERE name ILIKE $1
	`, name).Scan(&categoryID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category by name (ilike): %w", err)
	}

	return &categoryID, nil
}

func (r *categoryRepository) GetCategoryName(categoryID int64) (string, error) {
	var name string
	err := r.db.QueryRow(`
		SELECT name FROM category WHERE category_id = $1
	`, categoryID).Scan(&name)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get category name: %w", err)
	}

	return name, nil
}
