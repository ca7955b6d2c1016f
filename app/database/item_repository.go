package database

import (
	"database/sql"
	"fmt"
	"strings"
)

type itemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetItemByNameAndRestaurant(name string, restID int64) (*Item, error) {
	var item Item
	err := r.db.QueryRow(`
		SELECT item_id, name, type, category_id, rest_id
		FROM item
		WHERE name = $1 AND rest_id = $2
	`, name, restID).Scan(&item.ItemID, &item.Name, &item.Type, &item.CategoryID, &item.RestID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (r *itemRepository) InsertItem(name, itemType string, categoryID *int64, restID int64) (int64, error) {
	var itemID int64
	err := r.db.QueryRow(`
		INSERT INTO item (name, type, category_id, rest_id)
		VALUES ($1, $2, $3, $4)
		RETURNING item_id
	`, name, itemType, categoryID, restID).Scan(&itemID)

	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	return itemID, nil
}

func (r *itemRepository) UpdateItemClassification(itemID int64, categoryID *int64, itemType *string) error {
	var sets []string
	var args []interface{}
	idx := 1

	if categoryID != nil {
		sets = append(sets, fmt.Sprintf("category_id = $%d", idx))
		args = append(args, *categoryID)
		idx++
	}
	if itemType != nil {
		sets = append(sets, fmt.Sprintf("type = $%d", idx))
		args = append(args, *itemType)
		idx++
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, itemID)
	query := fmt.Sprintf("UPDATE item SET %s WHERE item_id = $%d", strings.Join(sets, ", "), idx)

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update item classification: %w", err)
	}

	return nil
}

func (r *itemRepository) ListItemsByRestaurant(restID int64) ([]Item, error) {
	return r.queryItems(`
		SELECT item_id, name, type, category_id, rest_id
		FROM item
		WHERE rest_id = $1
		ORDER BY name
	`, restID)
}

func (r *itemRepository) SearchItemsByName(name string) ([]Item, error) {
	return r.queryItems(`
		SELECT item_id, name, type, category_id, rest_id
		FROM item
		WHERE name ILIKE $1
		ORDER BY name
	`, "%"+name+"%")
}

func (r *itemRepository) GetItemCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM item`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (r *itemRepository) queryItems(query string, args ...interface{}) ([]Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Type, &item.CategoryID, &item.RestID); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}
