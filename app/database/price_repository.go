package database

import (
	"database/sql"
	"fmt"
	"strings"
)

type priceRepository struct {
	db *DB
}

func NewPriceRepository(db *DB) PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) BulkUpsertPrices(rows []Price) error {
	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*6)
	for i, row := range rows {
		base := i * 6
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, row.Date, row.Value, row.Source, row.ItemID, row.RestID, row.UserID)
	}

	query := fmt.Sprintf(`
		INSERT INTO price (date, value, source, item_id, rest_id, user_id)
		VALUES %s
		ON CONFLICT (rest_id, item_id, date, source) DO NOTHING
	`, strings.Join(placeholders, ", "))

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to bulk upsert prices: %w", err)
	}

	return nil
}

func (r *priceRepository) InsertPrice(row Price) (int64, error) {
	var priceID int64
	err := r.db.QueryRow(`
		INSERT INTO price (date, value, source, item_id, rest_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (rest_id, item_id, date, source) DO NOTHING
		RETURNING price_id
	`, row.Date, row.Value, row.Source, row.ItemID, row.RestID, row.UserID).Scan(&priceID)

	if err == sql.ErrNoRows {
		// An identical (rest, item, date, source) observation already exists.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert price: %w", err)
	}

	return priceID, nil
}

func (r *priceRepository) ListPricesByItem(itemID int64) ([]Price, error) {
	rows, err := r.db.Query(`
		SELECT price_id, date, value, source, item_id, rest_id, user_id
		FROM price
		WHERE item_id = $1
		ORDER BY date DESC
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var prices []Price
	for rows.Next() {
		var price Price
		err := rows.Scan(
			&price.PriceID, &price.Date, &price.Value, &price.Source,
			&price.ItemID, &price.RestID, &price.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price rows: %w", err)
	}

	return prices, nil
}

func (r *priceRepository) GetPriceCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM price`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count prices: %w", err)
	}
	return count, nil
}
