package database

import (
	"fmt"
)

type reportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) InsertReport(report PriceReport) (int64, error) {
	var reportID int64
	err := r.db.QueryRow(`
		INSERT INTO pricereport (status, price, report_date, item_id, rest_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING report_id
	`, report.Status, report.Price, report.ReportDate, report.ItemID, report.RestID, report.UserID).Scan(&reportID)

	if err != nil {
		return 0, fmt.Errorf("failed to insert price report: %w", err)
	}

	return reportID, nil
}

func (r *reportRepository) ListReports() ([]PriceReport, error) {
	rows, err := r.db.Query(`
		SELECT report_id, status, price, report_date, item_id, rest_id, user_id
		FROM pricereport
		ORDER BY report_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query price reports: %w", err)
	}
	defer rows.Close()

	var reports []PriceReport
	for rows.Next() {
		var report PriceReport
		err := rows.Scan(
			&report.ReportID, &report.Status, &report.Price, &report.ReportDate,
			&report.ItemID, &report.RestID, &report.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price report row: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price report rows: %w", err)
	}

	return reports, nil
}
