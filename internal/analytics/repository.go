package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProductSales struct {
	Name      string `json:"name"`
	TotalSold int    `json:"totalSold"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MySQLAnalyticsRepository struct {
	db *sql.DB
}

func NewMySQLAnalyticsRepository(db *sql.DB) *MySQLAnalyticsRepository {
	return &MySQLAnalyticsRepository{db: db}
}

// OrdersPerDay counts orders created on or after since, grouped by day.
func (r *MySQLAnalyticsRepository) OrdersPerDay(ctx context.Context, since time.Time) ([]DayCount, error) {
	query := `
		SELECT DATE_FORMAT(createdAt, '%Y-%m-%d') AS day, COUNT(*) AS count
		FROM Orders
		WHERE createdAt >= ?
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("querying orders per day: %w", err)
	}
	defer rows.Close()

	var out []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scanning orders per day row: %w", err)
		}
		out = append(out, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders per day rows: %w", err)
	}

	return out, nil
}

// TopProducts ranks item snapshots by units sold. Grouping is by the
// snapshotted name, so renamed or deleted products keep their history.
func (r *MySQLAnalyticsRepository) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	query := `
		SELECT name, SUM(quantity) AS totalSold
		FROM OrderItems
		GROUP BY name
		ORDER BY totalSold DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top products: %w", err)
	}
	defer rows.Close()

	var out []ProductSales
	for rows.Next() {
		var ps ProductSales
		if err := rows.Scan(&ps.Name, &ps.TotalSold); err != nil {
			return nil, fmt.Errorf("scanning top products row: %w", err)
		}
		out = append(out, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top products rows: %w", err)
	}

	return out, nil
}

func (r *MySQLAnalyticsRepository) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM Orders
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying status distribution: %w", err)
	}
	defer rows.Close()

	var out []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scanning status distribution row: %w", err)
		}
		out = append(out, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status distribution rows: %w", err)
	}

	return out, nil
}
