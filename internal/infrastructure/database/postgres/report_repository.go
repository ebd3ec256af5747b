package postgres

import (
	"context"
	"fmt"
	"time"

	"restaurant-order-service/internal/usecase/report"
)

// ReportRepository answers the sales aggregates with raw SQL. sortBy is
// validated upstream against a closed set before it reaches the ORDER BY.
type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) TotalSales(ctx context.Context, start, end time.Time) (float64, error) {
	var total *float64
	err := r.db.DB.WithContext(ctx).
		Raw(`SELECT SUM(price) FROM orders WHERE timestamp >= ? AND timestamp <= ?`, start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute total sales: %w", err)
	}
	if total == nil {
		return 0, nil
	}

	return *total, nil
}

func (r *ReportRepository) TopSellingDishes(ctx context.Context, sortBy string, limit int) ([]*report.TopSellingItem, error) {
	orderBy := "total_orders"
	if sortBy == "totalRevenue" {
		orderBy = "total_revenue"
	}

	query := fmt.Sprintf(`
		SELECT di.id, di.name, COUNT(o.id) AS total_orders, SUM(o.price) AS total_revenue
		FROM dish_items di
		JOIN orders o ON di.id = o.dish_id
		GROUP BY di.id, di.name
		ORDER BY %s DESC
		LIMIT ?`, orderBy)

	var rows []struct {
		ID           uint
		Name         string
		TotalOrders  int64
		TotalRevenue float64
	}
	if err := r.db.DB.WithContext(ctx).Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to compute top selling dishes: %w", err)
	}

	items := make([]*report.TopSellingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &report.TopSellingItem{
			ID:           row.ID,
			Name:         row.Name,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: row.TotalRevenue,
		})
	}

	return items, nil
}

func (r *ReportRepository) AverageOrderValue(ctx context.Context, start, end time.Time) (float64, error) {
	var avg *float64
	err := r.db.DB.WithContext(ctx).
		Raw(`SELECT AVG(price) FROM orders WHERE timestamp >= ? AND timestamp <= ?`, start, end).
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average order value: %w", err)
	}
	if avg == nil {
		return 0, nil
	}

	return *avg, nil
}
