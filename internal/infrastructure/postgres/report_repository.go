package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de inventario.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Summary agrega totales de inventario en una sola pasada más el desglose por
// categoría.
func (r *ReportRepo) Summary(ctx context.Context) (*repository.InventorySummary, error) {
	const totalsQuery = `
		SELECT
		    count(*)                                            AS total_items,
		    COALESCE(SUM(quantity * price), 0)                  AS total_stock_value,
		    count(*) FILTER (WHERE quantity <= reorder_point)   AS low_stock_count
		FROM items`

	var s repository.InventorySummary
	err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&s.TotalItems, &s.TotalStockValue, &s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("report.Summary totals: %w", err)
	}

	const categoriesQuery = `
		SELECT category, count(*)
		FROM items
		WHERE category <> ''
		GROUP BY category
		ORDER BY count(*) DESC, category`

	rows, err := r.pool.Query(ctx, categoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("report.Summary categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		s.Categories = append(s.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}
