package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryCount cantidad de ítems por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// InventorySummary agregados de inventario para el reporte.
type InventorySummary struct {
	TotalItems      int
	TotalStockValue decimal.Decimal // Σ cantidad × precio
	LowStockCount   int             // ítems con cantidad <= punto de reposición
	Categories      []CategoryCount
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	Summary(ctx context.Context) (*InventorySummary, error)
}
