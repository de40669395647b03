package dto

import "github.com/shopspring/decimal"

// CategoryCountResponse cantidad de ítems por categoría.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// InventorySummaryResponse resumen de inventario para el dashboard de reportes.
type InventorySummaryResponse struct {
	TotalItems      int                     `json:"totalItems"`
	TotalStockValue decimal.Decimal         `json:"totalStockValue"`
	LowStockCount   int                     `json:"lowStockCount"`
	Categories      []CategoryCountResponse `json:"categories"`
	LowStockItems   []ItemResponse          `json:"lowStockItems"`
}
