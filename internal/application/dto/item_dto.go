package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest datos para crear un ítem.
type CreateItemRequest struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Category     string           `json:"category"`
	Supplier     string           `json:"supplier"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	Price        decimal.Decimal  `json:"price"`
	Batch        string           `json:"batch"`
	EntryDate    *time.Time       `json:"entryDate"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint"`
	Description  string           `json:"description"`
}

// UpdateItemRequest actualización parcial: solo los campos presentes se aplican.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Category     *string          `json:"category"`
	Supplier     *string          `json:"supplier"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit"`
	Price        *decimal.Decimal `json:"price"`
	Batch        *string          `json:"batch"`
	EntryDate    *time.Time       `json:"entryDate"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint"`
	Description  *string          `json:"description"`
}

// ItemResponse representación HTTP de un ítem.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	Batch        string          `json:"batch"`
	EntryDate    *time.Time      `json:"entryDate,omitempty"`
	ExpiryDate   *time.Time      `json:"expiryDate,omitempty"`
	ReorderPoint decimal.Decimal `json:"reorderPoint"`
	Description  string          `json:"description"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
