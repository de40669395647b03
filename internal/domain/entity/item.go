package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un insumo del inventario del restaurante.
// Quantity solo se modifica por edición directa o por el motor de movimientos.
// Supplier es el nombre del proveedor en texto libre (sin integridad referencial).
type Item struct {
	ID           string
	Name         string
	SKU          string // código asignado por el operador; el sistema no exige unicidad
	Category     string
	Supplier     string
	Quantity     decimal.Decimal
	Unit         string // kg, lt, un, etc.
	Price        decimal.Decimal
	Batch        string
	EntryDate    *time.Time
	ExpiryDate   *time.Time
	ReorderPoint decimal.Decimal
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si la cantidad está en o bajo el punto de reposición.
func (i *Item) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.ReorderPoint)
}

// StockValue devuelve el valor del stock actual (cantidad × precio unitario).
func (i *Item) StockValue() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}
