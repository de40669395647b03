package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest datos para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ProductID string          `json:"productId"`
	Type      string          `json:"type"` // IN u OUT
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Date      *time.Time      `json:"date"`
	Notes     string          `json:"notes"`
}

// MovementItemResponse resumen del ítem asociado a un movimiento.
type MovementItemResponse struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category,omitempty"`
}

// MovementResponse representación HTTP de un movimiento, con el ítem resuelto.
type MovementResponse struct {
	ID       string               `json:"id"`
	Type     string               `json:"type"`
	Quantity decimal.Decimal      `json:"quantity"`
	Reason   string               `json:"reason"`
	Date     time.Time            `json:"date"`
	Notes    string               `json:"notes,omitempty"`
	Item     MovementItemResponse `json:"item"`
}

// MovementListResponse listado paginado de movimientos (recientes primero).
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
