package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Motivos canónicos por tipo de movimiento.
var movementReasons = map[string][]string{
	MovementTypeIN:  {"Compra", "Devolucion", "Ajuste"},
	MovementTypeOUT: {"Venta", "Perdida", "Robo", "Vencimiento", "Dano", "Ajuste"},
}

// ValidMovementType indica si el tipo es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// ValidMovementReason indica si el motivo pertenece a la enumeración del tipo dado.
func ValidMovementReason(movementType, reason string) bool {
	for _, r := range movementReasons[movementType] {
		if r == reason {
			return true
		}
	}
	return false
}

// Movement registra una entrada o salida de stock de un Item.
// Es inmutable una vez creado: nunca se actualiza ni se elimina.
// Quantity siempre es positiva; el signo lo determina Type.
type Movement struct {
	ID        string
	ItemID    string
	Type      string
	Quantity  decimal.Decimal
	Reason    string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// Delta devuelve el ajuste con signo a aplicar sobre la cantidad del Item:
// +Quantity para IN, -Quantity para OUT.
func (m *Movement) Delta() decimal.Decimal {
	if m.Type == MovementTypeOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
