package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

func TestValidMovementReason(t *testing.T) {
	// Motivos de entrada
	for _, r := range []string{"Compra", "Devolucion", "Ajuste"} {
		assert.True(t, entity.ValidMovementReason(entity.MovementTypeIN, r), r)
	}
	// Motivos de salida
	for _, r := range []string{"Venta", "Perdida", "Robo", "Vencimiento", "Dano", "Ajuste"} {
		assert.True(t, entity.ValidMovementReason(entity.MovementTypeOUT, r), r)
	}

	// Un motivo de salida no sirve para una entrada y viceversa.
	assert.False(t, entity.ValidMovementReason(entity.MovementTypeIN, "Venta"))
	assert.False(t, entity.ValidMovementReason(entity.MovementTypeOUT, "Compra"))
	assert.False(t, entity.ValidMovementReason("TRANSFER", "Ajuste"))
}

func TestMovementDelta(t *testing.T) {
	in := &entity.Movement{Type: entity.MovementTypeIN, Quantity: decimal.NewFromInt(5)}
	out := &entity.Movement{Type: entity.MovementTypeOUT, Quantity: decimal.NewFromInt(3)}

	assert.True(t, in.Delta().Equal(decimal.NewFromInt(5)))
	assert.True(t, out.Delta().Equal(decimal.NewFromInt(-3)))
}

func TestItemIsLowStock(t *testing.T) {
	item := &entity.Item{
		Quantity:     decimal.NewFromInt(4),
		ReorderPoint: decimal.NewFromInt(5),
	}
	assert.True(t, item.IsLowStock())

	item.Quantity = decimal.NewFromInt(5) // en el punto exacto también es bajo stock
	assert.True(t, item.IsLowStock())

	item.Quantity = decimal.NewFromInt(6)
	assert.False(t, item.IsLowStock())
}

func TestItemStockValue(t *testing.T) {
	item := &entity.Item{
		Quantity: decimal.RequireFromString("2.5"),
		Price:    decimal.NewFromInt(1000),
	}
	assert.True(t, item.StockValue().Equal(decimal.NewFromInt(2500)))
}
