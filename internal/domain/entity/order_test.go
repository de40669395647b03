package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "on_the_way", "delivered", "delayed", "cancelled"} {
		assert.True(t, entity.ValidOrderStatus(s), s)
	}
	assert.False(t, entity.ValidOrderStatus("enviado"))
	assert.False(t, entity.ValidOrderStatus(""))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, entity.IsTerminalStatus(entity.OrderStatusDelivered))
	assert.True(t, entity.IsTerminalStatus(entity.OrderStatusDelayed))
	assert.True(t, entity.IsTerminalStatus(entity.OrderStatusCancelled))

	assert.False(t, entity.IsTerminalStatus(entity.OrderStatusPending))
	assert.False(t, entity.IsTerminalStatus(entity.OrderStatusProcessing))
	assert.False(t, entity.IsTerminalStatus(entity.OrderStatusOnTheWay))
}

func TestNextInSequence(t *testing.T) {
	next, final, ok := entity.NextInSequence(entity.OrderStatusPending)
	require.True(t, ok)
	assert.False(t, final)
	assert.Equal(t, entity.OrderStatusProcessing, next)

	next, final, ok = entity.NextInSequence(entity.OrderStatusProcessing)
	require.True(t, ok)
	assert.False(t, final)
	assert.Equal(t, entity.OrderStatusOnTheWay, next)

	// Desde on_the_way el paso es final: el llamador elige delivered o delayed.
	_, final, ok = entity.NextInSequence(entity.OrderStatusOnTheWay)
	require.True(t, ok)
	assert.True(t, final)
}

func TestNextInSequence_EstadosTerminales(t *testing.T) {
	for _, s := range []string{entity.OrderStatusDelivered, entity.OrderStatusDelayed, entity.OrderStatusCancelled, "inexistente"} {
		_, _, ok := entity.NextInSequence(s)
		assert.False(t, ok, s)
	}
}

func TestTransition_AgregaAlHistorial(t *testing.T) {
	now := time.Now()
	order := &entity.Order{
		Status: entity.OrderStatusPending,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusPending, Timestamp: now},
		},
	}

	order.Transition(entity.OrderStatusProcessing, "confirmada por proveedor", now.Add(time.Minute))

	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, entity.OrderStatusProcessing, order.StatusHistory[1].Status)
	assert.Equal(t, "confirmada por proveedor", order.StatusHistory[1].Comment)
	// La entrada original no se modifica: el historial es solo-agregar.
	assert.Equal(t, entity.OrderStatusPending, order.StatusHistory[0].Status)
}
