package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

// fakeAdvancer implementación en memoria de OrderAdvancer que aplica las
// mismas reglas de transición que el caso de uso real.
type fakeAdvancer struct {
	orders map[string]*entity.Order
	calls  []string // "id:status" en orden de llamada
}

func newFakeAdvancer(orders ...*entity.Order) *fakeAdvancer {
	f := &fakeAdvancer{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeAdvancer) ListActive() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if !o.IsTerminal() {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAdvancer) UpdateStatus(id, status, comment string) (*dto.OrderResponse, error) {
	o := f.orders[id]
	o.Transition(status, comment, time.Now())
	f.calls = append(f.calls, id+":"+status)
	return &dto.OrderResponse{ID: id, Status: status}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newTestScheduler(adv *fakeAdvancer, pick func() float64) *StatusScheduler {
	s := NewStatusScheduler(adv, time.Minute, testLogger())
	if pick != nil {
		s.pick = pick
	}
	return s
}

func TestTick_AvanzaLaSecuencia(t *testing.T) {
	order := &entity.Order{ID: "o1", Status: entity.OrderStatusPending}
	adv := newFakeAdvancer(order)
	s := newTestScheduler(adv, func() float64 { return 0.9 }) // nunca delayed

	s.Tick()
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)

	s.Tick()
	assert.Equal(t, entity.OrderStatusOnTheWay, order.Status)

	s.Tick()
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)

	// Entregada: ticks posteriores no la tocan.
	s.Tick()
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	assert.Len(t, adv.calls, 3)
}

func TestTick_EligeDelayed(t *testing.T) {
	order := &entity.Order{ID: "o1", Status: entity.OrderStatusOnTheWay}
	adv := newFakeAdvancer(order)
	s := newTestScheduler(adv, func() float64 { return 0.1 }) // bajo el umbral de 0.3

	s.Tick()
	assert.Equal(t, entity.OrderStatusDelayed, order.Status)
}

func TestTick_NoTocaTerminales(t *testing.T) {
	cancelled := &entity.Order{ID: "o1", Status: entity.OrderStatusCancelled}
	delayed := &entity.Order{ID: "o2", Status: entity.OrderStatusDelayed}
	active := &entity.Order{ID: "o3", Status: entity.OrderStatusProcessing}
	adv := newFakeAdvancer(cancelled, delayed, active)
	s := newTestScheduler(adv, func() float64 { return 0.9 })

	s.Tick()

	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.OrderStatusDelayed, delayed.Status)
	assert.Equal(t, entity.OrderStatusOnTheWay, active.Status)
	require.Len(t, adv.calls, 1)
	assert.Equal(t, "o3:on_the_way", adv.calls[0])
}

func TestTick_AvanzaVariasOrdenes(t *testing.T) {
	a := &entity.Order{ID: "a", Status: entity.OrderStatusPending}
	b := &entity.Order{ID: "b", Status: entity.OrderStatusProcessing}
	adv := newFakeAdvancer(a, b)
	s := newTestScheduler(adv, func() float64 { return 0.9 })

	s.Tick()

	assert.Equal(t, entity.OrderStatusProcessing, a.Status)
	assert.Equal(t, entity.OrderStatusOnTheWay, b.Status)
}

func TestRun_SeDetieneConElContexto(t *testing.T) {
	adv := newFakeAdvancer()
	s := NewStatusScheduler(adv, time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run no terminó al cancelar el contexto")
	}
}
