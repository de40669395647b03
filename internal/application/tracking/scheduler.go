package tracking

import (
	"context"
	"math/rand"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

// Proporción de órdenes que terminan delayed al salir de on_the_way.
const delayedRatio = 0.3

// OrderAdvancer es el punto de entrada de transición de estado: el mismo que
// usa un operador humano. El programador no muta órdenes por otra vía.
// Lo satisface usecase.OrderUseCase.
type OrderAdvancer interface {
	ListActive() ([]*entity.Order, error)
	UpdateStatus(id, status, comment string) (*dto.OrderResponse, error)
}

// StatusScheduler avanza periódicamente las órdenes activas por la secuencia
// pending → processing → on_the_way → delivered|delayed. Reemplaza una
// integración real de seguimiento de entregas: simula los eventos externos.
// Un solo goroutine; cada tick corre completo antes del siguiente, así que no
// hay ticks solapados.
type StatusScheduler struct {
	orders   OrderAdvancer
	interval time.Duration
	log      *logger.Logger
	pick     func() float64 // inyectable en tests; por defecto rand.Float64
}

// NewStatusScheduler construye el programador.
func NewStatusScheduler(orders OrderAdvancer, interval time.Duration, log *logger.Logger) *StatusScheduler {
	return &StatusScheduler{
		orders:   orders,
		interval: interval,
		log:      log,
		pick:     rand.Float64,
	}
}

// Run ejecuta ticks hasta que el contexto se cancele. Llamar en un goroutine.
func (s *StatusScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.log.Info().Dur("interval", s.interval).Msg("programador de estados de órdenes iniciado")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("programador de estados detenido")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick avanza un paso cada orden activa. Las órdenes en estado terminal nunca
// se tocan (ListActive ya las excluye y NextInSequence lo reconfirma).
func (s *StatusScheduler) Tick() {
	orders, err := s.orders.ListActive()
	if err != nil {
		s.log.Error().Err(err).Msg("listar órdenes activas")
		return
	}
	for _, o := range orders {
		next, final, ok := entity.NextInSequence(o.Status)
		if !ok {
			continue
		}
		if final {
			next = entity.OrderStatusDelivered
			if s.pick() < delayedRatio {
				next = entity.OrderStatusDelayed
			}
		}
		if _, err := s.orders.UpdateStatus(o.ID, next, ""); err != nil {
			s.log.Error().Err(err).
				Str("order_id", o.ID).
				Str("status", next).
				Msg("avanzar estado de orden")
			continue
		}
		s.log.Debug().
			Str("order_id", o.ID).
			Str("order_number", o.OrderNumber).
			Str("status", next).
			Msg("orden avanzada")
	}
}
