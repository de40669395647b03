package repository

import "github.com/jhoicas/despensa-api/internal/domain/entity"

// MovementWithItem es un movimiento junto al ítem referenciado. Item es nil
// cuando el ítem fue eliminado después del movimiento (referencia huérfana,
// tolerada).
type MovementWithItem struct {
	Movement *entity.Movement
	Item     *entity.Item
}

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListWithItems lista movimientos del más reciente al más antiguo, con el
	// ítem referenciado resuelto cuando todavía existe.
	ListWithItems(limit, offset int) ([]*MovementWithItem, error)
}
