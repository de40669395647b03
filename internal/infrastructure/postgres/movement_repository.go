package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). Los movimientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, item_id, type, quantity, reason, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.Type, movement.Quantity,
		movement.Reason, movement.Date, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListWithItems lista movimientos del más reciente al más antiguo con el ítem
// referenciado resuelto vía LEFT JOIN: si el ítem fue eliminado, los campos
// del join vienen NULL y el movimiento se devuelve con Item nil.
func (r *MovementRepo) ListWithItems(limit, offset int) ([]*repository.MovementWithItem, error) {
	query := `
		SELECT m.id, m.item_id, m.type, m.quantity, m.reason, m.date, m.notes, m.created_at,
		       i.id, i.name, i.sku, i.category, i.unit
		FROM movements m
		LEFT JOIN items i ON i.id = m.item_id
		ORDER BY m.date DESC, m.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovementWithItem
	for rows.Next() {
		var m entity.Movement
		var itemID, itemName, itemSKU, itemCategory, itemUnit *string
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Reason,
			&m.Date, &m.Notes, &m.CreatedAt,
			&itemID, &itemName, &itemSKU, &itemCategory, &itemUnit); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		mw := &repository.MovementWithItem{Movement: &m}
		if itemID != nil {
			mw.Item = &entity.Item{
				ID:       *itemID,
				Name:     *itemName,
				SKU:      *itemSKU,
				Category: *itemCategory,
				Unit:     *itemUnit,
			}
		}
		list = append(list, mw)
	}
	return list, rows.Err()
}
