package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_number, supplier, status, items, total, created_at, estimated_delivery, delivery_address, payment_method, notes, status_history, messages`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Líneas, historial y mensajes se persisten como JSONB embebido (snapshots).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.Supplier, order.Status,
		order.Items, order.Total, order.CreatedAt, order.EstimatedDelivery,
		order.DeliveryAddress, order.PaymentMethod, order.Notes,
		order.StatusHistory, order.Messages,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil sin error si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrderRow(r.q.QueryRow(context.Background(), query, id))
}

// Update guarda el estado completo de la orden (cabecera, estado, historial y
// mensajes; las líneas y el total no cambian tras la creación).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET supplier = $2, status = $3, estimated_delivery = $4,
			delivery_address = $5, payment_method = $6, notes = $7,
			status_history = $8, messages = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Supplier, order.Status, order.EstimatedDelivery,
		order.DeliveryAddress, order.PaymentMethod, order.Notes,
		order.StatusHistory, order.Messages,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista órdenes con paginación (recientes primero).
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListActive lista las órdenes que aún no alcanzan estado terminal.
func (r *OrderRepo) ListActive() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE status NOT IN ('delivered', 'delayed', 'cancelled')
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// Count devuelve el total de órdenes.
func (r *OrderRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM orders`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrderRow(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Supplier, &o.Status, &o.Items, &o.Total,
		&o.CreatedAt, &o.EstimatedDelivery, &o.DeliveryAddress,
		&o.PaymentMethod, &o.Notes, &o.StatusHistory, &o.Messages,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Supplier, &o.Status,
			&o.Items, &o.Total, &o.CreatedAt, &o.EstimatedDelivery,
			&o.DeliveryAddress, &o.PaymentMethod, &o.Notes,
			&o.StatusHistory, &o.Messages); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
