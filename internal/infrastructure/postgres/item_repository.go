package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, sku, category, supplier, quantity, unit, price, batch, entry_date, expiry_date, reorder_point, description, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar
// pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Category, item.Supplier,
		item.Quantity, item.Unit, item.Price, item.Batch,
		item.EntryDate, item.ExpiryDate, item.ReorderPoint, item.Description,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil sin error si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.SKU, &i.Category, &i.Supplier, &i.Quantity, &i.Unit,
		&i.Price, &i.Batch, &i.EntryDate, &i.ExpiryDate, &i.ReorderPoint,
		&i.Description, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza un ítem existente (incluida la cantidad, para edición
// directa; el motor de movimientos usa AdjustQuantity).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, sku = $3, category = $4, supplier = $5,
			quantity = $6, unit = $7, price = $8, batch = $9, entry_date = $10,
			expiry_date = $11, reorder_point = $12, description = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Category, item.Supplier,
		item.Quantity, item.Unit, item.Price, item.Batch,
		item.EntryDate, item.ExpiryDate, item.ReorderPoint, item.Description,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// AdjustQuantity aplica el delta con un único UPDATE incremental: bajo
// concurrencia los deltas se suman en el almacén en vez de perderse en un
// leer-modificar-escribir. El WHERE evita que una salida deje la cantidad
// bajo cero.
func (r *ItemRepo) AdjustQuantity(id string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE items SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguir ítem inexistente de stock insuficiente.
			existing, gerr := r.GetByID(id)
			if gerr != nil {
				return decimal.Zero, gerr
			}
			if existing == nil {
				return decimal.Zero, domain.ErrNotFound
			}
			return decimal.Zero, domain.ErrInsufficientStock
		}
		return decimal.Zero, fmt.Errorf("adjust quantity: %w", err)
	}
	return newQty, nil
}

// List lista ítems con paginación (recientes primero).
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListLowStock lista los ítems con cantidad en o bajo su punto de reposición.
func (r *ItemRepo) ListLowStock() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity <= reorder_point ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// DistinctCategories devuelve los valores distintos y no vacíos de category.
func (r *ItemRepo) DistinctCategories() ([]string, error) {
	query := `SELECT DISTINCT category FROM items WHERE category <> '' ORDER BY category`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete elimina un ítem por ID. Sin cascada: los movimientos que lo
// referencian quedan huérfanos y se toleran.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.SKU, &i.Category, &i.Supplier,
			&i.Quantity, &i.Unit, &i.Price, &i.Batch, &i.EntryDate, &i.ExpiryDate,
			&i.ReorderPoint, &i.Description, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
