package repository

import "github.com/jhoicas/despensa-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	List(limit, offset int) ([]*entity.Order, error)
	// ListActive lista órdenes que aún no alcanzan un estado terminal.
	ListActive() ([]*entity.Order, error)
	// Count devuelve el total de órdenes; se usa para sugerir el número de la
	// siguiente orden (sugerencia, no unicidad garantizada).
	Count() (int, error)
	Delete(id string) error
}
