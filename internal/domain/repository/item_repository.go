package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// AdjustQuantity aplica delta de forma atómica en el almacén
	// (quantity = quantity + delta, nunca leer-modificar-escribir) y devuelve
	// la cantidad resultante. Con delta negativo que dejaría la cantidad bajo
	// cero retorna domain.ErrInsufficientStock; si el ítem no existe,
	// domain.ErrNotFound.
	AdjustQuantity(id string, delta decimal.Decimal) (decimal.Decimal, error)
	List(limit, offset int) ([]*entity.Item, error)
	ListLowStock() ([]*entity.Item, error)
	DistinctCategories() ([]string, error)
	Delete(id string) error
}
