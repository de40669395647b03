package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (IN/OUT) de forma
// transaccional: el insert del movimiento y el ajuste de cantidad del ítem van
// en la misma transacción, y el ajuste es un incremento atómico en el almacén
// (nunca leer-modificar-escribir), de modo que movimientos concurrentes sobre
// el mismo ítem suman en vez de pisarse.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// RegisterMovement valida la entrada, verifica que el ítem exista y aplica
// movimiento + ajuste en una transacción. Una salida que dejaría la cantidad
// bajo cero se rechaza con domain.ErrInsufficientStock antes del commit.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || !entity.ValidMovementReason(in.Type, in.Reason) {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ItemID:    in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if _, err := itemRepo.AdjustQuantity(mov.ItemID, mov.Delta()); err != nil {
			// Rollback: el movimiento insertado arriba no queda persistido.
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:       mov.ID,
		Type:     mov.Type,
		Quantity: mov.Quantity,
		Reason:   mov.Reason,
		Date:     mov.Date,
		Notes:    mov.Notes,
		Item: dto.MovementItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			SKU:      item.SKU,
			Unit:     item.Unit,
			Category: item.Category,
		},
	}, nil
}

// List lista movimientos del más reciente al más antiguo con el ítem resuelto.
// Un ítem eliminado después del movimiento se representa con un marcador.
func (uc *RegisterMovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListWithItems(limit, offset)
	if err != nil {
		return nil, err
	}
	movements := make([]dto.MovementResponse, 0, len(list))
	for _, mw := range list {
		resp := dto.MovementResponse{
			ID:       mw.Movement.ID,
			Type:     mw.Movement.Type,
			Quantity: mw.Movement.Quantity,
			Reason:   mw.Movement.Reason,
			Date:     mw.Movement.Date,
			Notes:    mw.Movement.Notes,
		}
		if mw.Item != nil {
			resp.Item = dto.MovementItemResponse{
				ID:       mw.Item.ID,
				Name:     mw.Item.Name,
				SKU:      mw.Item.SKU,
				Unit:     mw.Item.Unit,
				Category: mw.Item.Category,
			}
		} else {
			resp.Item = dto.MovementItemResponse{Name: "Producto eliminado"}
		}
		movements = append(movements, resp)
	}
	return &dto.MovementListResponse{Movements: movements, Limit: limit, Offset: offset}, nil
}
