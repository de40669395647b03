package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de compra. UpdateStatus es el único
// punto de entrada para transiciones de estado, tanto manuales como del
// programador automático.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden en estado pending con una entrada de historial.
// El total es la suma de los subtotales de línea, fijado al crear.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	orderNumber := in.OrderNumber
	if orderNumber == "" {
		count, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		// Correlativo sugerido, no se fuerza unicidad.
		orderNumber = fmt.Sprintf("OC-%04d", count+1)
	}

	lines := make([]entity.OrderLine, 0, len(in.Items))
	total := decimal.Zero
	for _, l := range in.Items {
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		subtotal := l.Quantity.Mul(l.UnitPrice)
		lines = append(lines, entity.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New().String(),
		OrderNumber:       orderNumber,
		Supplier:          in.Supplier,
		Status:            entity.OrderStatusPending,
		Items:             lines,
		Total:             total,
		CreatedAt:         now,
		EstimatedDelivery: in.EstimatedDelivery,
		DeliveryAddress:   in.DeliveryAddress,
		PaymentMethod:     in.PaymentMethod,
		Notes:             in.Notes,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusPending, Timestamp: now},
		},
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación (recientes primero).
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	orders := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Orders: orders, Limit: limit, Offset: offset}, nil
}

// Update aplica una actualización parcial de cabecera. Líneas, total, estado e
// historial no se tocan por esta vía.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Supplier != nil {
		order.Supplier = *in.Supplier
	}
	if in.EstimatedDelivery != nil {
		order.EstimatedDelivery = in.EstimatedDelivery
	}
	if in.DeliveryAddress != nil {
		order.DeliveryAddress = *in.DeliveryAddress
	}
	if in.PaymentMethod != nil {
		order.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado de la orden y agrega la entrada al historial.
// Una orden en estado terminal (delivered, delayed, cancelled) no admite más
// transiciones: retorna domain.ErrConflict.
func (uc *OrderUseCase) UpdateStatus(id, status, comment string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.IsTerminal() {
		return nil, domain.ErrConflict
	}
	order.Transition(status, comment, time.Now())
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AppendMessage agrega un mensaje al hilo de la orden (solo-agregar).
func (uc *OrderUseCase) AppendMessage(id string, in dto.AppendOrderMessageRequest) (*dto.OrderResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Sender != entity.MessageSenderCustomer && in.Sender != entity.MessageSenderSupplier {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.Messages = append(order.Messages, entity.OrderMessage{
		Sender:    in.Sender,
		Text:      in.Text,
		Timestamp: time.Now(),
	})
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListActive devuelve las órdenes que aún no alcanzan estado terminal.
func (uc *OrderUseCase) ListActive() ([]*entity.Order, error) {
	return uc.repo.ListActive()
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	history := make([]dto.StatusEntryResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, dto.StatusEntryResponse{
			Status:    h.Status,
			Timestamp: h.Timestamp,
			Comment:   h.Comment,
		})
	}
	var messages []dto.OrderMessageResponse
	for _, m := range o.Messages {
		messages = append(messages, dto.OrderMessageResponse{
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: m.Timestamp,
			Read:      m.Read,
		})
	}
	return &dto.OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		Supplier:          o.Supplier,
		Status:            o.Status,
		Items:             items,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		DeliveryAddress:   o.DeliveryAddress,
		PaymentMethod:     o.PaymentMethod,
		Notes:             o.Notes,
		StatusHistory:     history,
		Messages:          messages,
	}
}
