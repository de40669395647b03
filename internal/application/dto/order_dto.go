package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden al crearla. Subtotal se calcula en el
// servidor (cantidad × precio), nunca se acepta del cliente.
type OrderLineRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// CreateOrderRequest datos para crear una orden de compra.
// OrderNumber es opcional: si viene vacío se sugiere el siguiente correlativo.
type CreateOrderRequest struct {
	OrderNumber       string             `json:"orderNumber"`
	Supplier          string             `json:"supplier"`
	Items             []OrderLineRequest `json:"items"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery"`
	DeliveryAddress   string             `json:"deliveryAddress"`
	PaymentMethod     string             `json:"paymentMethod"`
	Notes             string             `json:"notes"`
}

// UpdateOrderRequest actualización parcial de campos de cabecera. Las líneas y
// el total no se pueden editar después de crear la orden; el estado se cambia
// por el endpoint de estado.
type UpdateOrderRequest struct {
	Supplier          *string    `json:"supplier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	DeliveryAddress   *string    `json:"deliveryAddress"`
	PaymentMethod     *string    `json:"paymentMethod"`
	Notes             *string    `json:"notes"`
}

// UpdateOrderStatusRequest cambio manual de estado, con comentario opcional.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// AppendOrderMessageRequest nuevo mensaje del hilo de la orden.
type AppendOrderMessageRequest struct {
	Sender string `json:"sender"` // customer o supplier
	Text   string `json:"text"`
}

// OrderLineResponse línea de orden en respuestas.
type OrderLineResponse struct {
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// StatusEntryResponse entrada del historial de estados.
type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment,omitempty"`
}

// OrderMessageResponse mensaje del hilo de la orden.
type OrderMessageResponse struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// OrderResponse representación HTTP de una orden.
type OrderResponse struct {
	ID                string                 `json:"id"`
	OrderNumber       string                 `json:"orderNumber"`
	Supplier          string                 `json:"supplier"`
	Status            string                 `json:"status"`
	Items             []OrderLineResponse    `json:"items"`
	Total             decimal.Decimal        `json:"total"`
	CreatedAt         time.Time              `json:"createdAt"`
	EstimatedDelivery *time.Time             `json:"estimatedDelivery,omitempty"`
	DeliveryAddress   string                 `json:"deliveryAddress"`
	PaymentMethod     string                 `json:"paymentMethod"`
	Notes             string                 `json:"notes,omitempty"`
	StatusHistory     []StatusEntryResponse  `json:"statusHistory"`
	Messages          []OrderMessageResponse `json:"messages,omitempty"`
}

// OrderListResponse listado paginado de órdenes (recientes primero).
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
