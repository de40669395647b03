package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusOnTheWay   = "on_the_way"
	OrderStatusDelivered  = "delivered"
	OrderStatusDelayed    = "delayed"
	OrderStatusCancelled  = "cancelled"
)

// Secuencia de avance automático. Desde on_the_way la orden pasa a un estado
// final (delivered o delayed); cancelled solo se alcanza por acción manual.
var orderStatusSequence = []string{OrderStatusPending, OrderStatusProcessing, OrderStatusOnTheWay}

// Remitentes válidos del hilo de mensajes de una orden.
const (
	MessageSenderCustomer = "customer"
	MessageSenderSupplier = "supplier"
)

// ValidOrderStatus indica si el estado pertenece a la enumeración.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOnTheWay,
		OrderStatusDelivered, OrderStatusDelayed, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminalStatus indica si el estado no admite más transiciones automáticas.
func IsTerminalStatus(s string) bool {
	return s == OrderStatusDelivered || s == OrderStatusDelayed || s == OrderStatusCancelled
}

// NextInSequence devuelve el siguiente estado de la secuencia automática.
// ok es false cuando el estado actual es terminal o no pertenece a la
// secuencia; final es true cuando el siguiente paso requiere elegir entre
// delivered y delayed.
func NextInSequence(current string) (next string, final, ok bool) {
	for i, s := range orderStatusSequence {
		if s != current {
			continue
		}
		if i == len(orderStatusSequence)-1 {
			return "", true, true
		}
		return orderStatusSequence[i+1], false, true
	}
	return "", false, false
}

// OrderLine es una línea de la orden: copia el nombre y precio del producto al
// momento de crearla (snapshot, no referencia viva).
type OrderLine struct {
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// StatusEntry es una entrada del historial de estados (solo-agregar).
type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment,omitempty"`
}

// OrderMessage es un mensaje del hilo con el proveedor (solo-agregar).
type OrderMessage struct {
	Sender    string    `json:"sender"` // customer o supplier
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Order representa una orden de compra a un proveedor. Las líneas y el total
// se fijan al crearla; el historial de estados y los mensajes solo crecen.
type Order struct {
	ID                string
	OrderNumber       string // sugerido secuencialmente, sin unicidad forzada
	Supplier          string
	Status            string
	Items             []OrderLine
	Total             decimal.Decimal
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	DeliveryAddress   string
	PaymentMethod     string
	Notes             string
	StatusHistory     []StatusEntry
	Messages          []OrderMessage
}

// IsTerminal indica si la orden alcanzó un estado final.
func (o *Order) IsTerminal() bool {
	return IsTerminalStatus(o.Status)
}

// Transition cambia el estado y agrega la entrada al historial.
func (o *Order) Transition(status, comment string, at time.Time) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: at,
		Comment:   comment,
	})
}
