package usecase_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// fakeOrderRepo implementación en memoria de repository.OrderRepository.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) ListActive() ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if !o.IsTerminal() {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders), nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func createTestOrder(t *testing.T, uc *usecase.OrderUseCase) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateOrderRequest{
		Supplier: "Distribuidora Central",
		Items: []dto.OrderLineRequest{
			{Name: "Harina", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1200)},
			{Name: "Aceite", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(3500)},
		},
	})
	require.NoError(t, err)
	return out
}

func TestOrderCreate_EstadoInicialYTotal(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	out := createTestOrder(t, uc)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	// Total = 10×1200 + 4×3500
	assert.True(t, out.Total.Equal(decimal.NewFromInt(26000)))
	require.Len(t, out.StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusPending, out.StatusHistory[0].Status)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(12000)))
}

func TestOrderCreate_SugiereNumeroCorrelativo(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())

	first := createTestOrder(t, uc)
	second := createTestOrder(t, uc)

	assert.Equal(t, "OC-0001", first.OrderNumber)
	assert.Equal(t, "OC-0002", second.OrderNumber)

	// Un número provisto por el cliente se respeta tal cual.
	custom, err := uc.Create(dto.CreateOrderRequest{
		OrderNumber: "OC-especial",
		Supplier:    "Distribuidora Central",
		Items:       []dto.OrderLineRequest{{Name: "Sal", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "OC-especial", custom.OrderNumber)
}

func TestOrderCreate_ValidaEntrada(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())

	_, err := uc.Create(dto.CreateOrderRequest{Items: []dto.OrderLineRequest{{Name: "X", Quantity: decimal.NewFromInt(1)}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOrderRequest{Supplier: "Proveedor"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOrderRequest{
		Supplier: "Proveedor",
		Items:    []dto.OrderLineRequest{{Name: "X", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_AgregaHistorial(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	out, err := uc.UpdateStatus(created.ID, entity.OrderStatusProcessing, "confirmada")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, out.Status)
	require.Len(t, out.StatusHistory, 2)
	assert.Equal(t, "confirmada", out.StatusHistory[1].Comment)
}

func TestOrderUpdateStatus_TerminalEsConflicto(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	_, err := uc.UpdateStatus(created.ID, entity.OrderStatusDelivered, "")
	require.NoError(t, err)

	// Entregada: cualquier transición posterior se rechaza, incluso cancelar.
	_, err = uc.UpdateStatus(created.ID, entity.OrderStatusCancelled, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderUpdateStatus_Errores(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	_, err := uc.UpdateStatus(created.ID, "volando", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("no-existe", entity.OrderStatusProcessing, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdate_SoloCabecera(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	notes := "entregar por acceso trasero"
	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, notes, out.Notes)
	// Las líneas y el total quedan fijados al crear.
	assert.True(t, out.Total.Equal(created.Total))
	assert.Len(t, out.Items, len(created.Items))
	assert.Equal(t, created.Status, out.Status)
}

func TestOrderAppendMessage(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	out, err := uc.AppendMessage(created.ID, dto.AppendOrderMessageRequest{
		Sender: entity.MessageSenderCustomer,
		Text:   "¿Cuándo despachan?",
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, entity.MessageSenderCustomer, out.Messages[0].Sender)
	assert.False(t, out.Messages[0].Read)

	out, err = uc.AppendMessage(created.ID, dto.AppendOrderMessageRequest{
		Sender: entity.MessageSenderSupplier,
		Text:   "Mañana por la mañana",
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
}

func TestOrderAppendMessage_Valida(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	created := createTestOrder(t, uc)

	_, err := uc.AppendMessage(created.ID, dto.AppendOrderMessageRequest{Sender: entity.MessageSenderCustomer})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AppendMessage(created.ID, dto.AppendOrderMessageRequest{Sender: "bot", Text: "hola"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AppendMessage("no-existe", dto.AppendOrderMessageRequest{Sender: entity.MessageSenderCustomer, Text: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderListActive_ExcluyeTerminales(t *testing.T) {
	uc := usecase.NewOrderUseCase(newFakeOrderRepo())
	active := createTestOrder(t, uc)
	done := createTestOrder(t, uc)

	_, err := uc.UpdateStatus(done.ID, entity.OrderStatusDelivered, "")
	require.NoError(t, err)

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
}
