package usecase_test

import (
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

// fakeItemRepo implementación en memoria de repository.ItemRepository.
type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) AdjustQuantity(id string, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	next := item.Quantity.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, domain.ErrInsufficientStock
	}
	item.Quantity = next
	return next, nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListLowStock() ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Item
	for _, item := range r.items {
		if item.IsLowStock() {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) DistinctCategories() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, item := range r.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func TestItemCreate_YLectura(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{
		Name:     "Harina",
		SKU:      "HAR-001",
		Category: "Abarrotes",
		Supplier: "Molinos del Sur",
		Quantity: decimal.NewFromInt(20),
		Unit:     "kg",
		Price:    decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Harina", created.Name)
	assert.False(t, created.LowStock)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(20)))
}

func TestItemCreate_ValidaEntrada(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateItemRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateItemRequest{
		Name:     "X",
		SKU:      "X-1",
		Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_MergeParcial(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{
		Name:     "Aceite",
		SKU:      "ACE-001",
		Category: "Abarrotes",
		Quantity: decimal.NewFromInt(10),
		Price:    decimal.NewFromInt(3500),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(3900)
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Solo el precio cambia; el resto se conserva.
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Aceite", updated.Name)
	assert.Equal(t, "Abarrotes", updated.Category)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestItemUpdate_RechazaCantidadNegativa(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	created, err := uc.Create(dto.CreateItemRequest{
		Name: "Sal", SKU: "SAL-001", Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	neg := decimal.NewFromInt(-3)
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_NoEncontrado(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	out, err := uc.Update("no-existe", dto.UpdateItemRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestItemCategories_DistintasOrdenadas(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	for _, in := range []dto.CreateItemRequest{
		{Name: "Harina", SKU: "1", Category: "Abarrotes"},
		{Name: "Aceite", SKU: "2", Category: "Abarrotes"},
		{Name: "Lomo", SKU: "3", Category: "Carnes"},
		{Name: "Sin categoría", SKU: "4"},
	} {
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	cats, err := uc.Categories()
	require.NoError(t, err)
	// Sin duplicados, sin vacíos, orden alfabético.
	assert.Equal(t, []string{"Abarrotes", "Carnes"}, cats)
}

func TestItemDelete(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	created, err := uc.Create(dto.CreateItemRequest{Name: "Azúcar", SKU: "AZU-001"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestItemResponse_MarcaBajoStock(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())
	reorder := decimal.NewFromInt(10)
	created, err := uc.Create(dto.CreateItemRequest{
		Name:         "Mantequilla",
		SKU:          "MAN-001",
		Quantity:     decimal.NewFromInt(8),
		ReorderPoint: &reorder,
	})
	require.NoError(t, err)
	assert.True(t, created.LowStock)
}
