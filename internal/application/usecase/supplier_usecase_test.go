package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// fakeSupplierRepo implementación en memoria de repository.SupplierRepository.
type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.suppliers, id)
	return nil
}

func TestSupplierCreate_YLectura(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())

	created, err := uc.Create(dto.CreateSupplierRequest{
		Name:          "Distribuidora Central",
		RUT:           "76.543.210-K",
		Email:         "ventas@central.cl",
		SuppliedItems: "Abarrotes en general",
		Categories:    []string{"Abarrotes", "Lácteos"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "76.543.210-K", got.RUT)
	assert.Equal(t, []string{"Abarrotes", "Lácteos"}, got.Categories)
}

func TestSupplierCreate_NombreObligatorio(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	_, err := uc.Create(dto.CreateSupplierRequest{RUT: "1-9"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierCreate_CategoriasNuncaNil(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Sin categorías"})
	require.NoError(t, err)
	// El JSON debe serializar [] y no null.
	assert.NotNil(t, created.Categories)
	assert.Empty(t, created.Categories)
}

func TestSupplierUpdate_MergeParcial(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	created, err := uc.Create(dto.CreateSupplierRequest{
		Name:  "Pesquera Sur",
		Email: "contacto@pesquerasur.cl",
	})
	require.NoError(t, err)

	email := "pedidos@pesquerasur.cl"
	updated, err := uc.Update(created.ID, dto.UpdateSupplierRequest{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "Pesquera Sur", updated.Name)
}

func TestSupplierDelete(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newFakeSupplierRepo())
	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
