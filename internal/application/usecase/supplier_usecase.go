package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores. No hay chequeo de
// unicidad de nombre ni de RUT.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. name es obligatorio.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           in.Name,
		RUT:            in.RUT,
		Email:          in.Email,
		SuppliedItems:  in.SuppliedItems,
		AdditionalInfo: in.AdditionalInfo,
		Categories:     in.Categories,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update aplica una actualización parcial y devuelve el proveedor resultante.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.RUT != nil {
		supplier.RUT = *in.RUT
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.SuppliedItems != nil {
		supplier.SuppliedItems = *in.SuppliedItems
	}
	if in.AdditionalInfo != nil {
		supplier.AdditionalInfo = *in.AdditionalInfo
	}
	if in.Categories != nil {
		supplier.Categories = in.Categories
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	suppliers := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		suppliers = append(suppliers, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Suppliers: suppliers, Limit: limit, Offset: offset}, nil
}

// Delete elimina un proveedor. Los ítems y órdenes que lo nombran conservan el
// nombre como texto.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return &dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		RUT:            s.RUT,
		Email:          s.Email,
		SuppliedItems:  s.SuppliedItems,
		AdditionalInfo: s.AdditionalInfo,
		Categories:     categories,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
