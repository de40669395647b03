package dto

import "time"

// CreateSupplierRequest datos para crear un proveedor.
type CreateSupplierRequest struct {
	Name           string   `json:"name"`
	RUT            string   `json:"rut"`
	Email          string   `json:"email"`
	SuppliedItems  string   `json:"insumo"`
	AdditionalInfo string   `json:"additionalInfo"`
	Categories     []string `json:"categories"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name           *string  `json:"name"`
	RUT            *string  `json:"rut"`
	Email          *string  `json:"email"`
	SuppliedItems  *string  `json:"insumo"`
	AdditionalInfo *string  `json:"additionalInfo"`
	Categories     []string `json:"categories"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RUT            string    `json:"rut"`
	Email          string    `json:"email"`
	SuppliedItems  string    `json:"insumo"`
	AdditionalInfo string    `json:"additionalInfo"`
	Categories     []string  `json:"categories"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
