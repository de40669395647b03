package entity

import "time"

// Supplier representa un proveedor. Entidad independiente: Item y Order lo
// referencian solo por nombre.
type Supplier struct {
	ID             string
	Name           string
	RUT            string // identificador tributario
	Email          string
	SuppliedItems  string // descripción en texto libre de los insumos que provee
	AdditionalInfo string // notas de horarios de entrega, etc.
	Categories     []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
