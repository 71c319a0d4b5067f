package entity

import "time"

// Supplier es una entrada del directorio de proveedores. No participa de la
// consistencia del libro de movimientos; solo es metadato de productos y de
// la lista de compras.
type Supplier struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
	Phone          string
	Address        string
	Products       string // descripción libre de lo que provee
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
