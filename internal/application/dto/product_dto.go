package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. CurrentStock inicia en
// 0; el stock solo cambia vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit" validate:"required"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SupplierID   string          `json:"supplier_id,omitempty"`
}

// UpdateProductRequest entrada para actualizar metadatos (sin CurrentStock).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	Unit         *string          `json:"unit"`
	MinimumStock *decimal.Decimal `json:"minimum_stock"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SupplierID   *string          `json:"supplier_id"`
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Category string `query:"category"`
	Search   string `query:"search"` // subcadena en el nombre, sin distinguir mayúsculas ni tildes
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SupplierID     string          `json:"supplier_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
