package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock/movements.
type RegisterMovementRequest struct {
	ProductID string           `json:"product_id"`
	Type      string           `json:"type"` // entry | exit | loss | adjustment
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"` // entradas
	Reason    string           `json:"reason,omitempty"`
	Reference string           `json:"reference,omitempty"`
}

// RecipeExitRequest body para POST /api/stock/recipe-exit: descuenta todos los
// ingredientes de la receta para las porciones pedidas, en un solo lote atómico.
type RecipeExitRequest struct {
	RecipeID  string `json:"recipe_id"`
	Portions  int    `json:"portions"`
	Reason    string `json:"reason,omitempty"`
	Reference string `json:"reference,omitempty"` // clave de idempotencia
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	ProductID      string           `json:"product_id"`
	Type           string           `json:"type"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalCost      *decimal.Decimal `json:"total_cost,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	RecipeID       string           `json:"recipe_id,omitempty"`
	Portions       int              `json:"portions,omitempty"`
	Reference      string           `json:"reference,omitempty"`
	CreatedBy      string           `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RecipeExitResponse resultado de una salida por receta.
type RecipeExitResponse struct {
	RecipeID  string             `json:"recipe_id"`
	Portions  int                `json:"portions"`
	Applied   bool               `json:"applied"` // false = referencia ya procesada (idempotencia)
	Movements []MovementResponse `json:"movements"`
}
