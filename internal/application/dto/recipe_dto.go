package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientRequest línea de ingrediente al crear/editar una receta.
// Quantity es para la receta completa (Servings porciones).
type RecipeIngredientRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateRecipeRequest entrada para crear una receta. El costo se calcula al
// guardar, con el costo vigente de cada producto (foto, no referencia viva).
type CreateRecipeRequest struct {
	Name        string                    `json:"name" validate:"required,min=1,max=200"`
	Description string                    `json:"description"`
	Category    string                    `json:"category"`
	Servings    int                       `json:"servings"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
}

// UpdateRecipeRequest entrada para editar una receta. Ingredients nil deja la
// lista (y su costo foto) como está; no nil la reemplaza y recalcula costos.
type UpdateRecipeRequest struct {
	Name        *string                   `json:"name"`
	Description *string                   `json:"description"`
	Category    *string                   `json:"category"`
	Servings    *int                      `json:"servings"`
	Ingredients []RecipeIngredientRequest `json:"ingredients"`
}

// RecipeIngredientResponse línea de ingrediente con su costo foto.
type RecipeIngredientResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Cost        decimal.Decimal `json:"cost"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID             string                     `json:"id"`
	OrganizationID string                     `json:"organization_id"`
	Name           string                     `json:"name"`
	Description    string                     `json:"description"`
	Category       string                     `json:"category"`
	Ingredients    []RecipeIngredientResponse `json:"ingredients"`
	Servings       int                        `json:"servings"`
	TotalCost      decimal.Decimal            `json:"total_cost"`
	CostPerServing decimal.Decimal            `json:"cost_per_serving"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// RecipeListResponse lista paginada de recetas.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
