package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredient es una línea de la ficha técnica. Quantity es la cantidad
// para la receta completa (que rinde Servings porciones). Cost es la foto del
// costo al momento de guardar la receta: Quantity * Product.CostPrice. No se
// recalcula cuando el costo del producto cambia después.
type RecipeIngredient struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Cost        decimal.Decimal `json:"cost"`
}

// Recipe representa una ficha técnica: plato con su lista ordenada de
// ingredientes, rendimiento en porciones y costos derivados.
// Invariantes: TotalCost == Σ ingredient.Cost; CostPerServing == TotalCost/Servings.
type Recipe struct {
	ID             string
	OrganizationID string
	Name           string
	Description    string
	Category       string
	Ingredients    []RecipeIngredient
	Servings       int // rendimiento, >= 1
	TotalCost      decimal.Decimal
	CostPerServing decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
