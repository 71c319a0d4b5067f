// Package recipe contiene los servicios de dominio de fichas técnicas:
// costeo y resolución de ingredientes a cantidades concretas.
package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

// ComputeCost calcula el costo total y por porción de una lista de ingredientes
// ya costeados. Servings <= 0 es entrada inválida (nunca divide por cero).
// TotalCost = Σ ingredient.Cost; CostPerServing = TotalCost / servings.
func ComputeCost(ingredients []entity.RecipeIngredient, servings int) (total, perServing decimal.Decimal, err error) {
	if servings <= 0 {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	for _, ing := range ingredients {
		total = total.Add(ing.Cost)
	}
	perServing = total.Div(decimal.NewFromInt(int64(servings)))
	return total, perServing, nil
}

// ResolvedIngredient es un par (producto, cantidad) listo para descontar.
type ResolvedIngredient struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
}

// Resolve expande la receta a cantidades concretas para portions porciones.
// La cantidad de cada ingrediente está expresada para la receta completa
// (Servings porciones), así que se escala por portions/Servings.
func Resolve(r *entity.Recipe, portions int) ([]ResolvedIngredient, error) {
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if portions <= 0 || r.Servings <= 0 {
		return nil, domain.ErrInvalidInput
	}
	factor := decimal.NewFromInt(int64(portions)).Div(decimal.NewFromInt(int64(r.Servings)))
	out := make([]ResolvedIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		out = append(out, ResolvedIngredient{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity.Mul(factor),
		})
	}
	return out, nil
}
