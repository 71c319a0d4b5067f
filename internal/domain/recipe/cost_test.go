package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/recipe"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// Receta de ejemplo: 2 kg de harina a $3.00/kg + 1 l de leche a $1.50/l,
// para 2 porciones. Costo total 7.50, por porción 3.75.
func TestComputeCost_RecetaDeDosIngredientes(t *testing.T) {
	ingredients := []entity.RecipeIngredient{
		{ProductID: "p-harina", ProductName: "Harina", Quantity: d("2"), Unit: "kg", Cost: d("6.00")},
		{ProductID: "p-leche", ProductName: "Leche", Quantity: d("1"), Unit: "l", Cost: d("1.50")},
	}

	total, perServing, err := recipe.ComputeCost(ingredients, 2)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("7.50")), "total esperado 7.50, fue %s", total)
	assert.True(t, perServing.Equal(d("3.75")), "por porción esperado 3.75, fue %s", perServing)
}

func TestComputeCost_SinIngredientes(t *testing.T) {
	total, perServing, err := recipe.ComputeCost(nil, 4)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.True(t, perServing.IsZero())
}

func TestComputeCost_ServingsInvalido(t *testing.T) {
	ingredients := []entity.RecipeIngredient{
		{ProductID: "p1", Quantity: d("1"), Cost: d("5")},
	}
	for _, servings := range []int{0, -1} {
		_, _, err := recipe.ComputeCost(ingredients, servings)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "servings=%d", servings)
	}
}

func TestResolve_EscalaPorPorciones(t *testing.T) {
	rec := &entity.Recipe{
		ID:       "r1",
		Name:     "Pan",
		Servings: 2,
		Ingredients: []entity.RecipeIngredient{
			{ProductID: "p-harina", ProductName: "Harina", Quantity: d("2"), Unit: "kg"},
			{ProductID: "p-leche", ProductName: "Leche", Quantity: d("1"), Unit: "l"},
		},
	}

	// 6 porciones = 3x la receta: 6 kg de harina, 3 l de leche.
	resolved, err := recipe.Resolve(rec, 6)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "p-harina", resolved[0].ProductID)
	assert.True(t, resolved[0].Quantity.Equal(d("6")), "harina esperada 6, fue %s", resolved[0].Quantity)
	assert.True(t, resolved[1].Quantity.Equal(d("3")), "leche esperada 3, fue %s", resolved[1].Quantity)
}

func TestResolve_PorcionesFraccionarias(t *testing.T) {
	rec := &entity.Recipe{
		ID:       "r1",
		Servings: 4,
		Ingredients: []entity.RecipeIngredient{
			{ProductID: "p1", Quantity: d("1"), Unit: "kg"},
		},
	}

	// 1 porción de una receta de 4: 0.25 kg.
	resolved, err := recipe.Resolve(rec, 1)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Quantity.Equal(d("0.25")))
}

func TestResolve_EntradasInvalidas(t *testing.T) {
	rec := &entity.Recipe{ID: "r1", Servings: 2}

	_, err := recipe.Resolve(nil, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = recipe.Resolve(rec, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rec.Servings = 0
	_, err = recipe.Resolve(rec, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
