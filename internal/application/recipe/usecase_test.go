package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/recipe"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

const testOrgID = "org-1"

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

type fakeRecipeRepo struct{ recipes map[string]*entity.Recipe }

func (r *fakeRecipeRepo) Create(rec *entity.Recipe) error { r.recipes[rec.ID] = rec; return nil }
func (r *fakeRecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}
func (r *fakeRecipeRepo) Update(rec *entity.Recipe) error { r.recipes[rec.ID] = rec; return nil }
func (r *fakeRecipeRepo) Delete(id string) error          { delete(r.recipes, id); return nil }
func (r *fakeRecipeRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, rec := range r.recipes {
		if rec.OrganizationID == orgID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) Update(p *entity.Product) error                  { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	return nil
}
func (r *fakeProductRepo) ListByOrganization(orgID, category string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

type fixture struct {
	recipes  *fakeRecipeRepo
	products *fakeProductRepo
	uc       *recipe.UseCase
}

func newFixture() *fixture {
	recipes := &fakeRecipeRepo{recipes: make(map[string]*entity.Recipe)}
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}
	return &fixture{
		recipes:  recipes,
		products: products,
		uc:       recipe.NewUseCase(recipes, products),
	}
}

func (f *fixture) addProduct(id, name, unit, costPrice string) {
	f.products.products[id] = &entity.Product{
		ID:             id,
		OrganizationID: testOrgID,
		Name:           name,
		Unit:           unit,
		CostPrice:      d(costPrice),
	}
}

// Crear una receta fotografía el costo vigente de cada producto:
// 2 kg de harina a 3.00 + 1 l de leche a 1.50, 2 porciones → 7.50 / 3.75.
func TestCreate_FotografiaElCosto(t *testing.T) {
	f := newFixture()
	f.addProduct("p-harina", "Harina", entity.UnitKg, "3.00")
	f.addProduct("p-leche", "Leche", entity.UnitL, "1.50")

	out, err := f.uc.Create(testOrgID, dto.CreateRecipeRequest{
		Name:     "Pan casero",
		Servings: 2,
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-harina", Quantity: d("2")},
			{ProductID: "p-leche", Quantity: d("1")},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.TotalCost.Equal(d("7.50")), "total fue %s", out.TotalCost)
	assert.True(t, out.CostPerServing.Equal(d("3.75")), "por porción fue %s", out.CostPerServing)
	require.Len(t, out.Ingredients, 2)
	assert.Equal(t, "Harina", out.Ingredients[0].ProductName)
	assert.True(t, out.Ingredients[0].Cost.Equal(d("6.00")))
}

// La foto no es referencia viva: subir el costo del producto después no
// reescribe la receta guardada.
func TestCosto_NoSigueAlProducto(t *testing.T) {
	f := newFixture()
	f.addProduct("p-harina", "Harina", entity.UnitKg, "3.00")

	out, err := f.uc.Create(testOrgID, dto.CreateRecipeRequest{
		Name:     "Masa",
		Servings: 1,
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-harina", Quantity: d("1")},
		},
	})
	require.NoError(t, err)

	f.products.products["p-harina"].CostPrice = d("9.99")

	got, err := f.uc.GetByID(testOrgID, out.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalCost.Equal(d("3.00")), "la foto de costo debe conservarse")
}

// Reemplazar ingredientes toma una foto nueva con los costos vigentes.
func TestUpdate_IngredientesRecalculanCosto(t *testing.T) {
	f := newFixture()
	f.addProduct("p-harina", "Harina", entity.UnitKg, "3.00")

	out, err := f.uc.Create(testOrgID, dto.CreateRecipeRequest{
		Name:     "Masa",
		Servings: 1,
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-harina", Quantity: d("1")},
		},
	})
	require.NoError(t, err)

	f.products.products["p-harina"].CostPrice = d("4.00")

	updated, err := f.uc.Update(testOrgID, out.ID, dto.UpdateRecipeRequest{
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-harina", Quantity: d("2")},
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalCost.Equal(d("8.00")), "total fue %s", updated.TotalCost)
}

// Cambiar solo las porciones recalcula el costo por porción sobre la foto.
func TestUpdate_ServingsRecalculaPorPorcion(t *testing.T) {
	f := newFixture()
	f.addProduct("p-harina", "Harina", entity.UnitKg, "3.00")

	out, err := f.uc.Create(testOrgID, dto.CreateRecipeRequest{
		Name:     "Masa",
		Servings: 1,
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-harina", Quantity: d("2")},
		},
	})
	require.NoError(t, err)
	require.True(t, out.CostPerServing.Equal(d("6.00")))

	servings := 4
	updated, err := f.uc.Update(testOrgID, out.ID, dto.UpdateRecipeRequest{Servings: &servings})
	require.NoError(t, err)
	assert.True(t, updated.TotalCost.Equal(d("6.00")))
	assert.True(t, updated.CostPerServing.Equal(d("1.50")))
}

func TestCreate_ProductoDeOtraOrganizacion(t *testing.T) {
	f := newFixture()
	f.addProduct("p-ajeno", "Ajeno", entity.UnitKg, "1.00")
	f.products.products["p-ajeno"].OrganizationID = "org-otra"

	_, err := f.uc.Create(testOrgID, dto.CreateRecipeRequest{
		Name:     "X",
		Servings: 1,
		Ingredients: []dto.RecipeIngredientRequest{
			{ProductID: "p-ajeno", Quantity: d("1")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	f := newFixture()
	f.addProduct("p1", "Harina", entity.UnitKg, "1.00")

	cases := []struct {
		name string
		in   dto.CreateRecipeRequest
	}{
		{"sin nombre", dto.CreateRecipeRequest{Servings: 1, Ingredients: []dto.RecipeIngredientRequest{{ProductID: "p1", Quantity: d("1")}}}},
		{"sin porciones", dto.CreateRecipeRequest{Name: "X", Ingredients: []dto.RecipeIngredientRequest{{ProductID: "p1", Quantity: d("1")}}}},
		{"sin ingredientes", dto.CreateRecipeRequest{Name: "X", Servings: 1}},
		{"cantidad cero", dto.CreateRecipeRequest{Name: "X", Servings: 1, Ingredients: []dto.RecipeIngredientRequest{{ProductID: "p1", Quantity: d("0")}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(testOrgID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDelete_SoloDeLaMismaOrganizacion(t *testing.T) {
	f := newFixture()
	f.recipes.recipes["r1"] = &entity.Recipe{ID: "r1", OrganizationID: "org-otra", Name: "Ajena"}

	err := f.uc.Delete(testOrgID, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, f.recipes.recipes, "r1")
}
