package product_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/product"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

const testOrgID = "org-1"

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// fakeRepo implementación en memoria, ordenada por nombre como el repositorio
// real.
type fakeRepo struct {
	products map[string]*entity.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	return nil
}

func (r *fakeRepo) ListByOrganization(orgID, category string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.OrganizationID != orgID {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func seed(r *fakeRepo, id, name, category string) {
	r.products[id] = &entity.Product{
		ID:             id,
		OrganizationID: testOrgID,
		Name:           name,
		Category:       category,
		Unit:           entity.UnitKg,
	}
}

func TestCreate_StockInicialCero(t *testing.T) {
	repo := newFakeRepo()
	uc := product.NewUseCase(repo)

	out, err := uc.Create(testOrgID, dto.CreateProductRequest{
		Name:         "Harina de trigo",
		Category:     "secos",
		Unit:         entity.UnitKg,
		MinimumStock: d("5"),
		CostPrice:    d("3.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.CurrentStock.IsZero(), "el stock inicial siempre es 0")
	assert.Equal(t, testOrgID, out.OrganizationID)
	require.Len(t, repo.products, 1)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	uc := product.NewUseCase(newFakeRepo())

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Unit: entity.UnitKg}},
		{"unidad desconocida", dto.CreateProductRequest{Name: "Sal", Unit: "galón"}},
		{"mínimo negativo", dto.CreateProductRequest{Name: "Sal", Unit: entity.UnitKg, MinimumStock: d("-1")}},
		{"costo negativo", dto.CreateProductRequest{Name: "Sal", Unit: entity.UnitKg, CostPrice: d("-2")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(testOrgID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdate_NoTocaElStock(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, "p1", "Harina", "secos")
	repo.products["p1"].CurrentStock = d("12")
	uc := product.NewUseCase(repo)

	nombre := "Harina 000"
	costo := d("3.50")
	out, err := uc.Update(testOrgID, "p1", dto.UpdateProductRequest{
		Name:      &nombre,
		CostPrice: &costo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Harina 000", out.Name)
	assert.True(t, out.CostPrice.Equal(d("3.50")))
	assert.True(t, out.CurrentStock.Equal(d("12")), "Update no debe cambiar CurrentStock")
}

func TestUpdate_OtraOrganizacionEsNotFound(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, "p1", "Harina", "secos")
	repo.products["p1"].OrganizationID = "org-otra"
	uc := product.NewUseCase(repo)

	nombre := "X"
	_, err := uc.Update(testOrgID, "p1", dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_BusquedaSinTildesNiMayusculas(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, "p1", "Azúcar refinada", "secos")
	seed(repo, "p2", "Harina", "secos")
	seed(repo, "p3", "Café molido", "bebidas")
	uc := product.NewUseCase(repo)

	out, err := uc.List(testOrgID, dto.ProductFilter{Search: "AZUCAR"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ID)

	out, err = uc.List(testOrgID, dto.ProductFilter{Search: "cafe"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p3", out.Items[0].ID)
}

func TestList_FiltroPorCategoria(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, "p1", "Azúcar", "secos")
	seed(repo, "p2", "Leche", "lácteos")
	uc := product.NewUseCase(repo)

	out, err := uc.List(testOrgID, dto.ProductFilter{Category: "lácteos"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Leche", out.Items[0].Name)
}
