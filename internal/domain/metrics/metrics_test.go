package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/metrics"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func producto(id, name string, current, minimum, cost string) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         name,
		Unit:         entity.UnitKg,
		CurrentStock: d(current),
		MinimumStock: d(minimum),
		CostPrice:    d(cost),
	}
}

// La frontera de stock bajo es inclusive: 5/10 y 10/10 alertan, 11/10 no.
func TestLowStockAlerts_FronteraInclusive(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "Bajo", "5", "10", "1"),
		producto("p2", "Justo", "10", "10", "1"),
		producto("p3", "Sobre", "11", "10", "1"),
	}

	alerts := metrics.LowStockAlerts(products)
	require.Len(t, alerts, 2)
	assert.Equal(t, "p1", alerts[0].Product.ID)
	assert.Equal(t, "p2", alerts[1].Product.ID)
}

func TestDashboard_ValorDelInventario(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "Harina", "10", "5", "3.00"),  // 30.00
		producto("p2", "Leche", "4", "6", "1.50"),    // 6.00, stock bajo
		producto("p3", "Azúcar", "0", "2", "2.25"),   // 0, stock bajo
	}
	movements := []*entity.StockMovement{
		{ID: "m1", Type: entity.MovementTypeEntry, Quantity: d("10")},
		{ID: "m2", Type: entity.MovementTypeExit, Quantity: d("2")},
	}

	stats := metrics.Dashboard(products, movements, 10)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.True(t, stats.TotalInventoryValue.Equal(d("36.00")),
		"valor esperado 36.00, fue %s", stats.TotalInventoryValue)
	assert.Len(t, stats.RecentMovements, 2)
}

func TestDashboard_RecorteDeRecientes(t *testing.T) {
	movements := []*entity.StockMovement{
		{ID: "m1"}, {ID: "m2"}, {ID: "m3"},
	}
	stats := metrics.Dashboard(nil, movements, 2)
	require.Len(t, stats.RecentMovements, 2)
	assert.Equal(t, "m1", stats.RecentMovements[0].ID)
}

func TestShoppingList_CantidadYUrgencia(t *testing.T) {
	products := []*entity.Product{
		// ratio 0.05 -> urgent; sugerido = 10*2 - 0.5 = 19.5
		producto("p-urgente", "Aceite", "0.5", "10", "4.00"),
		// ratio 0.40 -> high; sugerido = 5*2 - 2 = 8
		producto("p-alto", "Sal", "2", "5", "0.50"),
		// ratio 0.80 -> medium; sugerido = 10*2 - 8 = 12
		producto("p-medio", "Arroz", "8", "10", "1.00"),
		// sin stock bajo: no aparece
		producto("p-ok", "Harina", "50", "10", "3.00"),
	}

	list := metrics.ShoppingList(products, metrics.DefaultShoppingPolicy())
	require.Len(t, list, 3)

	assert.Equal(t, "p-urgente", list[0].Product.ID)
	assert.Equal(t, metrics.UrgencyUrgent, list[0].Urgency)
	assert.True(t, list[0].SuggestedQuantity.Equal(d("19.5")))
	assert.True(t, list[0].EstimatedCost.Equal(d("78")))

	assert.Equal(t, "p-alto", list[1].Product.ID)
	assert.Equal(t, metrics.UrgencyHigh, list[1].Urgency)

	assert.Equal(t, "p-medio", list[2].Product.ID)
	assert.Equal(t, metrics.UrgencyMedium, list[2].Urgency)
}

func TestShoppingList_FactorDeCrecimiento(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "Café", "0", "10", "5.00"),
	}
	policy := metrics.DefaultShoppingPolicy()
	policy.GrowthPct = d("50")

	list := metrics.ShoppingList(products, policy)
	require.Len(t, list, 1)
	// 10 * 2 * 1.5 - 0 = 30
	assert.True(t, list[0].SuggestedQuantity.Equal(d("30")),
		"sugerido esperado 30, fue %s", list[0].SuggestedQuantity)
}

func TestShoppingList_MinimoCeroAgotadoEsUrgente(t *testing.T) {
	// Mínimo 0 y stock 0: LowStock() es true y el ratio no se puede calcular.
	p := producto("p1", "Especias", "0", "0", "1.00")
	list := metrics.ShoppingList([]*entity.Product{p}, metrics.DefaultShoppingPolicy())
	// Sugerido = 0*2 - 0 = 0: no hay nada que comprar, no aparece.
	assert.Empty(t, list)
}

func TestConsumption_AgrupaYPorcentajes(t *testing.T) {
	now := time.Now()
	from := now.Add(-24 * time.Hour)
	to := now.Add(time.Hour)
	costoSalida := d("6.00")

	products := []*entity.Product{
		producto("p1", "Harina", "10", "5", "3.00"),
		producto("p2", "Leche", "10", "5", "1.50"),
	}
	movements := []*entity.StockMovement{
		// p1: TotalCost explícito 6.00
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeExit, Quantity: d("2"), TotalCost: &costoSalida, CreatedAt: now},
		// p2: sin TotalCost, usa 1 * 1.50
		{ID: "m2", ProductID: "p2", Type: entity.MovementTypeLoss, Quantity: d("1"), CreatedAt: now},
		// entrada: no cuenta como consumo
		{ID: "m3", ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: d("5"), CreatedAt: now},
		// fuera de rango: no cuenta
		{ID: "m4", ProductID: "p1", Type: entity.MovementTypeExit, Quantity: d("9"), CreatedAt: now.Add(-48 * time.Hour)},
	}

	items := metrics.Consumption(products, movements, from, to)
	require.Len(t, items, 2)

	// Mayor costo primero: p1 con 6.00 (80%), p2 con 1.50 (20%).
	assert.Equal(t, "p1", items[0].ProductID)
	assert.True(t, items[0].Cost.Equal(d("6.00")))
	assert.True(t, items[0].Percentage.Equal(d("80")), "porcentaje fue %s", items[0].Percentage)

	assert.Equal(t, "p2", items[1].ProductID)
	assert.True(t, items[1].Cost.Equal(d("1.50")))
	assert.True(t, items[1].Percentage.Equal(d("20")), "porcentaje fue %s", items[1].Percentage)
}

func TestSummarize_TotalesValorizados(t *testing.T) {
	now := time.Now()
	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)
	totalEntrada := d("10.00")

	products := []*entity.Product{
		producto("p1", "Harina", "10", "5", "3.00"),
	}
	movements := []*entity.StockMovement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: d("5"), TotalCost: &totalEntrada, CreatedAt: now},
		{ID: "m2", ProductID: "p1", Type: entity.MovementTypeExit, Quantity: d("2"), CreatedAt: now},  // 2*3.00
		{ID: "m3", ProductID: "p1", Type: entity.MovementTypeLoss, Quantity: d("1"), CreatedAt: now},  // 1*3.00
	}

	summary := metrics.Summarize(products, movements, from, to)
	assert.True(t, summary.TotalValueIn.Equal(d("10.00")))
	assert.True(t, summary.TotalValueOut.Equal(d("6.00")))
	assert.True(t, summary.TotalValueLost.Equal(d("3.00")))
}
