// Package metrics contiene las agregaciones de lectura derivadas del catálogo
// y del libro de movimientos: alertas de stock bajo, estadísticas del panel,
// lista de compras sugerida y reporte de consumo. Todas son funciones puras
// sobre una foto de los datos; no tienen estado propio ni efectos.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

// LowStockAlert producto en o bajo su stock mínimo.
type LowStockAlert struct {
	Product      *entity.Product
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
}

// LowStockAlerts filtra los productos con CurrentStock <= MinimumStock
// (frontera inclusive: un producto exactamente en el mínimo alerta).
func LowStockAlerts(products []*entity.Product) []LowStockAlert {
	alerts := make([]LowStockAlert, 0)
	for _, p := range products {
		if p.LowStock() {
			alerts = append(alerts, LowStockAlert{
				Product:      p,
				CurrentStock: p.CurrentStock,
				MinimumStock: p.MinimumStock,
			})
		}
	}
	return alerts
}

// DashboardStats resumen del panel principal.
type DashboardStats struct {
	TotalItems          int
	LowStockCount       int
	TotalInventoryValue decimal.Decimal // Σ CurrentStock * CostPrice
	RecentMovements     []*entity.StockMovement
}

// Dashboard calcula las estadísticas del panel sobre una foto de productos y
// movimientos. movements debe venir ordenado más reciente primero (orden del
// repositorio); se toman los primeros nRecent.
func Dashboard(products []*entity.Product, movements []*entity.StockMovement, nRecent int) DashboardStats {
	stats := DashboardStats{TotalItems: len(products)}
	for _, p := range products {
		if p.LowStock() {
			stats.LowStockCount++
		}
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(p.CurrentStock.Mul(p.CostPrice))
	}
	if nRecent > len(movements) {
		nRecent = len(movements)
	}
	if nRecent < 0 {
		nRecent = 0
	}
	stats.RecentMovements = movements[:nRecent]
	return stats
}

// Niveles de urgencia de la lista de compras.
const (
	UrgencyUrgent = "urgent"
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
)

// ShoppingPolicy parámetros de la política de reposición. Los umbrales son
// política configurable, no ley del dominio.
type ShoppingPolicy struct {
	TargetFactor decimal.Decimal // stock objetivo = mínimo * factor
	GrowthPct    decimal.Decimal // % de aumento de demanda esperado (0 = ninguno)
	UrgentRatio  decimal.Decimal // current/minimum <= ratio -> urgent
	HighRatio    decimal.Decimal // current/minimum <= ratio -> high
}

// DefaultShoppingPolicy política observada en producción: objetivo mínimo x2,
// urgente al 10% del mínimo, alto al 50%.
func DefaultShoppingPolicy() ShoppingPolicy {
	return ShoppingPolicy{
		TargetFactor: decimal.NewFromInt(2),
		GrowthPct:    decimal.Zero,
		UrgentRatio:  decimal.NewFromFloat(0.10),
		HighRatio:    decimal.NewFromFloat(0.50),
	}
}

// ShoppingSuggestion línea sugerida de la lista de compras.
type ShoppingSuggestion struct {
	Product           *entity.Product
	SuggestedQuantity decimal.Decimal
	EstimatedCost     decimal.Decimal
	Urgency           string
}

// ShoppingList genera sugerencias de compra para los productos en stock bajo.
// Cantidad sugerida = mínimo*factor*(1+growth/100) - stock actual (piso en 0).
// Orden: urgencia descendente y, dentro de cada nivel, mayor déficit primero.
func ShoppingList(products []*entity.Product, policy ShoppingPolicy) []ShoppingSuggestion {
	hundred := decimal.NewFromInt(100)
	growth := decimal.NewFromInt(1).Add(policy.GrowthPct.Div(hundred))

	suggestions := make([]ShoppingSuggestion, 0)
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		target := p.MinimumStock.Mul(policy.TargetFactor).Mul(growth)
		qty := target.Sub(p.CurrentStock)
		if qty.LessThanOrEqual(decimal.Zero) {
			continue
		}
		suggestions = append(suggestions, ShoppingSuggestion{
			Product:           p,
			SuggestedQuantity: qty,
			EstimatedCost:     qty.Mul(p.CostPrice),
			Urgency:           urgency(p, policy),
		})
	}

	rank := map[string]int{UrgencyUrgent: 0, UrgencyHigh: 1, UrgencyMedium: 2}
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if rank[a.Urgency] != rank[b.Urgency] {
			return rank[a.Urgency] < rank[b.Urgency]
		}
		defA := a.Product.MinimumStock.Sub(a.Product.CurrentStock)
		defB := b.Product.MinimumStock.Sub(b.Product.CurrentStock)
		return defA.GreaterThan(defB)
	})
	return suggestions
}

// urgency clasifica por la razón current/minimum. Mínimo cero con stock cero
// cuenta como urgente (el producto está agotado).
func urgency(p *entity.Product, policy ShoppingPolicy) string {
	if p.MinimumStock.IsZero() {
		return UrgencyUrgent
	}
	ratio := p.CurrentStock.Div(p.MinimumStock)
	switch {
	case ratio.LessThanOrEqual(policy.UrgentRatio):
		return UrgencyUrgent
	case ratio.LessThanOrEqual(policy.HighRatio):
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// ConsumptionItem consumo agregado de un producto en el período.
type ConsumptionItem struct {
	ProductID  string
	Name       string
	Unit       string
	Quantity   decimal.Decimal
	Cost       decimal.Decimal
	Percentage decimal.Decimal // participación sobre el costo total, 2 decimales
}

// Consumption agrupa salidas y pérdidas por producto en el rango [from, to],
// suma cantidad y costo, y calcula la participación porcentual de cada
// producto sobre el costo total consumido. Orden: mayor costo primero.
// El costo de cada movimiento es su TotalCost si existe; si no, cantidad por
// el costo vigente del producto.
func Consumption(products []*entity.Product, movements []*entity.StockMovement, from, to time.Time) []ConsumptionItem {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	agg := make(map[string]*ConsumptionItem)
	order := make([]string, 0)
	for _, m := range movements {
		if m.Type != entity.MovementTypeExit && m.Type != entity.MovementTypeLoss {
			continue
		}
		if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
			continue
		}
		item, ok := agg[m.ProductID]
		if !ok {
			item = &ConsumptionItem{ProductID: m.ProductID}
			if p, found := byID[m.ProductID]; found {
				item.Name = p.Name
				item.Unit = p.Unit
			}
			agg[m.ProductID] = item
			order = append(order, m.ProductID)
		}
		item.Quantity = item.Quantity.Add(m.Quantity)
		item.Cost = item.Cost.Add(movementCost(m, byID[m.ProductID]))
	}

	var total decimal.Decimal
	for _, id := range order {
		total = total.Add(agg[id].Cost)
	}

	hundred := decimal.NewFromInt(100)
	items := make([]ConsumptionItem, 0, len(order))
	for _, id := range order {
		item := *agg[id]
		if total.GreaterThan(decimal.Zero) {
			item.Percentage = item.Cost.Div(total).Mul(hundred).Round(2)
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Cost.GreaterThan(items[j].Cost)
	})
	return items
}

// MovementSummary totales valorizados del período para el reporte general.
type MovementSummary struct {
	TotalValueIn   decimal.Decimal // entradas
	TotalValueOut  decimal.Decimal // salidas
	TotalValueLost decimal.Decimal // pérdidas
}

// Summarize calcula los totales valorizados de entradas, salidas y pérdidas
// en el rango [from, to].
func Summarize(products []*entity.Product, movements []*entity.StockMovement, from, to time.Time) MovementSummary {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	var s MovementSummary
	for _, m := range movements {
		if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
			continue
		}
		cost := movementCost(m, byID[m.ProductID])
		switch m.Type {
		case entity.MovementTypeEntry:
			s.TotalValueIn = s.TotalValueIn.Add(cost)
		case entity.MovementTypeLoss:
			s.TotalValueLost = s.TotalValueLost.Add(cost)
		default:
			s.TotalValueOut = s.TotalValueOut.Add(cost)
		}
	}
	return s
}

func movementCost(m *entity.StockMovement, p *entity.Product) decimal.Decimal {
	if m.TotalCost != nil {
		return *m.TotalCost
	}
	if p != nil {
		return m.Quantity.Mul(p.CostPrice)
	}
	return decimal.Zero
}
