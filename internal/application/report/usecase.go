// Package report casos de uso de lectura: panel, alertas, lista de compras y
// reporte de consumo. Carga una foto de productos y movimientos y delega la
// aritmética en el paquete de métricas (funciones puras).
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/application/stock"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/metrics"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

const dashboardRecentMovements = 10 // movimientos en el widget del panel

// UseCase agregaciones de lectura sobre catálogo + libro.
type UseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{productRepo: productRepo, movRepo: movRepo}
}

// Dashboard estadísticas del panel: totales, stock bajo, valor del inventario
// y últimos movimientos.
func (uc *UseCase) Dashboard(orgID string) (*dto.DashboardStatsDTO, error) {
	products, err := uc.productRepo.ListByOrganization(orgID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListByOrganization(orgID, repository.MovementFilter{}, dashboardRecentMovements, 0)
	if err != nil {
		return nil, err
	}
	stats := metrics.Dashboard(products, movements, dashboardRecentMovements)
	recent := make([]dto.MovementResponse, 0, len(stats.RecentMovements))
	for _, m := range stats.RecentMovements {
		recent = append(recent, *stock.ToMovementResponse(m))
	}
	return &dto.DashboardStatsDTO{
		TotalItems:          stats.TotalItems,
		LowStockCount:       stats.LowStockCount,
		TotalInventoryValue: stats.TotalInventoryValue,
		RecentMovements:     recent,
	}, nil
}

// LowStock productos en o bajo su stock mínimo.
func (uc *UseCase) LowStock(orgID string) ([]dto.LowStockAlertDTO, error) {
	products, err := uc.productRepo.ListByOrganization(orgID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	alerts := metrics.LowStockAlerts(products)
	out := make([]dto.LowStockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.LowStockAlertDTO{
			ProductID:    a.Product.ID,
			Name:         a.Product.Name,
			Unit:         a.Product.Unit,
			CurrentStock: a.CurrentStock,
			MinimumStock: a.MinimumStock,
		})
	}
	return out, nil
}

// ShoppingList lista de compras sugerida. growthPct ajusta el objetivo de
// reposición por demanda esperada (0 = política por defecto).
func (uc *UseCase) ShoppingList(orgID string, growthPct decimal.Decimal) (*dto.ShoppingListResponse, error) {
	if growthPct.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.ListByOrganization(orgID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	policy := metrics.DefaultShoppingPolicy()
	policy.GrowthPct = growthPct
	suggestions := metrics.ShoppingList(products, policy)

	resp := &dto.ShoppingListResponse{Items: make([]dto.ShoppingListItemDTO, 0, len(suggestions))}
	for _, s := range suggestions {
		resp.Items = append(resp.Items, dto.ShoppingListItemDTO{
			ProductID:         s.Product.ID,
			Name:              s.Product.Name,
			Unit:              s.Product.Unit,
			CurrentStock:      s.Product.CurrentStock,
			MinimumStock:      s.Product.MinimumStock,
			SuggestedQuantity: s.SuggestedQuantity,
			EstimatedCost:     s.EstimatedCost,
			Urgency:           s.Urgency,
			SupplierID:        s.Product.SupplierID,
		})
		resp.TotalEstimatedCost = resp.TotalEstimatedCost.Add(s.EstimatedCost)
	}
	return resp, nil
}

// Consumption reporte de consumo (salidas + pérdidas) del rango, con
// participación porcentual por producto y totales valorizados del período.
func (uc *UseCase) Consumption(orgID string, from, to time.Time) (*dto.ConsumptionReportResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.ListByOrganization(orgID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListByOrganization(orgID, repository.MovementFilter{From: &from, To: &to}, 0, 0)
	if err != nil {
		return nil, err
	}
	items := metrics.Consumption(products, movements, from, to)
	summary := metrics.Summarize(products, movements, from, to)

	resp := &dto.ConsumptionReportResponse{
		Items:          make([]dto.ConsumptionItemDTO, 0, len(items)),
		TotalValueIn:   summary.TotalValueIn,
		TotalValueOut:  summary.TotalValueOut,
		TotalValueLost: summary.TotalValueLost,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ConsumptionItemDTO{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Unit:       item.Unit,
			Quantity:   item.Quantity,
			Cost:       item.Cost,
			Percentage: item.Percentage,
		})
		resp.TotalCost = resp.TotalCost.Add(item.Cost)
	}
	return resp, nil
}
