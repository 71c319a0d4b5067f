package dto

import "github.com/shopspring/decimal"

// LowStockAlertDTO producto en o bajo su stock mínimo.
type LowStockAlertDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
}

// DashboardStatsDTO resumen del panel principal.
type DashboardStatsDTO struct {
	TotalItems          int                `json:"total_items"`
	LowStockCount       int                `json:"low_stock_count"`
	TotalInventoryValue decimal.Decimal    `json:"total_inventory_value"`
	RecentMovements     []MovementResponse `json:"recent_movements"`
}

// ShoppingListItemDTO línea sugerida de la lista de compras.
type ShoppingListItemDTO struct {
	ProductID         string          `json:"product_id"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinimumStock      decimal.Decimal `json:"minimum_stock"`
	SuggestedQuantity decimal.Decimal `json:"suggested_quantity"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Urgency           string          `json:"urgency"` // urgent | high | medium
	SupplierID        string          `json:"supplier_id,omitempty"`
}

// ShoppingListResponse lista de compras con su costo total estimado.
type ShoppingListResponse struct {
	Items              []ShoppingListItemDTO `json:"items"`
	TotalEstimatedCost decimal.Decimal       `json:"total_estimated_cost"`
}

// ConsumptionItemDTO consumo agregado de un producto en el período.
type ConsumptionItemDTO struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	Cost       decimal.Decimal `json:"cost"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ConsumptionReportResponse reporte de consumo del período.
type ConsumptionReportResponse struct {
	Items          []ConsumptionItemDTO `json:"items"`
	TotalCost      decimal.Decimal      `json:"total_cost"`
	TotalValueIn   decimal.Decimal      `json:"total_value_in"`
	TotalValueOut  decimal.Decimal      `json:"total_value_out"`
	TotalValueLost decimal.Decimal      `json:"total_value_lost"`
}
