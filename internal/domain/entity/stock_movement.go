package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry      = "entry"      // entrada (compra, reposición)
	MovementTypeExit       = "exit"       // salida (consumo, producción)
	MovementTypeLoss       = "loss"       // pérdida (vencimiento, daño)
	MovementTypeAdjustment = "adjustment" // ajuste de inventario a la baja
)

// ValidMovementType verifica que el tipo pertenezca al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit, MovementTypeLoss, MovementTypeAdjustment:
		return true
	}
	return false
}

// StockMovement es una fila inmutable del libro de movimientos (append-only).
// Quantity siempre es magnitud positiva; el tipo determina el signo al
// plegarse en la proyección: entry suma, exit/loss/adjustment restan.
type StockMovement struct {
	ID             string
	OrganizationID string
	ProductID      string
	Type           string
	Quantity       decimal.Decimal  // siempre > 0
	UnitCost       *decimal.Decimal // entradas: costo unitario de compra
	TotalCost      *decimal.Decimal // entradas: Quantity * UnitCost
	Reason         string
	RecipeID       string // salidas por receta
	Portions       int    // porciones producidas (salidas por receta)
	Reference      string // clave de idempotencia (webhooks) o nota de origen
	CreatedBy      string // UserID
	CreatedAt      time.Time
}

// SignedQuantity devuelve la cantidad con el signo que aplica a la proyección.
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementTypeEntry {
		return m.Quantity
	}
	return m.Quantity.Neg()
}
