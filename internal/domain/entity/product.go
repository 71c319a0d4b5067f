package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida permitidas para un producto.
const (
	UnitUnit    = "unit"
	UnitKg      = "kg"
	UnitG       = "g"
	UnitL       = "l"
	UnitMl      = "ml"
	UnitPackage = "package"
	UnitBox     = "box"
	UnitDozen   = "dozen"
)

// ValidUnit verifica que la unidad pertenezca al conjunto permitido.
func ValidUnit(u string) bool {
	switch u {
	case UnitUnit, UnitKg, UnitG, UnitL, UnitMl, UnitPackage, UnitBox, UnitDozen:
		return true
	}
	return false
}

// Product representa un insumo del inventario del restaurante.
// CurrentStock es la proyección del libro de movimientos: solo el orquestador
// de movimientos la escribe; metadatos (nombre, categoría, mínimo, costo) se
// editan por separado y nunca tocan el stock.
type Product struct {
	ID           string
	OrganizationID string
	Name         string
	Category     string          // etiqueta libre: carnes, lácteos, bebidas...
	Unit         string          // unit, kg, g, l, ml, package, box, dozen
	CurrentStock decimal.Decimal // proyección, nunca negativa
	MinimumStock decimal.Decimal
	CostPrice    decimal.Decimal // costo unitario, sin moneda
	SupplierID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si el producto está en o bajo su stock mínimo (inclusive).
func (p *Product) LowStock() bool {
	return p.CurrentStock.LessThanOrEqual(p.MinimumStock)
}
