package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock es exclusivo del orquestador de movimientos y solo tiene
// sentido dentro de una transacción junto con GetForUpdate.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// Update escribe metadatos (nombre, categoría, mínimo, costo). No toca CurrentStock.
	Update(product *entity.Product) error
	// UpdateStock escribe la proyección CurrentStock. Solo desde el orquestador, en tx.
	UpdateStock(productID string, stock decimal.Decimal) error
	// ListByOrganization lista productos de la organización ordenados por nombre.
	// category vacío = todas; limit <= 0 = sin límite.
	ListByOrganization(orgID, category string, limit, offset int) ([]*entity.Product, error)
}
