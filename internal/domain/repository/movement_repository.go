package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
}

// MovementRepository define el puerto del libro de movimientos (append-only).
// Create no toca Product.CurrentStock: ese acople vive en el orquestador,
// dentro de la misma transacción.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByOrganization lista movimientos de la organización, más recientes primero.
	// limit <= 0 = sin límite.
	ListByOrganization(orgID string, f MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	// SumByProduct pliega el libro con signo para un producto (entry suma, resto resta).
	SumByProduct(orgID, productID string) (decimal.Decimal, error)
	// ExistsByReference indica si ya hay movimientos con esa referencia
	// (idempotencia de webhooks: entrega duplicada no aplica dos veces).
	ExistsByReference(orgID, reference string) (bool, error)
}
