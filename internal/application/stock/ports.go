package stock

import (
	"context"

	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del orquestador:
// el append al libro y la actualización de la proyección viajan juntos, y una
// salida por receta aplica todos sus ingredientes o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
