package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// RegisterMovementUseCase es el orquestador de movimientos: valida, escribe el
// libro (append-only) y actualiza la proyección CurrentStock, todo dentro de
// una transacción con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino de escritura del stock; nada más toca CurrentStock.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	recipeRepo  repository.RecipeRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	recipeRepo repository.RecipeRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
	}
}

// MovementInput entrada para registrar un movimiento individual.
type MovementInput struct {
	ProductID string
	Type      string // entry | exit | loss | adjustment
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal // entradas
	Reason    string
	Reference string
	RecipeID  string // salidas por receta
	Portions  int
}

// RegisterMovementFromRequest adapta el request HTTP a MovementInput.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(
	ctx context.Context, orgID, userID string, in dto.RegisterMovementRequest,
) (*entity.StockMovement, error) {
	return uc.RegisterMovement(ctx, orgID, userID, MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Reason:    in.Reason,
		Reference: in.Reference,
	})
}

// RegisterMovement registra un movimiento individual.
//
// Validación (fuera de la tx, solo lectura): tipo y cantidad válidos, producto
// existente y de la organización. Aplicación (dentro de la tx): bloquea la
// fila del producto, rechaza sobregiro con ErrInsufficientStock, escribe el
// movimiento y la nueva proyección. Falla cualquiera de las dos escrituras y
// la transacción entera se revierte: nunca queda un movimiento sin su efecto.
func (uc *RegisterMovementUseCase) RegisterMovement(
	ctx context.Context, orgID, userID string, input MovementInput,
) (*entity.StockMovement, error) {
	if orgID == "" || input.ProductID == "" || !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.Type == entity.MovementTypeEntry && input.UnitCost != nil && input.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}

	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err = applyMovement(movRepo, productRepo, orgID, userID, input, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// applyMovement ejecuta las dos escrituras acopladas del orquestador dentro de
// la transacción del caller: append al libro + proyección. La fila del
// producto queda bloqueada hasta el commit, así movimientos concurrentes
// sobre el mismo producto se serializan en la base y no se pierden updates.
func applyMovement(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	orgID, userID string,
	input MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	locked, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if locked == nil || locked.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}

	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		ProductID:      input.ProductID,
		Type:           input.Type,
		Quantity:       input.Quantity,
		Reason:         input.Reason,
		Reference:      input.Reference,
		RecipeID:       input.RecipeID,
		Portions:       input.Portions,
		CreatedBy:      userID,
		CreatedAt:      now,
	}
	if input.Type == entity.MovementTypeEntry && input.UnitCost != nil {
		total := input.Quantity.Mul(*input.UnitCost)
		mov.UnitCost = input.UnitCost
		mov.TotalCost = &total
	}

	newStock := locked.CurrentStock.Add(mov.SignedQuantity())
	if newStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(locked.ID, newStock); err != nil {
		return nil, err
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
