package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	domrecipe "github.com/jhoicas/restostock-api/internal/domain/recipe"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// RecipeExitInput entrada para una salida por receta.
type RecipeExitInput struct {
	RecipeID  string
	Portions  int
	Reason    string
	Reference string // clave de idempotencia (webhooks); vacío = sin chequeo
}

// RecipeExitResult movimientos aplicados por la salida. Applied false indica
// que la referencia ya había sido procesada y no se descontó nada.
type RecipeExitResult struct {
	Applied   bool
	Movements []*entity.StockMovement
}

// RegisterRecipeExitFromRequest adapta el request HTTP a RecipeExitInput.
func (uc *RegisterMovementUseCase) RegisterRecipeExitFromRequest(
	ctx context.Context, orgID, userID string, in dto.RecipeExitRequest,
) (*RecipeExitResult, error) {
	return uc.RegisterRecipeExit(ctx, orgID, userID, RecipeExitInput{
		RecipeID:  in.RecipeID,
		Portions:  in.Portions,
		Reason:    in.Reason,
		Reference: in.Reference,
	})
}

// RegisterRecipeExit descuenta todos los ingredientes de la receta para las
// porciones pedidas como UN solo lote: una única transacción aplica cada
// salida con su bloqueo de fila, y cualquier falla (producto inexistente,
// stock insuficiente, infraestructura) revierte el lote completo. Aplicación
// parcial —tres de cinco ingredientes descontados— no puede ocurrir: una
// lectura concurrente ve el estado previo o el posterior, nunca uno a medias.
//
// Con Reference no vacía la operación es idempotente: si el libro ya tiene
// movimientos con esa referencia (reentrega de webhook), no se aplica nada.
func (uc *RegisterMovementUseCase) RegisterRecipeExit(
	ctx context.Context, orgID, userID string, input RecipeExitInput,
) (*RecipeExitResult, error) {
	if orgID == "" || input.RecipeID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Portions <= 0 {
		return nil, domain.ErrInvalidInput
	}

	rec, err := uc.recipeRepo.GetByID(input.RecipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}

	resolved, err := domrecipe.Resolve(rec, input.Portions)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, domain.ErrInvalidInput
	}

	reason := input.Reason
	if reason == "" {
		reason = fmt.Sprintf("Producción: %s (%d porciones)", rec.Name, input.Portions)
	}

	now := time.Now()
	result := &RecipeExitResult{}
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if input.Reference != "" {
			exists, err := movRepo.ExistsByReference(orgID, input.Reference)
			if err != nil {
				return err
			}
			if exists {
				// Entrega duplicada: commit sin escrituras.
				return nil
			}
		}

		for _, ing := range resolved {
			mov, err := applyMovement(movRepo, productRepo, orgID, userID, MovementInput{
				ProductID: ing.ProductID,
				Type:      entity.MovementTypeExit,
				Quantity:  ing.Quantity,
				Reason:    reason,
				Reference: input.Reference,
				RecipeID:  rec.ID,
				Portions:  input.Portions,
			}, now)
			if err != nil {
				// El ingrediente no se pudo resolver o aplicar: el caller
				// recibe ErrPartialBatch con la causa, y el rollback de la tx
				// ya deshizo los ingredientes anteriores del lote.
				return fmt.Errorf("%w: ingrediente %q: %v", domain.ErrPartialBatch, ing.ProductName, err)
			}
			result.Movements = append(result.Movements, mov)
		}
		result.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
