package stock

import (
	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// LedgerQueryUseCase lecturas del libro de movimientos (sin efectos).
type LedgerQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewLedgerQueryUseCase construye el caso de uso.
func NewLedgerQueryUseCase(movRepo repository.MovementRepository) *LedgerQueryUseCase {
	return &LedgerQueryUseCase{movRepo: movRepo}
}

// List lista movimientos de la organización, más recientes primero.
func (uc *LedgerQueryUseCase) List(
	orgID string, f repository.MovementFilter, limit, offset int,
) (*dto.MovementListResponse, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	if f.Type != "" && !entity.ValidMovementType(f.Type) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListByOrganization(orgID, f, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		ProductID:      m.ProductID,
		Type:           m.Type,
		Quantity:       m.Quantity,
		UnitCost:       m.UnitCost,
		TotalCost:      m.TotalCost,
		Reason:         m.Reason,
		RecipeID:       m.RecipeID,
		Portions:       m.Portions,
		Reference:      m.Reference,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}
