// Package recipe casos de uso de fichas técnicas. El costo de cada
// ingrediente se fija al guardar (foto del costo vigente del producto); los
// cambios posteriores de costo del producto no reescriben recetas guardadas.
package recipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	domrecipe "github.com/jhoicas/restostock-api/internal/domain/recipe"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// UseCase CRUD de recetas con costeo al guardar.
type UseCase struct {
	repo        repository.RecipeRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.RecipeRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo, productRepo: productRepo}
}

// Create crea una receta: valida ingredientes contra el catálogo, toma la foto
// de costos y deriva TotalCost y CostPerServing.
func (uc *UseCase) Create(orgID string, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if orgID == "" || in.Name == "" || in.Servings <= 0 || len(in.Ingredients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ingredients, err := uc.snapshotIngredients(orgID, in.Ingredients)
	if err != nil {
		return nil, err
	}
	total, perServing, err := domrecipe.ComputeCost(ingredients, in.Servings)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.Recipe{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Ingredients:    ingredients,
		Servings:       in.Servings,
		TotalCost:      total,
		CostPerServing: perServing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// GetByID obtiene una receta de la organización.
func (uc *UseCase) GetByID(orgID, id string) (*dto.RecipeResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return toRecipeResponse(r), nil
}

// Update edita una receta. Si cambian los ingredientes o las porciones se
// recalcula el costo con una foto nueva; si no, la foto original se conserva.
func (uc *UseCase) Update(orgID, id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.Servings != nil {
		if *in.Servings <= 0 {
			return nil, domain.ErrInvalidInput
		}
		r.Servings = *in.Servings
	}
	if in.Ingredients != nil {
		if len(in.Ingredients) == 0 {
			return nil, domain.ErrInvalidInput
		}
		ingredients, err := uc.snapshotIngredients(orgID, in.Ingredients)
		if err != nil {
			return nil, err
		}
		r.Ingredients = ingredients
	}
	if in.Ingredients != nil || in.Servings != nil {
		total, perServing, err := domrecipe.ComputeCost(r.Ingredients, r.Servings)
		if err != nil {
			return nil, err
		}
		r.TotalCost = total
		r.CostPerServing = perServing
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// Delete elimina una receta. El libro de movimientos no se toca: las salidas
// ya registradas con esta receta conservan su referencia.
func (uc *UseCase) Delete(orgID, id string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil || r.OrganizationID != orgID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista recetas de la organización.
func (uc *UseCase) List(orgID string, limit, offset int) (*dto.RecipeListResponse, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByOrganization(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return &dto.RecipeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// snapshotIngredients valida cada producto (existencia y organización) y
// construye las líneas con la foto de costo: Quantity * CostPrice vigente.
func (uc *UseCase) snapshotIngredients(orgID string, in []dto.RecipeIngredientRequest) ([]entity.RecipeIngredient, error) {
	out := make([]entity.RecipeIngredient, 0, len(in))
	for _, line := range in {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.OrganizationID != orgID {
			return nil, domain.ErrNotFound
		}
		out = append(out, entity.RecipeIngredient{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Unit:        p.Unit,
			Cost:        line.Quantity.Mul(p.CostPrice),
		})
	}
	return out, nil
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	ingredients := make([]dto.RecipeIngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, dto.RecipeIngredientResponse{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Cost:        ing.Cost,
		})
	}
	return &dto.RecipeResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Ingredients:    ingredients,
		Servings:       r.Servings,
		TotalCost:      r.TotalCost,
		CostPerServing: r.CostPerServing,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
