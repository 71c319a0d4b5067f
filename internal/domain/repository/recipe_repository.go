package repository

import "github.com/jhoicas/restostock-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe.
// Los ingredientes se guardan embebidos como lista ordenada (JSONB).
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	Delete(id string) error
	ListByOrganization(orgID string, limit, offset int) ([]*entity.Recipe, error)
}
