package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

const recipeColumns = `id, organization_id, name, description, category, ingredients, servings, total_cost, cost_per_serving, created_at, updated_at`

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL. Los
// ingredientes van embebidos como JSONB, preservando el orden de la lista.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una receta nueva.
func (r *RecipeRepo) Create(rec *entity.Recipe) error {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		rec.ID, rec.OrganizationID, rec.Name, rec.Description, rec.Category,
		ingredients, rec.Servings, rec.TotalCost, rec.CostPerServing,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	rec, err := scanRecipe(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return rec, nil
}

// Update reescribe la receta completa, ingredientes incluidos.
func (r *RecipeRepo) Update(rec *entity.Recipe) error {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	query := `
		UPDATE recipes
		SET name = $2, description = $3, category = $4, ingredients = $5,
		    servings = $6, total_cost = $7, cost_per_serving = $8, updated_at = $9
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		rec.ID, rec.Name, rec.Description, rec.Category, ingredients,
		rec.Servings, rec.TotalCost, rec.CostPerServing, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// Delete elimina una receta. No toca el libro de movimientos.
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// ListByOrganization lista recetas por nombre. limit <= 0 = sin límite.
func (r *RecipeRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE organization_id = $1 ORDER BY name`
	args := []any{orgID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanRecipe(row scannable) (*entity.Recipe, error) {
	var rec entity.Recipe
	var ingredients []byte
	err := row.Scan(
		&rec.ID, &rec.OrganizationID, &rec.Name, &rec.Description, &rec.Category,
		&ingredients, &rec.Servings, &rec.TotalCost, &rec.CostPerServing,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
			return nil, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}
	return &rec, nil
}
