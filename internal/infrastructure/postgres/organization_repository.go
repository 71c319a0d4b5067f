package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una organización nueva.
func (r *OrganizationRepo) Create(o *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, type, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Name, o.Type, nullable(o.OwnerID), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `SELECT id, name, type, owner_id, created_at, updated_at FROM organizations WHERE id = $1`
	var o entity.Organization
	var ownerID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Type, &ownerID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if ownerID != nil {
		o.OwnerID = *ownerID
	}
	return &o, nil
}
