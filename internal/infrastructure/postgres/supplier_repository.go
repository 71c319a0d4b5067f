package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, organization_id, name, email, phone, address, products, active, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OrganizationID, s.Name, nullable(s.Email), nullable(s.Phone),
		nullable(s.Address), nullable(s.Products), s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update reescribe el proveedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, address = $5,
		    products = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullable(s.Email), nullable(s.Phone), nullable(s.Address),
		nullable(s.Products), s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByOrganization lista proveedores por nombre. limit <= 0 = sin límite.
func (r *SupplierRepo) ListByOrganization(orgID string, onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE organization_id = $1`
	args := []any{orgID}
	pos := 2
	if onlyActive {
		query += " AND active = true"
	}
	query += " ORDER BY name"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSupplier(row scannable) (*entity.Supplier, error) {
	var s entity.Supplier
	var email, phone, address, products *string
	err := row.Scan(
		&s.ID, &s.OrganizationID, &s.Name, &email, &phone,
		&address, &products, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email != nil {
		s.Email = *email
	}
	if phone != nil {
		s.Phone = *phone
	}
	if address != nil {
		s.Address = *address
	}
	if products != nil {
		s.Products = *products
	}
	return &s, nil
}
