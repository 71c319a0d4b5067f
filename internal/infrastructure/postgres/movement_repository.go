package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, organization_id, product_id, type, quantity, unit_cost, total_cost, reason, recipe_id, portions, reference, created_by, created_at`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only, no hay
// UPDATE ni DELETE sobre stock_movements.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	var portions *int
	if m.Portions > 0 {
		portions = &m.Portions
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.OrganizationID, m.ProductID, m.Type, m.Quantity,
		m.UnitCost, m.TotalCost, nullable(m.Reason), nullable(m.RecipeID),
		portions, nullable(m.Reference), nullable(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByOrganization lista movimientos de la organización, más recientes
// primero (índice compuesto organization_id + created_at DESC). limit <= 0 =
// sin límite.
func (r *MovementRepo) ListByOrganization(orgID string, f repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE organization_id = $1`
	args := []any{orgID}
	pos := 2
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SumByProduct pliega el libro con signo para un producto: entradas suman,
// salidas/pérdidas/ajustes restan. Es el lado derecho del invariante
// CurrentStock == Σ movimientos firmados.
func (r *MovementRepo) SumByProduct(orgID, productID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'entry' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements
		WHERE organization_id = $1 AND product_id = $2`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, orgID, productID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

// ExistsByReference indica si el libro ya tiene movimientos con esa referencia.
func (r *MovementRepo) ExistsByReference(orgID, reference string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM stock_movements
			WHERE organization_id = $1 AND reference = $2
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, orgID, reference).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by reference: %w", err)
	}
	return exists, nil
}

func scanMovement(row scannable) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var reason, recipeID, reference, createdBy *string
	var portions *int
	err := row.Scan(
		&m.ID, &m.OrganizationID, &m.ProductID, &m.Type, &m.Quantity,
		&m.UnitCost, &m.TotalCost, &reason, &recipeID,
		&portions, &reference, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	if recipeID != nil {
		m.RecipeID = *recipeID
	}
	if portions != nil {
		m.Portions = *portions
	}
	if reference != nil {
		m.Reference = *reference
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}
