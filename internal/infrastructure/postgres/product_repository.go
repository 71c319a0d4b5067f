package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, organization_id, name, category, unit, current_stock, minimum_stock, cost_price, supplier_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. CurrentStock inicia en 0.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.OrganizationID, p.Name, p.Category, p.Unit,
		p.CurrentStock, p.MinimumStock, p.CostPrice, nullable(p.SupplierID),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Movimientos concurrentes sobre el mismo producto se serializan aquí.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update escribe metadatos. CurrentStock queda fuera a propósito: la
// proyección solo se escribe vía UpdateStock desde el orquestador.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, unit = $4, minimum_stock = $5,
		    cost_price = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Category, p.Unit, p.MinimumStock,
		p.CostPrice, nullable(p.SupplierID), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escribe la proyección CurrentStock (solo desde el orquestador, en tx).
func (r *ProductRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	query := `UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, productID, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListByOrganization lista productos de la organización ordenados por nombre
// (índice compuesto organization_id + name). limit <= 0 = sin límite.
func (r *ProductRepo) ListByOrganization(orgID, category string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE organization_id = $1`
	args := []any{orgID}
	pos := 2
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, category)
		pos++
	}
	query += " ORDER BY name"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable) (*entity.Product, error) {
	var p entity.Product
	var supplierID *string
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Name, &p.Category, &p.Unit,
		&p.CurrentStock, &p.MinimumStock, &p.CostPrice, &supplierID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}

// nullable convierte string vacío a NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
