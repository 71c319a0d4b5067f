package repository

import "github.com/jhoicas/restostock-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByOrganization(orgID string, onlyActive bool, limit, offset int) ([]*entity.Supplier, error)
}
