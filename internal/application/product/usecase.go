// Package product casos de uso del catálogo de productos. El stock no se
// edita aquí: CurrentStock solo cambia a través del orquestador de movimientos.
package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
	"github.com/jhoicas/restostock-api/pkg/textutil"
)

// UseCase CRUD de productos.
type UseCase struct {
	repo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un producto con stock 0. Nombre vacío o unidad fuera del
// conjunto permitido es entrada inválida.
func (uc *UseCase) Create(orgID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if orgID == "" || in.Name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumStock.LessThan(decimal.Zero) || in.CostPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Category:       in.Category,
		Unit:           in.Unit,
		CurrentStock:   decimal.Zero,
		MinimumStock:   in.MinimumStock,
		CostPrice:      in.CostPrice,
		SupplierID:     in.SupplierID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto de la organización.
func (uc *UseCase) GetByID(orgID, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update actualiza metadatos. CurrentStock no se puede modificar por esta vía.
func (uc *UseCase) Update(orgID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		p.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.MinimumStock = *in.MinimumStock
	}
	if in.CostPrice != nil {
		if in.CostPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.CostPrice = *in.CostPrice
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos con filtro por categoría y búsqueda por subcadena del
// nombre sin distinguir mayúsculas ni tildes.
func (uc *UseCase) List(orgID string, f dto.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	// Con búsqueda por texto el recorte se hace después de filtrar en memoria,
	// así la página no pierde coincidencias.
	repoLimit, repoOffset := limit, offset
	if f.Search != "" {
		repoLimit, repoOffset = 0, 0
	}
	list, err := uc.repo.ListByOrganization(orgID, f.Category, repoLimit, repoOffset)
	if err != nil {
		return nil, err
	}
	if f.Search != "" {
		filtered := list[:0]
		for _, p := range list {
			if textutil.ContainsFold(p.Name, f.Search) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
		if offset > 0 {
			if offset >= len(list) {
				list = nil
			} else {
				list = list[offset:]
			}
		}
		if limit > 0 && limit < len(list) {
			list = list[:limit]
		}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Category:       p.Category,
		Unit:           p.Unit,
		CurrentStock:   p.CurrentStock,
		MinimumStock:   p.MinimumStock,
		CostPrice:      p.CostPrice,
		SupplierID:     p.SupplierID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
