// Package supplier casos de uso del directorio de proveedores.
package supplier

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// UseCase CRUD de proveedores.
type UseCase struct {
	repo repository.SupplierRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SupplierRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un proveedor activo.
func (uc *UseCase) Create(orgID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if orgID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Products:       in.Products,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor de la organización.
func (uc *UseCase) GetByID(orgID, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

// Update edita un proveedor (incluye activar/desactivar).
func (uc *UseCase) Update(orgID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Name = *in.Name
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Products != nil {
		s.Products = *in.Products
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// List lista proveedores de la organización.
func (uc *UseCase) List(orgID string, onlyActive bool, limit, offset int) (*dto.SupplierListResponse, error) {
	if orgID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByOrganization(orgID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		Products:       s.Products,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
