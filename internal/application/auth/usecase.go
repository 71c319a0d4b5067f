// Package auth casos de uso de autenticación: registro y login.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restostock-api/internal/application/dto"
	"github.com/jhoicas/restostock-api/internal/domain"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
	"github.com/jhoicas/restostock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario con password bcrypt. Sin OrganizationID crea
// también la organización y deja al usuario como owner; con OrganizationID se
// une a una existente.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	orgID := in.OrganizationID
	role := in.Role
	if orgID == "" {
		if in.OrganizationName == "" {
			return nil, domain.ErrInvalidInput
		}
		orgType := in.OrganizationType
		if orgType == "" {
			orgType = entity.OrgTypeRestaurant
		}
		org := &entity.Organization{
			ID:        uuid.New().String(),
			Name:      in.OrganizationName,
			Type:      orgType,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.orgRepo.Create(org); err != nil {
			return nil, err
		}
		orgID = org.ID
		role = entity.RoleOwner
	} else {
		org, err := uc.orgRepo.GetByID(orgID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound
		}
		if role == "" {
			role = entity.RoleEmployee
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           name,
		Role:           role,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
