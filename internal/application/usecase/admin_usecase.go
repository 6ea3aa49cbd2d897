package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
	"github.com/jhoicas/packages-api/internal/domain/repository"
)

// AdminUseCase casos de uso de cuentas admin: registro, login, perfil y
// consultas de administración sobre la colección de users.
type AdminUseCase struct {
	admins repository.AdminRepository
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAdminUseCase construye el caso de uso de cuentas admin.
func NewAdminUseCase(admins repository.AdminRepository, users repository.UserRepository, jwtCfg JWTConfig) *AdminUseCase {
	return &AdminUseCase{admins: admins, users: users, jwtCfg: jwtCfg}
}

// Register crea una cuenta admin. El email solo se verifica contra la
// colección de admins (no se cruza con users).
func (uc *AdminUseCase) Register(ctx context.Context, name, email, password string) (*dto.AccountData, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := uc.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := uc.admins.Insert(ctx, &entity.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	// Los admins no tienen status: el claim va vacío
	return issueTokenData(uc.jwtCfg, admin.ID, admin.Email, admin.Name, "", entity.RoleAdmin)
}

// Login verifica email y password de un admin y emite token.
func (uc *AdminUseCase) Login(ctx context.Context, email, password string) (*dto.AccountData, error) {
	admin, err := uc.admins.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return issueTokenData(uc.jwtCfg, admin.ID, admin.Email, admin.Name, "", entity.RoleAdmin)
}

// Profile devuelve la cuenta admin por id.
func (uc *AdminUseCase) Profile(ctx context.Context, id string) (*dto.AccountData, error) {
	admin, err := uc.admins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromAdmin(admin), nil
}

// ListUsers devuelve todos los users. Cero resultados se trata como error
// (ErrEmptyResult), siguiendo la convención de todas las consultas de listado.
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*dto.AccountData, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return dto.FromUsers(users), nil
}

// GetUser devuelve un user por id (consulta de administración).
func (uc *AdminUseCase) GetUser(ctx context.Context, userID string) (*dto.AccountData, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromUser(user), nil
}
