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

// UserUseCase casos de uso de cuentas user: registro, login y perfil.
type UserUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUserUseCase construye el caso de uso de cuentas user.
func NewUserUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UserUseCase {
	return &UserUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea una cuenta user: rechaza email duplicado dentro de la
// colección de users, hashea el password con bcrypt, persiste y emite token.
func (uc *UserUseCase) Register(ctx context.Context, name, email, password string) (*dto.AccountData, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := uc.users.FindByEmail(ctx, email)
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

	user, err := uc.users.Insert(ctx, &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	return issueTokenData(uc.jwtCfg, user.ID, user.Email, user.Name, user.Status, entity.RoleUser)
}

// Login verifica email y password y emite token. El fallo es indistinguible
// entre email desconocido y password incorrecto.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*dto.AccountData, error) {
	user, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return issueTokenData(uc.jwtCfg, user.ID, user.Email, user.Name, user.Status, entity.RoleUser)
}

// Profile devuelve la cuenta user por id.
func (uc *UserUseCase) Profile(ctx context.Context, id string) (*dto.AccountData, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromUser(user), nil
}
