package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/packages-api/internal/application/usecase"
	"github.com/jhoicas/packages-api/internal/domain"
)

func TestAdminRegister_EmiteAdminIdSinStatus(t *testing.T) {
	admins := newFakeAdminRepo()
	uc := usecase.NewAdminUseCase(admins, newFakeUserRepo(), testJWT)

	out, err := uc.Register(context.Background(), "Root", "root@example.com", "secreta1")
	require.NoError(t, err)

	assert.NotEmpty(t, out.AdminID, "el payload debe llevar adminId")
	assert.Empty(t, out.UserID, "una cuenta admin nunca lleva userId")
	assert.Empty(t, out.Status, "los admins no tienen status")
	assert.Equal(t, "admin", out.UserType)
}

func TestAdminRegister_EmailDuplicadoSoloEnColeccionPropia(t *testing.T) {
	admins := newFakeAdminRepo()
	users := newFakeUserRepo()
	adminUC := usecase.NewAdminUseCase(admins, users, testJWT)
	userUC := usecase.NewUserUseCase(users, testJWT)

	// El mismo email puede existir como user y como admin: la unicidad es por colección
	_, err := userUC.Register(context.Background(), "Ana", "ana@example.com", "secreta1")
	require.NoError(t, err)
	_, err = adminUC.Register(context.Background(), "Ana Admin", "ana@example.com", "secreta1")
	assert.NoError(t, err, "la unicidad de email no se cruza entre colecciones")

	_, err = adminUC.Register(context.Background(), "Otra", "ana@example.com", "secreta1")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAdminLogin_CredencialesInvalidas(t *testing.T) {
	admins := newFakeAdminRepo()
	uc := usecase.NewAdminUseCase(admins, newFakeUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), "Root", "root@example.com", "secreta1")
	require.NoError(t, err)

	_, errEmail := uc.Login(context.Background(), "nadie@example.com", "secreta1")
	_, errPass := uc.Login(context.Background(), "root@example.com", "incorrecta")
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
}

func TestAdminListUsers_VacioEsError(t *testing.T) {
	uc := usecase.NewAdminUseCase(newFakeAdminRepo(), newFakeUserRepo(), testJWT)

	// Cero resultados se trata como error, no como éxito con lista vacía
	_, err := uc.ListUsers(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

func TestAdminListUsers_DevuelveTodos(t *testing.T) {
	users := newFakeUserRepo()
	userUC := usecase.NewUserUseCase(users, testJWT)
	uc := usecase.NewAdminUseCase(newFakeAdminRepo(), users, testJWT)

	_, err := userUC.Register(context.Background(), "Ana", "ana@example.com", "secreta1")
	require.NoError(t, err)
	_, err = userUC.Register(context.Background(), "Juan", "juan@example.com", "secreta1")
	require.NoError(t, err)

	out, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestAdminGetUser_NoExiste(t *testing.T) {
	uc := usecase.NewAdminUseCase(newFakeAdminRepo(), newFakeUserRepo(), testJWT)

	_, err := uc.GetUser(context.Background(), "user-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
