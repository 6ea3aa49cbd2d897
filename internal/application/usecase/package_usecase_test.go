package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/packages-api/internal/application/usecase"
	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func seedPackage(t *testing.T, uc *usecase.PackageUseCase, userID, expiresAt string) string {
	t.Helper()
	out, err := uc.Create(context.Background(), usecase.CreatePackageInput{
		Name:        "Plan básico",
		Description: "Paquete de prueba",
		Price:       100,
		ExpiresAt:   expiresAt,
		UserID:      userID,
	})
	require.NoError(t, err)
	return out.ID
}

func TestPackageCreate_RoundTripPorID(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)

	exp := futureDate(30)
	created, err := uc.Create(context.Background(), usecase.CreatePackageInput{
		Name:        "Plan básico",
		Description: "30 días de acceso",
		Price:       250,
		ExpiresAt:   exp,
		UserID:      "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.UserID, got.UserID)
	assert.Equal(t, created.ExpiresAt, got.ExpiresAt)
}

func TestPackageCreate_FechaPasada_NoPersiste(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.CreatePackageInput{
		Name:        "Plan viejo",
		Description: "expira en el pasado",
		Price:       10,
		ExpiresAt:   "2020-01-01",
		UserID:      "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Empty(t, repo.packages, "una fecha pasada no debe persistir el paquete")
}

func TestPackageCreate_FechaMalformada(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	for _, bad := range []string{"01-01-2030", "2030/01/01", "2030-13-40", "mañana", ""} {
		_, err := uc.Create(context.Background(), usecase.CreatePackageInput{
			Name: "x", Description: "x", Price: 1, ExpiresAt: bad, UserID: "user-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDate, "expiresAt %q debe rechazarse", bad)
	}
}

func TestPackageUpdate_ParcialSoloPrecio_DevuelveDocActualizado(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)
	id := seedPackage(t, uc, "user-1", futureDate(30))

	price := 50
	out, err := uc.Update(context.Background(), "user-1", id, entity.UpdatePackage{Price: &price})
	require.NoError(t, err)

	// La respuesta refleja el documento ya actualizado (no el snapshot previo)
	assert.Equal(t, 50, out.Price)
	assert.Equal(t, "Plan básico", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, "Paquete de prueba", out.Description)

	stored, err := uc.GetOne(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Price)
	assert.Equal(t, "Plan básico", stored.Name)
}

func TestPackageUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	price := 50
	_, err := uc.Update(context.Background(), "user-1", "pkg-999", entity.UpdatePackage{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageUpdate_OtroDueno_Unauthorized(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)
	id := seedPackage(t, uc, "user-1", futureDate(30))

	price := 50
	_, err := uc.Update(context.Background(), "user-2", id, entity.UpdatePackage{Price: &price})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, err := uc.GetOne(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Price, "el paquete no debe haberse modificado")
}

func TestPackageDelete(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)
	id := seedPackage(t, uc, "user-1", futureDate(30))

	require.NoError(t, uc.Delete(context.Background(), "user-1", id))

	_, err := uc.GetOne(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageDelete_OtroDueno_Unauthorized(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)
	id := seedPackage(t, uc, "user-1", futureDate(30))

	err := uc.Delete(context.Background(), "user-2", id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Len(t, repo.packages, 1)
}

func TestPackageListForUser_VacioEsError(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	_, err := uc.ListForUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

func TestPackageFilter_InclusivoEnAmbosExtremos(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)

	start := futureDate(10)
	end := futureDate(20)
	seedPackage(t, uc, "user-1", start)          // justo en el límite inferior
	seedPackage(t, uc, "user-1", end)            // justo en el límite superior
	seedPackage(t, uc, "user-1", futureDate(25)) // fuera del rango

	out, err := uc.FilterForUser(context.Background(), start, end, "user-1")
	require.NoError(t, err)
	assert.Len(t, out, 2, "los paquetes que expiran exactamente en los límites se incluyen")
}

func TestPackageFilterForUser_BlancosRequeridos(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	_, err := uc.FilterForUser(context.Background(), "  ", futureDate(5), "user-1")
	assert.ErrorIs(t, err, domain.ErrMissingDateRange)

	_, err = uc.FilterForUser(context.Background(), futureDate(1), futureDate(5), " ")
	assert.ErrorIs(t, err, domain.ErrMissingUserID)
}

func TestPackageFilterForUser_SoloPaquetesPropios(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)

	day := futureDate(10)
	seedPackage(t, uc, "user-1", day)
	seedPackage(t, uc, "user-2", day)

	out, err := uc.FilterForUser(context.Background(), day, day, "user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "user-1", out[0].UserID)
	assert.Nil(t, out[0].User, "el scope user no adjunta el join del dueño")
}

func TestPackageFilterForAdmin_AdjuntaDueno(t *testing.T) {
	repo := newFakePackageRepo()
	repo.owners["user-1"] = &entity.PackageOwner{ID: "user-1", Name: "Ana", Email: "ana@example.com"}
	uc := usecase.NewPackageUseCase(repo)

	day := futureDate(10)
	seedPackage(t, uc, "user-1", day)

	out, err := uc.FilterForAdmin(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].User, "el scope admin proyecta el dueño")
	assert.Equal(t, "Ana", out[0].User.Name)
	assert.Equal(t, "ana@example.com", out[0].User.Email)
}

func TestPackageFilter_SinCoincidencias_EsError(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)
	seedPackage(t, uc, "user-1", futureDate(30))

	_, err := uc.FilterForUser(context.Background(), futureDate(1), futureDate(2), "user-1")
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}
