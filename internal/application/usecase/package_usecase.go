package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
	"github.com/jhoicas/packages-api/internal/domain/repository"
)

// dateLayout es el formato calendario de expiresAt y de los límites del
// filtro por rango.
const dateLayout = "2006-01-02"

// CreatePackageInput datos para crear un paquete.
type CreatePackageInput struct {
	Name        string
	Description string
	Price       int
	ExpiresAt   string // YYYY-MM-DD
	UserID      string
}

// PackageUseCase casos de uso de paquetes: CRUD y filtro por rango de
// expiración.
type PackageUseCase struct {
	packages repository.PackageRepository
}

// NewPackageUseCase construye el caso de uso de paquetes.
func NewPackageUseCase(packages repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{packages: packages}
}

// Create valida que expiresAt sea una fecha calendario válida y no anterior
// al momento actual, y persiste el paquete.
func (uc *PackageUseCase) Create(ctx context.Context, in CreatePackageInput) (*dto.PackageData, error) {
	expiresAt, err := time.Parse(dateLayout, in.ExpiresAt)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if expiresAt.Before(time.Now()) {
		return nil, domain.ErrInvalidDate
	}

	pkg, err := uc.packages.Insert(ctx, &entity.Package{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ExpiresAt:   expiresAt,
		UserID:      in.UserID,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromPackage(pkg), nil
}

// GetOne devuelve un paquete por id.
func (uc *PackageUseCase) GetOne(ctx context.Context, packageID string) (*dto.PackageData, error) {
	pkg, err := uc.packages.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromPackage(pkg), nil
}

// ListForUser devuelve los paquetes de un usuario. Cero resultados es
// ErrEmptyResult.
func (uc *PackageUseCase) ListForUser(ctx context.Context, userID string) ([]*dto.PackageData, error) {
	pkgs, err := uc.packages.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return dto.FromPackages(pkgs), nil
}

// ListAll devuelve todos los paquetes sin filtrar (scope admin).
func (uc *PackageUseCase) ListAll(ctx context.Context) ([]*dto.PackageData, error) {
	pkgs, err := uc.packages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return dto.FromPackages(pkgs), nil
}

// FilterForUser filtra los paquetes del usuario por rango de expiración
// inclusivo. El chequeo de blancos es a nivel de string, distinto de la
// validación de fecha calendario que aplica Create (regla histórica que se
// conserva a propósito).
func (uc *PackageUseCase) FilterForUser(ctx context.Context, startDate, endDate, userID string) ([]*dto.PackageData, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, domain.ErrMissingDateRange
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrMissingUserID
	}
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	pkgs, err := uc.packages.FilterByExpiryRange(ctx, start, end, userID)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return dto.FromPackages(pkgs), nil
}

// FilterForAdmin filtra todos los paquetes por rango de expiración inclusivo
// y adjunta la proyección {_id, name, email} del usuario dueño.
func (uc *PackageUseCase) FilterForAdmin(ctx context.Context, startDate, endDate string) ([]*dto.PackageData, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, domain.ErrMissingDateRange
	}
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	pkgs, err := uc.packages.FilterByExpiryRange(ctx, start, end, "")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, domain.ErrEmptyResult
	}
	return dto.FromPackages(pkgs), nil
}

// Update aplica una actualización parcial sobre un paquete del principal y
// devuelve el documento ya actualizado.
func (uc *PackageUseCase) Update(ctx context.Context, principalID, packageID string, fields entity.UpdatePackage) (*dto.PackageData, error) {
	pkg, err := uc.packages.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	if pkg.UserID != principalID {
		return nil, domain.ErrUnauthorized
	}
	updated, err := uc.packages.UpdateFields(ctx, packageID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromPackage(updated), nil
}

// Delete elimina un paquete del principal.
func (uc *PackageUseCase) Delete(ctx context.Context, principalID, packageID string) error {
	pkg, err := uc.packages.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return domain.ErrNotFound
	}
	if pkg.UserID != principalID {
		return domain.ErrUnauthorized
	}
	return uc.packages.Delete(ctx, packageID)
}

// normalizeRange lleva ambos límites a la forma YYYY-MM-DD. La sintaxis ya
// fue validada en la capa de binding; un parse fallido aquí se reporta como
// fecha inválida.
func normalizeRange(startDate, endDate string) (string, string, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(startDate))
	if err != nil {
		return "", "", domain.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(endDate))
	if err != nil {
		return "", "", domain.ErrInvalidDate
	}
	return start.Format(dateLayout), end.Format(dateLayout), nil
}
