package repository

import (
	"context"

	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// PackageRepository define el puerto de persistencia para Package (DIP).
type PackageRepository interface {
	Insert(ctx context.Context, pkg *entity.Package) (*entity.Package, error)
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
	// UpdateFields aplica una actualización parcial y devuelve el documento
	// ya actualizado. Devuelve (nil, nil) si el id no existe.
	UpdateFields(ctx context.Context, id string, fields entity.UpdatePackage) (*entity.Package, error)
	Delete(ctx context.Context, id string) error
	// FilterByExpiryRange es la agregación por rango de fechas de expiración:
	// compara expiresAt normalizado a YYYY-MM-DD contra [startDate, endDate]
	// inclusivo. Con userID no vacío restringe al dueño y proyecta el conjunto
	// reducido de campos; con userID vacío (scope admin) hace el join con el
	// usuario dueño y puebla Owner.
	FilterByExpiryRange(ctx context.Context, startDate, endDate, userID string) ([]*entity.Package, error)
}
