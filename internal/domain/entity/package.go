package entity

import "time"

// Package representa un paquete creado por un usuario. UserID referencia al
// usuario dueño por convención (no hay foreign key; no se re-valida después
// de la creación).
type Package struct {
	ID          string
	Name        string
	Description string
	Price       int
	ExpiresAt   time.Time
	UserID      string
	Owner       *PackageOwner // solo poblado por el filtro por rango con scope admin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PackageOwner proyección reducida del usuario dueño de un paquete,
// resultado del join en la agregación por rango de fechas.
type PackageOwner struct {
	ID    string
	Name  string
	Email string
}

// UpdatePackage campos opcionales para la actualización parcial de un paquete.
// Solo los punteros no nulos se aplican.
type UpdatePackage struct {
	Name        *string
	Description *string
	Price       *int
}
