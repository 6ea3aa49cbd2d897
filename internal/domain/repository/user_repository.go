package repository

import (
	"context"

	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay documento.
type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Update reemplaza los campos mutables del usuario. Ninguna mutación del
	// API lo ejercita hoy; existe como parte del contrato del store.
	Update(ctx context.Context, user *entity.User) error
	// ExistsByID verifica que el id siga existiendo (re-validación del token
	// en la capa de transporte).
	ExistsByID(ctx context.Context, id string) (bool, error)
}
