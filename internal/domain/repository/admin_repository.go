package repository

import (
	"context"

	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	Insert(ctx context.Context, admin *entity.Admin) (*entity.Admin, error)
	FindByID(ctx context.Context, id string) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}
