package graphql

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/packages-api/internal/application/usecase"
)

// Resolver agrupa los casos de uso detrás de los campos del schema. Cada
// resolver aplica el mismo orden de verificaciones: validación de
// argumentos, autenticación, rol, ownership y recién entonces el caso de
// uso. Los fallos de negocio nunca usan el canal de errores de GraphQL;
// siempre se devuelve el envelope con status=false.
type Resolver struct {
	users    *usecase.UserUseCase
	admins   *usecase.AdminUseCase
	packages *usecase.PackageUseCase
	validate *validator.Validate
}

func NewResolver(users *usecase.UserUseCase, admins *usecase.AdminUseCase, packages *usecase.PackageUseCase) *Resolver {
	return &Resolver{
		users:    users,
		admins:   admins,
		packages: packages,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// isDate valida el formato YYYY-MM-DD de un argumento de fecha.
func (r *Resolver) isDate(s string) bool {
	return r.validate.Var(s, "datetime=2006-01-02") == nil
}

// stringArg extrae un argumento string; los argumentos opcionales ausentes
// devuelven cadena vacía.
func stringArg(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

// intArg extrae un argumento Int e indica si estaba presente.
func intArg(args map[string]interface{}, name string) (int, bool) {
	v, ok := args[name].(int)
	return v, ok
}
