package entity

import "context"

// Role es el conjunto cerrado de roles de un principal autenticado.
type Role string

// Roles válidos.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal es la identidad autenticada derivada de un token válido,
// adjunta al contexto de la petición. No se persiste.
type Principal struct {
	ID     string
	Email  string
	Name   string
	Status string // vacío para admins
	Role   Role
}

// IsUser indica si el principal tiene rol user.
func (p *Principal) IsUser() bool { return p != nil && p.Role == RoleUser }

// IsAdmin indica si el principal tiene rol admin.
func (p *Principal) IsAdmin() bool { return p != nil && p.Role == RoleAdmin }

// Owns indica si el principal es dueño del recurso identificado por userID.
func (p *Principal) Owns(userID string) bool { return p != nil && p.ID == userID }

type principalKey struct{}

// WithPrincipal adjunta el principal al contexto de la petición.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext devuelve el principal del contexto, o nil si la
// petición no está autenticada.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
