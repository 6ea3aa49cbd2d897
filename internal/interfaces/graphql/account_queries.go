package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// userQuery devuelve el perfil del usuario autenticado. El id sale siempre
// del principal del contexto, nunca de un argumento.
func (r *Resolver) userQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Perfil de la cuenta user autenticada",
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			account, err := r.users.Profile(p.Context, principal.ID)
			if err != nil {
				return failFrom(err, "User account not found", ""), nil
			}
			return dto.OK("User account fetched successfully", dto.OneUser(account)), nil
		},
	}
}

// adminProfileQuery devuelve el perfil del admin autenticado. Se monta dos
// veces en el root (admin y adminProfile) por compatibilidad.
func (r *Resolver) adminProfileQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Perfil de la cuenta admin autenticada",
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgAdminNotLoggedIn), nil
			}
			if !principal.IsAdmin() {
				return dto.Fail(msgUnauthorized), nil
			}
			account, err := r.admins.Profile(p.Context, principal.ID)
			if err != nil {
				return failFrom(err, "Admin account not found", ""), nil
			}
			return dto.OK("Admin account fetched successfully", dto.OneAdmin(account)), nil
		},
	}
}

// adminUsersQuery lista todos los usuarios. Solo admins; una lista vacía se
// reporta como fallo de negocio.
func (r *Resolver) adminUsersQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Todos los usuarios registrados (solo admin)",
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgAdminNotLoggedIn), nil
			}
			if !principal.IsAdmin() {
				return dto.Fail(msgUnauthorized), nil
			}
			accounts, err := r.admins.ListUsers(p.Context)
			if err != nil {
				return failFrom(err, "", "No users found"), nil
			}
			return dto.OK("Users fetched successfully", dto.ManyUsers(accounts)), nil
		},
	}
}

// adminUserQuery devuelve un usuario por id. Solo admins.
func (r *Resolver) adminUserQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Un usuario por id (solo admin)",
		Args: gql.FieldConfigArgument{
			"userId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del usuario a consultar",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgAdminNotLoggedIn), nil
			}
			if !principal.IsAdmin() {
				return dto.Fail(msgUnauthorized), nil
			}
			account, err := r.admins.GetUser(p.Context, stringArg(p.Args, "userId"))
			if err != nil {
				return failFrom(err, "User not found", ""), nil
			}
			return dto.OK("User fetched successfully", dto.OneUser(account)), nil
		},
	}
}
