package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// packageQuery devuelve un paquete por id. Requiere autenticación pero no
// distingue rol.
func (r *Resolver) packageQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Un paquete por id",
		Args: gql.FieldConfigArgument{
			"packageId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del paquete a consultar",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			pkg, err := r.packages.GetOne(p.Context, stringArg(p.Args, "packageId"))
			if err != nil {
				return failFrom(err, "Package not found", ""), nil
			}
			return dto.OK("Package fetched successfully", dto.OnePackage(pkg)), nil
		},
	}
}

// userPackagesQuery lista los paquetes de un usuario. Rol user, y el userId
// pedido tiene que ser el del propio principal.
func (r *Resolver) userPackagesQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Paquetes del usuario autenticado",
		Args: gql.FieldConfigArgument{
			"userId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del usuario dueño",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			userID := stringArg(p.Args, "userId")
			if !principal.IsUser() || !principal.Owns(userID) {
				return dto.Fail(msgUnauthorized), nil
			}
			pkgs, err := r.packages.ListForUser(p.Context, userID)
			if err != nil {
				return failFrom(err, "", "No packages found"), nil
			}
			return dto.OK("Packages fetched successfully", dto.ManyPackages(pkgs)), nil
		},
	}
}

// adminPackagesQuery lista todos los paquetes del sistema. Solo admins.
func (r *Resolver) adminPackagesQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Todos los paquetes (solo admin)",
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgAdminNotLoggedIn), nil
			}
			if !principal.IsAdmin() {
				return dto.Fail(msgUnauthorized), nil
			}
			pkgs, err := r.packages.ListAll(p.Context)
			if err != nil {
				return failFrom(err, "", "No packages found"), nil
			}
			return dto.OK("Packages fetched successfully", dto.ManyPackages(pkgs)), nil
		},
	}
}

// userPackageFilterQuery filtra los paquetes del usuario por rango de fecha
// de expiración, inclusivo en ambos extremos. El binding valida la sintaxis
// de las fechas; el caso de uso vuelve a verificar que no vengan en blanco.
func (r *Resolver) userPackageFilterQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Paquetes del usuario filtrados por fecha de expiración",
		Args: gql.FieldConfigArgument{
			"startDate": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Fecha inicial YYYY-MM-DD, inclusiva",
			},
			"endDate": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Fecha final YYYY-MM-DD, inclusiva",
			},
			"userId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del usuario dueño",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			startDate := stringArg(p.Args, "startDate")
			endDate := stringArg(p.Args, "endDate")
			if !r.isDate(startDate) || !r.isDate(endDate) {
				return dto.Fail(msgInvalidDate), nil
			}
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			userID := stringArg(p.Args, "userId")
			if !principal.IsUser() || !principal.Owns(userID) {
				return dto.Fail(msgUnauthorized), nil
			}
			pkgs, err := r.packages.FilterForUser(p.Context, startDate, endDate, userID)
			if err != nil {
				return failFrom(err, "", "No packages found"), nil
			}
			return dto.OK("Packages fetched successfully", dto.ManyPackages(pkgs)), nil
		},
	}
}

// adminPackageFilterQuery filtra todos los paquetes por rango de expiración
// y adjunta la proyección del dueño. Solo admins.
func (r *Resolver) adminPackageFilterQuery() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Todos los paquetes filtrados por fecha de expiración (solo admin)",
		Args: gql.FieldConfigArgument{
			"startDate": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Fecha inicial YYYY-MM-DD, inclusiva",
			},
			"endDate": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Fecha final YYYY-MM-DD, inclusiva",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			startDate := stringArg(p.Args, "startDate")
			endDate := stringArg(p.Args, "endDate")
			if !r.isDate(startDate) || !r.isDate(endDate) {
				return dto.Fail(msgInvalidDate), nil
			}
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgAdminNotLoggedIn), nil
			}
			if !principal.IsAdmin() {
				return dto.Fail(msgUnauthorized), nil
			}
			pkgs, err := r.packages.FilterForAdmin(p.Context, startDate, endDate)
			if err != nil {
				return failFrom(err, "", "No packages found"), nil
			}
			return dto.OK("Packages fetched successfully", dto.ManyPackages(pkgs)), nil
		},
	}
}
