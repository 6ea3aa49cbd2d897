package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/application/usecase"
	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// addPackageMutation crea un paquete. La sintaxis de la fecha se valida
// antes que cualquier otra cosa, incluso antes de la autenticación; el caso
// de uso aplica después la regla estricta de calendario y de no-pasado.
func (r *Resolver) addPackageMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Crea un paquete para el usuario",
		Args: gql.FieldConfigArgument{
			"name": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Nombre del paquete, no puede quedar vacío",
			},
			"description": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Descripción del paquete",
			},
			"price": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.Int),
				Description: "Precio del paquete",
			},
			"expiresAt": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "Fecha de expiración YYYY-MM-DD",
			},
			"userId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del usuario dueño",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			expiresAt := stringArg(p.Args, "expiresAt")
			if !r.isDate(expiresAt) {
				return dto.Fail(msgInvalidDate), nil
			}
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			if !principal.IsUser() {
				return dto.Fail(msgUnauthorized), nil
			}
			price, _ := intArg(p.Args, "price")
			pkg, err := r.packages.Create(p.Context, usecase.CreatePackageInput{
				Name:        stringArg(p.Args, "name"),
				Description: stringArg(p.Args, "description"),
				Price:       price,
				ExpiresAt:   expiresAt,
				UserID:      stringArg(p.Args, "userId"),
			})
			if err != nil {
				return failFrom(err, "", ""), nil
			}
			return dto.OK("Package created successfully", dto.OnePackage(pkg)), nil
		},
	}
}

// updatePackageMutation actualiza solo los campos provistos y devuelve el
// documento ya actualizado. Solo el dueño del paquete puede modificarlo.
func (r *Resolver) updatePackageMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Actualiza un paquete del usuario",
		Args: gql.FieldConfigArgument{
			"packageId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del paquete a actualizar",
			},
			"name": &gql.ArgumentConfig{
				Type:        gql.String,
				Description: "Nuevo nombre del paquete",
			},
			"description": &gql.ArgumentConfig{
				Type:        gql.String,
				Description: "Nueva descripción del paquete",
			},
			"price": &gql.ArgumentConfig{
				Type:        gql.Int,
				Description: "Nuevo precio del paquete",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			if !principal.IsUser() {
				return dto.Fail(msgUnauthorized), nil
			}
			var fields entity.UpdatePackage
			if v, ok := p.Args["name"].(string); ok {
				fields.Name = &v
			}
			if v, ok := p.Args["description"].(string); ok {
				fields.Description = &v
			}
			if v, ok := intArg(p.Args, "price"); ok {
				fields.Price = &v
			}
			pkg, err := r.packages.Update(p.Context, principal.ID, stringArg(p.Args, "packageId"), fields)
			if err != nil {
				return failFrom(err, "Package not found", ""), nil
			}
			return dto.OK("Package updated successfully", dto.OnePackage(pkg)), nil
		},
	}
}

// deletePackageMutation elimina un paquete del dueño y responde con payload
// vacío.
func (r *Resolver) deletePackageMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Elimina un paquete del usuario",
		Args: gql.FieldConfigArgument{
			"packageId": &gql.ArgumentConfig{
				Type:        gql.NewNonNull(gql.String),
				Description: "ID del paquete a eliminar",
			},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			principal := entity.PrincipalFromContext(p.Context)
			if !isAuthenticated(principal) {
				return dto.Fail(msgUserNotLoggedIn), nil
			}
			if !principal.IsUser() {
				return dto.Fail(msgUnauthorized), nil
			}
			if err := r.packages.Delete(p.Context, principal.ID, stringArg(p.Args, "packageId")); err != nil {
				return failFrom(err, "Package not found", ""), nil
			}
			return dto.OK("Package deleted successfully", dto.Empty()), nil
		},
	}
}
