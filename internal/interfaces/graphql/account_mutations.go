package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/application/dto"
)

// accountArgs argumentos compartidos de los registros de cuenta.
func registerArgs() gql.FieldConfigArgument {
	return gql.FieldConfigArgument{
		"name": &gql.ArgumentConfig{
			Type:        gql.NewNonNull(gql.String),
			Description: "Nombre completo, no puede quedar vacío",
		},
		"email": &gql.ArgumentConfig{
			Type:        gql.NewNonNull(gql.String),
			Description: "Email, se normaliza a minúsculas",
		},
		"password": &gql.ArgumentConfig{
			Type:        gql.NewNonNull(gql.String),
			Description: "Password, se hashea automáticamente",
		},
	}
}

func loginArgs() gql.FieldConfigArgument {
	return gql.FieldConfigArgument{
		"email": &gql.ArgumentConfig{
			Type:        gql.NewNonNull(gql.String),
			Description: "Email de la cuenta",
		},
		"password": &gql.ArgumentConfig{
			Type:        gql.NewNonNull(gql.String),
			Description: "Password de la cuenta",
		},
	}
}

// registerUserMutation crea una cuenta user y devuelve el token emitido.
// Operación pública: no pasa por el gate de autenticación.
func (r *Resolver) registerUserMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Registra una cuenta user",
		Args:        registerArgs(),
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			password := stringArg(p.Args, "password")
			if r.validate.Var(password, "min=6") != nil {
				return dto.Fail(msgShortPassword), nil
			}
			account, err := r.users.Register(p.Context, stringArg(p.Args, "name"), stringArg(p.Args, "email"), password)
			if err != nil {
				return failFrom(err, "", ""), nil
			}
			return dto.OK("User account created successfully", dto.OneUser(account)), nil
		},
	}
}

// loginUserMutation autentica una cuenta user. Email desconocido y password
// incorrecto responden con el mismo mensaje.
func (r *Resolver) loginUserMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Autentica una cuenta user",
		Args:        loginArgs(),
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			account, err := r.users.Login(p.Context, stringArg(p.Args, "email"), stringArg(p.Args, "password"))
			if err != nil {
				return failFrom(err, "", ""), nil
			}
			return dto.OK("User account logged in successfully", dto.OneUser(account)), nil
		},
	}
}

// registerAdminMutation crea una cuenta admin. El email solo se verifica
// contra la colección de admins.
func (r *Resolver) registerAdminMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Registra una cuenta admin",
		Args:        registerArgs(),
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			password := stringArg(p.Args, "password")
			if r.validate.Var(password, "min=6") != nil {
				return dto.Fail(msgShortPassword), nil
			}
			account, err := r.admins.Register(p.Context, stringArg(p.Args, "name"), stringArg(p.Args, "email"), password)
			if err != nil {
				return failFrom(err, "", ""), nil
			}
			return dto.OK("Admin account created successfully", dto.OneAdmin(account)), nil
		},
	}
}

// loginAdminMutation autentica una cuenta admin.
func (r *Resolver) loginAdminMutation() *gql.Field {
	return &gql.Field{
		Type:        responseType,
		Description: "Autentica una cuenta admin",
		Args:        loginArgs(),
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			account, err := r.admins.Login(p.Context, stringArg(p.Args, "email"), stringArg(p.Args, "password"))
			if err != nil {
				return failFrom(err, "", ""), nil
			}
			return dto.OK("Admin account logged in successfully", dto.OneAdmin(account)), nil
		},
	}
}
