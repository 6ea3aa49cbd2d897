package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/application/dto"
)

// accountFields devuelve un mapa fresco con los campos de una cuenta (user o
// admin). Cada tipo GraphQL necesita su propia instancia del mapa.
func accountFields() gql.Fields {
	return gql.Fields{
		"_id":       &gql.Field{Type: gql.ID, Description: "ID de la cuenta, generado por MongoDB"},
		"userId":    &gql.Field{Type: gql.ID, Description: "ID discriminado en el payload de token (cuentas user)"},
		"adminId":   &gql.Field{Type: gql.ID, Description: "ID discriminado en el payload de token (cuentas admin)"},
		"name":      &gql.Field{Type: gql.String, Description: "Nombre completo"},
		"email":     &gql.Field{Type: gql.String, Description: "Email, único por colección y en minúsculas"},
		"status":    &gql.Field{Type: gql.String, Description: "active | disabled (solo cuentas user)"},
		"userType":  &gql.Field{Type: gql.String, Description: "user | admin"},
		"token":     &gql.Field{Type: gql.String, Description: "Bearer token emitido en register y login"},
		"createdAt": &gql.Field{Type: gql.String},
		"updatedAt": &gql.Field{Type: gql.String},
	}
}

var userType = gql.NewObject(gql.ObjectConfig{
	Name:        "UserType",
	Description: "Cuenta de usuario, incluyendo el payload de token cuando aplica.",
	Fields:      accountFields(),
})

var adminType = gql.NewObject(gql.ObjectConfig{
	Name:        "AdminType",
	Description: "Cuenta de administrador, incluyendo el payload de token cuando aplica.",
	Fields:      accountFields(),
})

var packageType = gql.NewObject(gql.ObjectConfig{
	Name:        "PackageType",
	Description: "Paquete creado por un usuario.",
	Fields: gql.Fields{
		"_id":         &gql.Field{Type: gql.ID, Description: "ID del paquete, generado por MongoDB"},
		"name":        &gql.Field{Type: gql.String},
		"description": &gql.Field{Type: gql.String},
		"price":       &gql.Field{Type: gql.Int},
		"expiresAt":   &gql.Field{Type: gql.String, Description: "Fecha de expiración"},
		"userId":      &gql.Field{Type: gql.ID, Description: "ID del usuario dueño"},
		"user":        &gql.Field{Type: userType, Description: "Proyección del dueño (solo filtro con scope admin)"},
		"createdAt":   &gql.Field{Type: gql.String},
		"updatedAt":   &gql.Field{Type: gql.String},
	},
})

// Variantes del union Data. Cada variante expone una única clave; la
// selección es siempre por el tag Kind del payload, nunca por la forma.
var (
	oneUserType = gql.NewObject(gql.ObjectConfig{
		Name:   "User",
		Fields: gql.Fields{"user": &gql.Field{Type: userType}},
	})
	manyUsersType = gql.NewObject(gql.ObjectConfig{
		Name:   "Users",
		Fields: gql.Fields{"users": &gql.Field{Type: gql.NewList(userType)}},
	})
	oneAdminType = gql.NewObject(gql.ObjectConfig{
		Name:   "Admin",
		Fields: gql.Fields{"admin": &gql.Field{Type: adminType}},
	})
	manyAdminsType = gql.NewObject(gql.ObjectConfig{
		Name:   "Admins",
		Fields: gql.Fields{"admins": &gql.Field{Type: gql.NewList(adminType)}},
	})
	onePackageType = gql.NewObject(gql.ObjectConfig{
		Name:   "Package",
		Fields: gql.Fields{"package": &gql.Field{Type: packageType}},
	})
	manyPackagesType = gql.NewObject(gql.ObjectConfig{
		Name:   "Packages",
		Fields: gql.Fields{"packages": &gql.Field{Type: gql.NewList(packageType)}},
	})
	emptyType = gql.NewObject(gql.ObjectConfig{
		Name:        "Empty",
		Description: "Payload vacío: fallos y deletes.",
		Fields:      gql.Fields{"empty": &gql.Field{Type: gql.Boolean}},
	})
)

var dataUnion = gql.NewUnion(gql.UnionConfig{
	Name: "Data",
	Types: []*gql.Object{
		oneUserType, manyUsersType,
		oneAdminType, manyAdminsType,
		onePackageType, manyPackagesType,
		emptyType,
	},
	ResolveType: func(p gql.ResolveTypeParams) *gql.Object {
		var payload dto.Payload
		switch v := p.Value.(type) {
		case dto.Payload:
			payload = v
		case *dto.Payload:
			payload = *v
		default:
			return emptyType
		}
		switch payload.Kind {
		case dto.PayloadOneUser:
			return oneUserType
		case dto.PayloadManyUsers:
			return manyUsersType
		case dto.PayloadOneAdmin:
			return oneAdminType
		case dto.PayloadManyAdmins:
			return manyAdminsType
		case dto.PayloadOnePackage:
			return onePackageType
		case dto.PayloadManyPackages:
			return manyPackagesType
		default:
			return emptyType
		}
	},
})

// responseType es el envelope uniforme de todas las operaciones.
var responseType = gql.NewObject(gql.ObjectConfig{
	Name:        "Response",
	Description: "Envelope de respuesta de todas las operaciones del API.",
	Fields: gql.Fields{
		"status":     &gql.Field{Type: gql.Boolean, Description: "true en éxito, false en fallo"},
		"statusCode": &gql.Field{Type: gql.Int},
		"message":    &gql.Field{Type: gql.String},
		"data":       &gql.Field{Type: dataUnion},
	},
})
