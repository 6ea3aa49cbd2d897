package graphql

import (
	gql "github.com/graphql-go/graphql"
)

// NewSchema arma el schema completo del API sobre un Resolver ya cableado.
func NewSchema(r *Resolver) (gql.Schema, error) {
	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:        "RootQueryType",
		Description: "Queries del API de paquetes",
		Fields: gql.Fields{
			"user":               r.userQuery(),
			"admin":              r.adminProfileQuery(),
			"adminProfile":       r.adminProfileQuery(),
			"adminUsers":         r.adminUsersQuery(),
			"adminUser":          r.adminUserQuery(),
			"package":            r.packageQuery(),
			"packages":           r.userPackagesQuery(),
			"userPackageFilter":  r.userPackageFilterQuery(),
			"adminPackages":      r.adminPackagesQuery(),
			"adminPackageFilter": r.adminPackageFilterQuery(),
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name:        "Mutation",
		Description: "Mutations del API de paquetes",
		Fields: gql.Fields{
			"registerUser":  r.registerUserMutation(),
			"loginUser":     r.loginUserMutation(),
			"registerAdmin": r.registerAdminMutation(),
			"loginAdmin":    r.loginAdminMutation(),
			"addPackage":    r.addPackageMutation(),
			"updatePackage": r.updatePackageMutation(),
			"deletePackage": r.deletePackageMutation(),
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    rootQuery,
		Mutation: mutation,
	})
}
