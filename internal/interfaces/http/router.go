package http

import (
	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/packages-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema    gql.Schema
	JWTSecret string
	Users     repository.UserRepository
	Admins    repository.AdminRepository
	GraphiQL  bool // solo en development
}

// graphqlRequest cuerpo estándar de una petición GraphQL por POST.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Router registra las rutas de la API: el endpoint GraphQL (con el
// middleware JWT por delante), el health check y el 404 por defecto.
func Router(app *fiber.App, deps RouterDeps) {
	graphqlGroup := app.Group("/graphql", AuthMiddleware(deps.JWTSecret, deps.Users, deps.Admins))
	graphqlGroup.Post("/", handleGraphQL(deps.Schema))
	if deps.GraphiQL {
		graphqlGroup.Get("/", handleGraphiQL)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "API is live and healthy in sandbox mode",
		})
	})

	// cualquier otra ruta
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Resource not found",
		})
	})
}

// handleGraphQL ejecuta la operación contra el schema. El contexto de
// usuario ya trae el Principal si el middleware validó un token.
func handleGraphQL(schema gql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "Must provide query string."}},
			})
		}
		result := gql.Do(gql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.UserContext(),
		})
		return c.JSON(result)
	}
}

// handleGraphiQL sirve el explorador GraphiQL. Solo se monta en development.
func handleGraphiQL(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(graphiqlHTML)
}

const graphiqlHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>GraphiQL</title>
  <style>body { margin: 0; } #graphiql { height: 100vh; }</style>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body>
  <div id="graphiql">Loading...</div>
  <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
  <script>
    const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
    ReactDOM.createRoot(document.getElementById('graphiql')).render(
      React.createElement(GraphiQL, { fetcher: fetcher, headerEditorEnabled: true })
    );
  </script>
</body>
</html>`
