package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/packages-api/internal/domain/entity"
	"github.com/jhoicas/packages-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/packages-api/pkg/jwt"
)

// AuthMiddleware valida el Bearer Token JWT y adjunta el Principal al
// contexto de usuario de Fiber. Las credenciales no son obligatorias: sin
// header Authorization la petición sigue como anónima y cada resolver decide
// si la rechaza. Un token presente pero inválido sí corta en el transporte,
// igual que un token cuyo id ya no existe en su colección (cuenta borrada
// después de emitido el token).
func AuthMiddleware(secret string, users repository.UserRepository, admins repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		claims, err := pkgjwt.Parse(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			return unauthorized(c)
		}

		// re-chequeo de existencia: el token puede sobrevivir a la cuenta
		role := entity.RoleUser
		var exists bool
		if claims.UserType == pkgjwt.TypeAdmin {
			role = entity.RoleAdmin
			exists, err = admins.ExistsByID(c.UserContext(), claims.AccountID())
		} else {
			exists, err = users.ExistsByID(c.UserContext(), claims.AccountID())
		}
		if err != nil || !exists {
			return unauthorized(c)
		}

		principal := &entity.Principal{
			ID:     claims.AccountID(),
			Email:  claims.Email,
			Name:   claims.Name,
			Status: claims.Status,
			Role:   role,
		}
		c.SetUserContext(entity.WithPrincipal(c.UserContext(), principal))
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":     false,
		"statusCode": 401,
		"message":    "Unauthorized",
		"data":       fiber.Map{},
	})
}
