package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

// Locals keys preenchidas pelo AuthMiddleware.
const (
	LocalUser  = "user"
	LocalToken = "token"
)

// AuthMiddleware valida o Bearer token contra o banco e coloca o usuário
// autenticado em c.Locals. Tokens de usuários desativados não resolvem.
func AuthMiddleware(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.New(fiber.StatusUnauthorized, "Não autorizado")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperr.New(fiber.StatusUnauthorized, "Não autorizado")
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return apperr.New(fiber.StatusUnauthorized, "Não autorizado")
		}

		user, err := userRepo.GetByToken(c.Context(), token)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.New(fiber.StatusUnauthorized, "Não autorizado")
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// GetUser devolve o usuário autenticado (depois do middleware de auth).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetToken devolve o token da sessão atual.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
