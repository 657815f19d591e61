package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/auth"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// AuthHandler trata as rotas de autenticação.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Logout godoc
// @Summary      Logout (invalida o token atual)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), GetToken(c)); err != nil {
		return err
	}
	return success(c, fiber.StatusOK, true)
}

// Me godoc
// @Summary      Usuário autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, dto.ToUserResponse(GetUser(c)))
}
