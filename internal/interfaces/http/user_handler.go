package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/usecase"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// UserHandler trata as rotas de usuários. Criação, atualização completa e
// exclusão exigem admin; o próprio usuário pode alterar nome e avatar.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Criar usuário (admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Dados do usuário"
// @Success      201   {object}  Envelope{data=dto.UserResponse}
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	if !GetUser(c).IsAdmin {
		return apperr.New(fiber.StatusForbidden, "Acesso negado")
	}
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, out)
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        offset  query  int  false  "Offset"  default(0)
// @Param        limit   query  int  false  "Limite"  default(10)
// @Success      200  {object}  Envelope{data=[]dto.UserResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Parâmetros de consulta inválidos")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obter usuário por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Atualizar usuário (admin: qualquer campo; próprio: nome e avatar)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.UpdateUserRequest  true  "Dados a atualizar"
// @Success      200   {object}  Envelope{data=dto.UserResponse}
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller := GetUser(c)
	id := c.Params("id")

	if caller.IsAdmin {
		var in dto.UpdateUserRequest
		if err := c.BodyParser(&in); err != nil {
			return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validator.Struct(in); err != nil {
			return err
		}
		out, err := h.uc.Update(c.Context(), id, in)
		if err != nil {
			return err
		}
		return success(c, fiber.StatusOK, out)
	}

	if caller.ID != id {
		return apperr.New(fiber.StatusForbidden, "Acesso negado")
	}

	// Não admin só altera o próprio nome e avatar.
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	out, err := h.uc.UpdateProfile(c.Context(), id, in)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Desativar usuário (admin, soft delete)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if !GetUser(c).IsAdmin {
		return apperr.New(fiber.StatusForbidden, "Acesso negado")
	}
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, fiber.StatusOK, true)
}
