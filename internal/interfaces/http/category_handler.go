package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/usecase"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// CategoryHandler trata as rotas de categorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Dados da categoria"
// @Success      201   {object}  Envelope{data=dto.CategoryResponse}
// @Failure      400   {object}  Envelope
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Listar categorias
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        includeProductCount  query  bool  false  "Incluir contagem de produtos"
// @Success      200  {object}  Envelope{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	includeProductCount := c.QueryBool("includeProductCount", false)
	out, err := h.uc.List(c.Context(), includeProductCount)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obter categoria por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da categoria"
// @Success      200  {object}  Envelope{data=dto.CategoryResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Renomear categoria
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da categoria"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Dados a atualizar"
// @Success      200   {object}  Envelope{data=dto.CategoryResponse}
// @Failure      404   {object}  Envelope
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Excluir categoria (falha com produtos ativos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da categoria"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, fiber.StatusOK, true)
}
