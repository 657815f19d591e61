package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/usecase"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// ProductHandler trata as rotas de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar produtos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        name    query  string  false  "Filtro por nome (parcial, case-insensitive)"
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        limit   query  int     false  "Limite"  default(10)
// @Success      200  {object}  Envelope{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ListProductsQuery
	if err := c.QueryParser(&q); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Parâmetros de consulta inválidos")
	}
	if err := validator.Struct(q); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Atualizar produto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Dados a atualizar"
// @Success      200   {object}  Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary      Excluir produto (soft delete)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return success(c, fiber.StatusOK, true)
}
