package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/inventory"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// MoveHandler trata as rotas de movimentações de estoque.
type MoveHandler struct {
	uc *inventory.MoveUseCase
}

// NewMoveHandler constrói o handler.
func NewMoveHandler(uc *inventory.MoveUseCase) *MoveHandler {
	return &MoveHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimentação de estoque
// @Description  Registra entrada ou saída e atualiza o saldo do produto na
// @Description  mesma transação. O preço persistido é o preço vigente do
// @Description  produto; o unitPrice do corpo é ignorado.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveRequest  true  "Dados da movimentação"
// @Success      201   {object}  Envelope{data=dto.MoveResponse}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	move, err := h.uc.RecordMove(c.Context(), inventory.MoveInput{
		ProductID: in.ProductID,
		UserID:    GetUser(c).ID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	})
	if err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, dto.ToMoveResponse(move))
}

// List godoc
// @Summary      Listar movimentações (mais recentes primeiro)
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtro por produto"
// @Param        offset     query  int     false  "Offset"  default(0)
// @Param        limit      query  int     false  "Limite"  default(10)
// @Success      200  {object}  Envelope{data=[]dto.MoveListItem}
// @Router       /api/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	var q dto.ListMovesQuery
	if err := c.QueryParser(&q); err != nil {
		return apperr.New(fiber.StatusBadRequest, "Parâmetros de consulta inválidos")
	}
	if err := validator.Struct(q); err != nil {
		return err
	}
	out, err := h.uc.ListMoves(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}
