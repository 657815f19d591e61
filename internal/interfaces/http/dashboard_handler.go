package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/analytics"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// DashboardHandler trata as rotas de agregados do dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// InventoryValue godoc
// @Summary      Valor total do estoque
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  Envelope{data=dto.InventoryValueResponse}
// @Router       /api/dashboard/inventory-value [get]
func (h *DashboardHandler) InventoryValue(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryValue(c.Context())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// MovesSummary godoc
// @Summary      Resumo de movimentações por tipo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  Envelope{data=dto.MovesSummaryResponse}
// @Router       /api/dashboard/moves-summary [get]
func (h *DashboardHandler) MovesSummary(c *fiber.Ctx) error {
	q, err := parseDateRange(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetMovesSummary(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// MovesGraph godoc
// @Summary      Série diária do valor de saídas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  Envelope{data=[]dto.MovesGraphItem}
// @Router       /api/dashboard/moves-graph [get]
func (h *DashboardHandler) MovesGraph(c *fiber.Ctx) error {
	q, err := parseDateRange(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetMovesGraph(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// LowStock godoc
// @Summary      Produtos com estoque baixo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  Envelope{data=[]dto.ProductResponse}
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockProducts(c.Context())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

// LowStockReport godoc
// @Summary      Relatório PDF de estoque baixo
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/low-stock/report [get]
func (h *DashboardHandler) LowStockReport(c *fiber.Ctx) error {
	report, err := h.uc.GetLowStockReport(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque-baixo.pdf"`)
	return c.Status(fiber.StatusOK).Send(report)
}

// StagnantProducts godoc
// @Summary      Produtos sem saída no intervalo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Data final (YYYY-MM-DD)"
// @Success      200  {object}  Envelope{data=[]dto.ProductResponse}
// @Router       /api/dashboard/stagnant-products [get]
func (h *DashboardHandler) StagnantProducts(c *fiber.Ctx) error {
	q, err := parseDateRange(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetStagnantProducts(c.Context(), q)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, out)
}

func parseDateRange(c *fiber.Ctx) (dto.DateRangeQuery, error) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return q, apperr.New(fiber.StatusBadRequest, "Parâmetros de consulta inválidos")
	}
	if err := validator.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
