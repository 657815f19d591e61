// Package analytics contém o agregador read-only do dashboard: somas,
// agrupamentos e séries temporais sobre produtos e movimentações. Projeções
// puras, sem efeitos colaterais.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// LowStockReportGenerator renderiza o relatório de estoque baixo.
type LowStockReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, products []repository.ProductWithCategory, generatedAt time.Time) ([]byte, error)
}

// DashboardUseCase consultas agregadas do dashboard. Delega tudo ao
// AnalyticsRepository; não toca nas tabelas diretamente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	reportGen     LowStockReportGenerator
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, reportGen LowStockReportGenerator) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, reportGen: reportGen}
}

// GetInventoryValue valor total do estoque ativo em centavos.
func (uc *DashboardUseCase) GetInventoryValue(ctx context.Context) (*dto.InventoryValueResponse, error) {
	total, err := uc.analyticsRepo.GetInventoryValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: valor do estoque: %w", err)
	}
	return &dto.InventoryValueResponse{TotalValue: total}, nil
}

// GetMovesSummary resumo por tipo no intervalo opcional. Tipos sem
// movimentações aparecem zerados.
func (uc *DashboardUseCase) GetMovesSummary(ctx context.Context, q dto.DateRangeQuery) (*dto.MovesSummaryResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	byType, err := uc.analyticsRepo.GetMovesSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumo de movimentações: %w", err)
	}

	out := &dto.MovesSummaryResponse{
		In:  dto.MoveTypeSummaryDTO{Value: decimal.Zero},
		Out: dto.MoveTypeSummaryDTO{Value: decimal.Zero},
	}
	if s, ok := byType[entity.MoveTypeIn]; ok {
		out.In = dto.MoveTypeSummaryDTO{Value: s.Value, Count: s.Count}
	}
	if s, ok := byType[entity.MoveTypeOut]; ok {
		out.Out = dto.MoveTypeSummaryDTO{Value: s.Value, Count: s.Count}
	}
	return out, nil
}

// GetMovesGraph série diária do valor de saídas, ordem cronológica.
func (uc *DashboardUseCase) GetMovesGraph(ctx context.Context, q dto.DateRangeQuery) ([]dto.MovesGraphItem, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	points, err := uc.analyticsRepo.GetMovesGraph(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard: gráfico de saídas: %w", err)
	}
	items := make([]dto.MovesGraphItem, 0, len(points))
	for _, p := range points {
		items = append(items, dto.MovesGraphItem{Date: p.Date, TotalValue: p.TotalValue})
	}
	return items, nil
}

// GetLowStockProducts produtos ativos com quantity <= minimumQuantity * 1.1,
// ordenados pela quantidade.
func (uc *DashboardUseCase) GetLowStockProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	rows, err := uc.analyticsRepo.GetLowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", err)
	}
	return dto.ToProductResponses(rows), nil
}

// GetLowStockReport gera o relatório de estoque baixo em PDF.
func (uc *DashboardUseCase) GetLowStockReport(ctx context.Context) ([]byte, error) {
	rows, err := uc.analyticsRepo.GetLowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", err)
	}
	report, err := uc.reportGen.GenerateLowStockReport(ctx, rows, time.Now())
	if err != nil {
		return nil, fmt.Errorf("dashboard: relatório de estoque baixo: %w", err)
	}
	return report, nil
}

// GetStagnantProducts produtos ativos sem nenhuma saída no intervalo.
func (uc *DashboardUseCase) GetStagnantProducts(ctx context.Context, q dto.DateRangeQuery) ([]dto.ProductResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetStagnantProducts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard: produtos parados: %w", err)
	}
	return dto.ToProductResponses(rows), nil
}

// parseRange converte as datas (YYYY-MM-DD) do intervalo: startDate abre o
// dia às 00:00:00 e endDate fecha às 23:59:59.999, no fuso local.
func parseRange(q dto.DateRangeQuery) (from, to *time.Time, err error) {
	if q.StartDate != "" {
		t, perr := time.ParseInLocation("2006-01-02", q.StartDate, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("dashboard: startDate: %w", perr)
		}
		from = &t
	}
	if q.EndDate != "" {
		t, perr := time.ParseInLocation("2006-01-02", q.EndDate, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("dashboard: endDate: %w", perr)
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		to = &end
	}
	return from, to, nil
}
