package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MoveTypeSummary soma e contagem de movimentações de um tipo.
type MoveTypeSummary struct {
	Value decimal.Decimal
	Count int64
}

// MovesGraphPoint valor total de saídas em um dia (bucket diário).
type MovesGraphPoint struct {
	Date       string // YYYY-MM-DD
	TotalValue decimal.Decimal
}

// AnalyticsRepository consultas read-only do dashboard sobre produtos e
// movimentações. Sem efeitos colaterais; nenhuma exigência de atomicidade
// além da consistência padrão de leitura.
type AnalyticsRepository interface {
	// GetInventoryValue soma quantity * unit_price dos produtos ativos.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)
	// GetMovesSummary agrupa soma de valor (quantity * unit_price) e contagem
	// por tipo no intervalo opcional.
	GetMovesSummary(ctx context.Context, from, to *time.Time) (map[string]MoveTypeSummary, error)
	// GetMovesGraph série diária do valor de saídas no intervalo opcional.
	GetMovesGraph(ctx context.Context, from, to *time.Time) ([]MovesGraphPoint, error)
	// GetLowStockProducts produtos ativos com quantity <= minimum_quantity * 1.1.
	GetLowStockProducts(ctx context.Context) ([]ProductWithCategory, error)
	// GetStagnantProducts produtos ativos sem nenhuma saída no intervalo.
	GetStagnantProducts(ctx context.Context, from, to *time.Time) ([]ProductWithCategory, error)
}
