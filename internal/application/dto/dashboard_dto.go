package dto

import "github.com/shopspring/decimal"

// InventoryValueResponse valor total do estoque (Σ quantity × unitPrice dos
// produtos ativos), em centavos.
type InventoryValueResponse struct {
	TotalValue decimal.Decimal `json:"totalValue"`
}

// MoveTypeSummaryDTO soma de valor e contagem de um tipo de movimentação.
type MoveTypeSummaryDTO struct {
	Value decimal.Decimal `json:"value"`
	Count int64           `json:"count"`
}

// MovesSummaryResponse resumo de movimentações agrupado por tipo.
type MovesSummaryResponse struct {
	In  MoveTypeSummaryDTO `json:"in"`
	Out MoveTypeSummaryDTO `json:"out"`
}

// MovesGraphItem valor total de saídas em um dia.
type MovesGraphItem struct {
	Date       string          `json:"date"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
