package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// CreateMoveRequest entrada para registrar uma movimentação.
// UnitPrice é aceito pelo contrato mas ignorado: o preço persistido é sempre
// o preço vigente do produto dentro da transação.
type CreateMoveRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid4"`
	Type      string          `json:"type" validate:"required,oneof=in out"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice *int64          `json:"unitPrice" validate:"omitempty,gte=0"`
}

// MoveResponse movimentação criada.
type MoveResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice int64           `json:"unitPrice"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MoveListItem item da listagem, com o nome do produto.
type MoveListItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName *string         `json:"productName"`
	UserID      string          `json:"userId"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   int64           `json:"unitPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListMovesQuery filtros de GET /moves.
type ListMovesQuery struct {
	ProductID string `query:"productId" validate:"omitempty,uuid4"`
	PageQuery
}

// ToMoveResponse converte a entidade para o DTO de resposta.
func ToMoveResponse(m *entity.Move) *MoveResponse {
	if m == nil {
		return nil
	}
	return &MoveResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		CreatedAt: m.CreatedAt,
	}
}

// ToMoveListItems converte o resultado do join para DTOs.
func ToMoveListItems(rows []repository.MoveWithProduct) []MoveListItem {
	items := make([]MoveListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, MoveListItem{
			ID:          r.ID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UserID:      r.UserID,
			Type:        r.Type,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			CreatedAt:   r.CreatedAt,
		})
	}
	return items
}
