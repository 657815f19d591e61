package repository

import (
	"context"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
)

// MoveWithProduct movimentação com o nome do produto (join de leitura).
type MoveWithProduct struct {
	entity.Move
	ProductName *string
}

// MoveFilter filtros de listagem de movimentações.
type MoveFilter struct {
	ProductID string // vazio = todas
	Offset    int
	Limit     int
}

// MoveRepository porta de persistência da movimentação (append-only).
type MoveRepository interface {
	// Create persiste a movimentação; gera ID e CreatedAt quando vazios.
	Create(ctx context.Context, move *entity.Move) error
	// List retorna movimentações mais recentes primeiro.
	List(ctx context.Context, filter MoveFilter) ([]MoveWithProduct, error)
}
