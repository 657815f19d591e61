package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
)

// ProductWithCategory produto com o nome da categoria (join de leitura).
type ProductWithCategory struct {
	entity.Product
	CategoryName *string
}

// ProductRepository porta de persistência de produtos.
// Métodos de leitura retornam (nil, nil) quando o registro não existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID retorna o produto ativo (deleted_at IS NULL) com nome da categoria.
	GetByID(ctx context.Context, id string) (*ProductWithCategory, error)
	// Get retorna o produto sem filtrar soft delete (usado por atualizações).
	Get(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto (SELECT ... FOR UPDATE).
	// Não filtra por soft delete: movimentações contra produtos excluídos
	// seguem o comportamento observado da aplicação original.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, name string, offset, limit int) ([]ProductWithCategory, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity grava a nova quantidade e o updated_at. Usado apenas
	// dentro da transação de movimentação.
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedAt time.Time) error
	SoftDelete(ctx context.Context, id string) (bool, error)
}
