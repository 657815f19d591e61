package repository

import (
	"context"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
)

// CategoryWithCount categoria com a contagem de produtos vinculados.
type CategoryWithCount struct {
	entity.Category
	ProductCount int
}

// CategoryRepository porta de persistência de categorias.
// Métodos de leitura retornam (nil, nil) quando o registro não existe
// ou está soft-deleted.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	ListWithProductCount(ctx context.Context) ([]CategoryWithCount, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, id string) (bool, error)
	// HasActiveProducts indica se há produtos ativos na categoria.
	HasActiveProducts(ctx context.Context, categoryID string) (bool, error)
}
