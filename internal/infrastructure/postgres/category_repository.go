package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma nova categoria.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria ativa.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `
		SELECT id, name, deleted_at, created_at, updated_at
		FROM categories WHERE id = $1 AND deleted_at IS NULL`
	return r.scanCategory(r.q.QueryRow(ctx, query, id))
}

// GetByName obtém uma categoria ativa pelo nome exato.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	query := `
		SELECT id, name, deleted_at, created_at, updated_at
		FROM categories WHERE name = $1 AND deleted_at IS NULL
		LIMIT 1`
	return r.scanCategory(r.q.QueryRow(ctx, query, name))
}

func (r *CategoryRepo) scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List lista categorias ativas.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT id, name, deleted_at, created_at, updated_at
		FROM categories WHERE deleted_at IS NULL
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListWithProductCount lista categorias ativas com a contagem de produtos
// vinculados (inclui produtos soft-deleted, como na aplicação original).
func (r *CategoryRepo) ListWithProductCount(ctx context.Context) ([]repository.CategoryWithCount, error) {
	query := `
		SELECT c.id, c.name, c.created_at, count(p.id)::int
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY c.id, c.name, c.created_at
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories with count: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryWithCount
	for rows.Next() {
		var row repository.CategoryWithCount
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update grava nome e updated_at.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SoftDelete marca a categoria como excluída. Retorna false se não existe.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE categories SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// HasActiveProducts indica se há produtos ativos na categoria.
func (r *CategoryRepo) HasActiveProducts(ctx context.Context, categoryID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM products WHERE category_id = $1 AND deleted_at IS NULL
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("category has products: %w", err)
	}
	return exists, nil
}
