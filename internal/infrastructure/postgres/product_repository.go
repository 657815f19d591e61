package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação de ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, unit_price, unit_type, quantity, minimum_quantity, maximum_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.UnitPrice, p.UnitType,
		p.Quantity, p.MinimumQuantity, p.MaximumQuantity, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto ativo com o nome da categoria.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.category_id, c.name, p.unit_price, p.unit_type,
		       p.quantity, p.minimum_quantity, p.maximum_quantity,
		       p.deleted_at, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 AND p.deleted_at IS NULL`
	var row repository.ProductWithCategory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.CategoryID, &row.CategoryName, &row.UnitPrice, &row.UnitType,
		&row.Quantity, &row.MinimumQuantity, &row.MaximumQuantity,
		&row.DeletedAt, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &row, nil
}

// Get obtém o produto sem filtrar soft delete (atualizações).
func (r *ProductRepo) Get(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category_id, unit_price, unit_type, quantity,
		       minimum_quantity, maximum_quantity, deleted_at, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanProduct(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtém o produto e bloqueia a linha (SELECT ... FOR UPDATE).
// Não filtra soft delete: comportamento herdado da aplicação original.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category_id, unit_price, unit_type, quantity,
		       minimum_quantity, maximum_quantity, deleted_at, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	return r.scanProduct(r.q.QueryRow(ctx, query, id))
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.UnitPrice, &p.UnitType, &p.Quantity,
		&p.MinimumQuantity, &p.MaximumQuantity, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista produtos ativos com filtro opcional por nome (ILIKE) e paginação.
func (r *ProductRepo) List(ctx context.Context, name string, offset, limit int) ([]repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.category_id, c.name, p.unit_price, p.unit_type,
		       p.quantity, p.minimum_quantity, p.maximum_quantity,
		       p.deleted_at, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted_at IS NULL`
	args := []any{}
	pos := 1
	if name != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", pos)
		args = append(args, "%"+name+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductWithCategory
	for rows.Next() {
		var row repository.ProductWithCategory
		if err := rows.Scan(
			&row.ID, &row.Name, &row.CategoryID, &row.CategoryName, &row.UnitPrice, &row.UnitType,
			&row.Quantity, &row.MinimumQuantity, &row.MaximumQuantity,
			&row.DeletedAt, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update grava os campos mutáveis do produto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, unit_price = $4, unit_type = $5,
		    quantity = $6, minimum_quantity = $7, maximum_quantity = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.UnitPrice, p.UnitType,
		p.Quantity, p.MinimumQuantity, p.MaximumQuantity, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity grava a nova quantidade dentro da transação de movimentação.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// SoftDelete marca o produto como excluído. Retorna false se não existe.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE products SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
