package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

// MoveRepo implementação de MoveRepository sobre PostgreSQL
// (usável com pool ou tx). A tabela moves é append-only: não há UPDATE
// nem DELETE em lugar nenhum.
type MoveRepo struct {
	q Querier
}

// NewMoveRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

// Create persiste uma movimentação; gera ID e CreatedAt quando vazios.
func (r *MoveRepo) Create(ctx context.Context, m *entity.Move) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO moves (id, product_id, user_id, type, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.UserID, m.Type, m.Quantity, m.UnitPrice, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// List lista movimentações com o nome do produto, mais recentes primeiro.
func (r *MoveRepo) List(ctx context.Context, filter repository.MoveFilter) ([]repository.MoveWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, p.name, m.user_id, m.type, m.quantity, m.unit_price, m.created_at
		FROM moves m
		LEFT JOIN products p ON p.id = m.product_id`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" WHERE m.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var list []repository.MoveWithProduct
	for rows.Next() {
		var row repository.MoveWithProduct
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.ProductName, &row.UserID,
			&row.Type, &row.Quantity, &row.UnitPrice, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
