package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only do dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInventoryValue soma quantity * unit_price dos produtos ativos.
func (r *AnalyticsRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(quantity * unit_price), 0)
		FROM products
		WHERE deleted_at IS NULL`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetInventoryValue: %w", err)
	}
	return total, nil
}

// GetMovesSummary soma de valor e contagem por tipo no intervalo opcional.
func (r *AnalyticsRepo) GetMovesSummary(ctx context.Context, from, to *time.Time) (map[string]repository.MoveTypeSummary, error) {
	query := `
		SELECT type, COALESCE(SUM(quantity * unit_price), 0), COUNT(*)
		FROM moves`
	conds, args := rangeFilter("created_at", from, to, 1)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY type"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMovesSummary: %w", err)
	}
	defer rows.Close()

	summary := make(map[string]repository.MoveTypeSummary, 2)
	for rows.Next() {
		var moveType string
		var s repository.MoveTypeSummary
		if err := rows.Scan(&moveType, &s.Value, &s.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetMovesSummary scan: %w", err)
		}
		summary[moveType] = s
	}
	return summary, rows.Err()
}

// GetMovesGraph série diária do valor de saídas, ordem cronológica.
func (r *AnalyticsRepo) GetMovesGraph(ctx context.Context, from, to *time.Time) ([]repository.MovesGraphPoint, error) {
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(quantity * unit_price), 0)
		FROM moves
		WHERE type = 'out'`
	conds, args := rangeFilter("created_at", from, to, 1)
	for _, cond := range conds {
		query += " AND " + cond
	}
	query += " GROUP BY day ORDER BY day"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMovesGraph: %w", err)
	}
	defer rows.Close()

	var points []repository.MovesGraphPoint
	for rows.Next() {
		var p repository.MovesGraphPoint
		if err := rows.Scan(&p.Date, &p.TotalValue); err != nil {
			return nil, fmt.Errorf("analytics.GetMovesGraph scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// GetLowStockProducts produtos ativos com quantity <= minimum_quantity * 1.1,
// ordenados pela quantidade.
func (r *AnalyticsRepo) GetLowStockProducts(ctx context.Context) ([]repository.ProductWithCategory, error) {
	const query = `
		SELECT p.id, p.name, p.category_id, c.name, p.unit_price, p.unit_type,
		       p.quantity, p.minimum_quantity, p.maximum_quantity,
		       p.deleted_at, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted_at IS NULL
		  AND p.quantity <= p.minimum_quantity * 1.1
		ORDER BY p.quantity`
	return r.queryProducts(ctx, query)
}

// GetStagnantProducts produtos ativos sem nenhuma saída no intervalo.
func (r *AnalyticsRepo) GetStagnantProducts(ctx context.Context, from, to *time.Time) ([]repository.ProductWithCategory, error) {
	sub := `SELECT product_id FROM moves WHERE type = 'out'`
	conds, args := rangeFilter("created_at", from, to, 1)
	for _, cond := range conds {
		sub += " AND " + cond
	}
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.category_id, c.name, p.unit_price, p.unit_type,
		       p.quantity, p.minimum_quantity, p.maximum_quantity,
		       p.deleted_at, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted_at IS NULL
		  AND p.id NOT IN (%s)
		ORDER BY p.quantity`, sub)
	return r.queryProducts(ctx, query, args...)
}

func (r *AnalyticsRepo) queryProducts(ctx context.Context, query string, args ...any) ([]repository.ProductWithCategory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics products: %w", err)
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
			return nil, fmt.Errorf("analytics scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// rangeFilter monta as condições do intervalo de datas, numerando os
// placeholders a partir de pos.
func rangeFilter(column string, from, to *time.Time, pos int) (conds []string, args []any) {
	if from != nil {
		conds = append(conds, fmt.Sprintf("%s >= $%d", column, pos))
		args = append(args, *from)
		pos++
	}
	if to != nil {
		conds = append(conds, fmt.Sprintf("%s <= $%d", column, pos))
		args = append(args, *to)
	}
	return conds, args
}
