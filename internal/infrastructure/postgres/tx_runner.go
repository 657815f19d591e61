package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pierrepaulo/stock-control/internal/application/inventory"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, passando
// repositórios atados à transação. É a unidade de trabalho do registro de
// movimentações: o lock de linha tomado dentro do callback vale até o
// Commit ou Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia a transação, executa fn com repos atados a ela e faz Commit se
// fn retornar nil; qualquer erro reverte tudo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	moveRepo repository.MoveRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMoveRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
