package inventory

import (
	"context"

	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante o tudo-ou-nada do registro de
// movimentações: insert da movimentação e update da quantidade do produto
// confirmam juntos ou revertem juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		moveRepo repository.MoveRepository,
		productRepo repository.ProductRepository,
	) error) error
}
