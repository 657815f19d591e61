// Package inventory implementa o núcleo do controle de estoque: o registro
// transacional de movimentações e a atualização do saldo do produto.
package inventory

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

// MoveUseCase registra movimentações de estoque de forma transacional
// (bloqueio de linha com SELECT FOR UPDATE, Commit ou Rollback) e lista o
// histórico. A quantidade do produto é o único estado mutável compartilhado;
// o lock por linha serializa movimentações concorrentes do mesmo produto.
type MoveUseCase struct {
	txRunner TxRunner
	moveRepo repository.MoveRepository
}

// NewMoveUseCase constrói o caso de uso.
func NewMoveUseCase(txRunner TxRunner, moveRepo repository.MoveRepository) *MoveUseCase {
	return &MoveUseCase{txRunner: txRunner, moveRepo: moveRepo}
}

// MoveInput entrada para registrar uma movimentação. UnitPrice do caller é
// aceito pelo contrato mas nunca persistido: o snapshot é sempre o preço
// vigente do produto lido sob lock.
type MoveInput struct {
	ProductID string
	UserID    string
	Type      string // in | out
	Quantity  decimal.Decimal
	UnitPrice *int64 // aceito e ignorado
}

// RecordMove abre a transação, bloqueia a linha do produto, valida a
// suficiência de saldo para saídas e grava movimentação + nova quantidade
// como uma unidade atômica. Nenhum estado parcial é observável: se o insert
// ou o update falhar, a transação inteira é revertida.
//
// Erros: domain.ErrNotFound (produto inexistente, 404),
// domain.ErrInsufficientStock (saída maior que o saldo, 400). Saída igual ao
// saldo é permitida e zera o estoque.
func (uc *MoveUseCase) RecordMove(ctx context.Context, input MoveInput) (*entity.Move, error) {
	if input.Type != entity.MoveTypeIn && input.Type != entity.MoveTypeOut {
		return nil, apperr.Wrap(http.StatusBadRequest, "Tipo de movimentação inválido", domain.ErrInvalidInput)
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, apperr.Wrap(http.StatusBadRequest, "Quantidade deve ser maior que zero", domain.ErrInvalidInput)
	}

	var move *entity.Move
	err := uc.txRunner.Run(ctx, func(
		moveRepo repository.MoveRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto: movimentações concorrentes do mesmo
		// produto ficam serializadas até o Commit/Rollback.
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperr.Wrap(http.StatusNotFound, "Produto não encontrado", domain.ErrNotFound)
		}

		if input.Type == entity.MoveTypeOut && input.Quantity.GreaterThan(product.Quantity) {
			return apperr.Wrap(http.StatusBadRequest, "Quantidade insuficiente", domain.ErrInsufficientStock)
		}

		now := time.Now()
		move = &entity.Move{
			ProductID: input.ProductID,
			UserID:    input.UserID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			UnitPrice: product.UnitPrice, // snapshot do preço vigente, caller ignorado
			CreatedAt: now,
		}
		if err := moveRepo.Create(ctx, move); err != nil {
			return err
		}

		newQuantity := product.Quantity.Add(input.Quantity)
		if input.Type == entity.MoveTypeOut {
			newQuantity = product.Quantity.Sub(input.Quantity)
		}
		return productRepo.UpdateQuantity(ctx, input.ProductID, newQuantity, now)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// ListMoves lista movimentações mais recentes primeiro, com o nome do
// produto. Leitura pura, fora de transação.
func (uc *MoveUseCase) ListMoves(ctx context.Context, q dto.ListMovesQuery) ([]dto.MoveListItem, error) {
	q.Defaults()
	rows, err := uc.moveRepo.List(ctx, repository.MoveFilter{
		ProductID: q.ProductID,
		Offset:    q.Offset,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToMoveListItems(rows), nil
}
