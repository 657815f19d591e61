package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/inventory"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "00000000-0000-0000-0000-000000000010"
	testUserID    = "00000000-0000-0000-0000-000000000001"
)

type fakeProductRepo struct {
	products          map[string]*entity.Product
	updatedQuantities map[string]decimal.Decimal
	updateQuantityErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m, updatedQuantities: map[string]decimal.Decimal{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*repository.ProductWithCategory, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductWithCategory{Product: *p}, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (*entity.Product, error) {
	return f.GetForUpdate(ctx, id)
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) List(ctx context.Context, name string, offset, limit int) ([]repository.ProductWithCategory, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedAt time.Time) error {
	if f.updateQuantityErr != nil {
		return f.updateQuantityErr
	}
	f.updatedQuantities[id] = quantity
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

type fakeMoveRepo struct {
	created    []entity.Move
	createErr  error
	listRows   []repository.MoveWithProduct
	lastFilter repository.MoveFilter
}

func (f *fakeMoveRepo) Create(ctx context.Context, m *entity.Move) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMoveRepo) List(ctx context.Context, filter repository.MoveFilter) ([]repository.MoveWithProduct, error) {
	f.lastFilter = filter
	return f.listRows, nil
}

// fakeTxRunner passa os fakes para a função; erro da função sinaliza rollback.
type fakeTxRunner struct {
	moveRepo    *fakeMoveRepo
	productRepo *fakeProductRepo
	runs        int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.MoveRepository, repository.ProductRepository) error) error {
	f.runs++
	return fn(f.moveRepo, f.productRepo)
}

func buildUseCase(product *entity.Product) (*inventory.MoveUseCase, *fakeTxRunner) {
	productRepo := newFakeProductRepo()
	if product != nil {
		productRepo.products[product.ID] = product
	}
	tx := &fakeTxRunner{moveRepo: &fakeMoveRepo{}, productRepo: productRepo}
	return inventory.NewMoveUseCase(tx, tx.moveRepo), tx
}

func testProduct(quantity string) *entity.Product {
	return &entity.Product{
		ID:        testProductID,
		Name:      "Arroz branco",
		UnitPrice: 500,
		UnitType:  entity.UnitTypeKg,
		Quantity:  decimal.RequireFromString(quantity),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMove
// ──────────────────────────────────────────────────────────────────────────────

// Entrada soma a quantidade e congela o preço vigente do produto.
func TestRecordMove_EntradaSomaQuantidade(t *testing.T) {
	uc, tx := buildUseCase(testProduct("10"))

	move, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeIn,
		Quantity:  decimal.RequireFromString("5"),
	})
	require.NoError(t, err)
	require.NotNil(t, move)

	assert.Equal(t, entity.MoveTypeIn, move.Type)
	assert.Equal(t, int64(500), move.UnitPrice, "o snapshot deve ser o preço vigente do produto")
	assert.True(t, tx.productRepo.updatedQuantities[testProductID].Equal(decimal.RequireFromString("15")),
		"10 + 5 deve resultar em 15")
	require.Len(t, tx.moveRepo.created, 1)
}

// Saída subtrai a quantidade.
func TestRecordMove_SaidaSubtraiQuantidade(t *testing.T) {
	uc, tx := buildUseCase(testProduct("10"))

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeOut,
		Quantity:  decimal.RequireFromString("3"),
	})
	require.NoError(t, err)

	assert.True(t, tx.productRepo.updatedQuantities[testProductID].Equal(decimal.RequireFromString("7")),
		"10 - 3 deve resultar em 7")
}

// Saída igual ao saldo é permitida e zera o estoque.
func TestRecordMove_SaidaIgualAoSaldoZeraEstoque(t *testing.T) {
	uc, tx := buildUseCase(testProduct("5"))

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeOut,
		Quantity:  decimal.RequireFromString("5"),
	})
	require.NoError(t, err)

	assert.True(t, tx.productRepo.updatedQuantities[testProductID].IsZero(),
		"saída igual ao saldo deve zerar o estoque")
}

// Saída maior que o saldo falha sem persistir nada.
func TestRecordMove_SaidaMaiorQueSaldoFalha(t *testing.T) {
	uc, tx := buildUseCase(testProduct("5"))

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeOut,
		Quantity:  decimal.RequireFromString("10"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Quantidade insuficiente", appErr.Message)

	assert.Empty(t, tx.moveRepo.created, "nenhuma movimentação deve ser gravada")
	assert.Empty(t, tx.productRepo.updatedQuantities, "a quantidade do produto não deve mudar")
}

// Produto inexistente → 404.
func TestRecordMove_ProdutoInexistente(t *testing.T) {
	uc, _ := buildUseCase(nil)

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeIn,
		Quantity:  decimal.RequireFromString("1"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

// O unitPrice do caller é aceito e ignorado: o snapshot é sempre o preço do
// produto no momento da movimentação.
func TestRecordMove_PrecoDoCallerIgnorado(t *testing.T) {
	uc, tx := buildUseCase(testProduct("10"))
	callerPrice := int64(99999)

	move, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeIn,
		Quantity:  decimal.RequireFromString("2"),
		UnitPrice: &callerPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), move.UnitPrice)
	assert.Equal(t, int64(500), tx.moveRepo.created[0].UnitPrice)
}

// Tipo inválido e quantidade não positiva falham antes de abrir a transação.
func TestRecordMove_EntradaInvalidaNaoAbreTransacao(t *testing.T) {
	cases := []struct {
		name     string
		moveType string
		quantity string
	}{
		{"tipo inválido", "transfer", "1"},
		{"quantidade zero", entity.MoveTypeIn, "0"},
		{"quantidade negativa", entity.MoveTypeOut, "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, tx := buildUseCase(testProduct("10"))

			_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
				ProductID: testProductID,
				UserID:    testUserID,
				Type:      tc.moveType,
				Quantity:  decimal.RequireFromString(tc.quantity),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, tx.runs, "a transação não deve ser aberta")
		})
	}
}

// Falha no insert da movimentação propaga o erro; nada é confirmado.
func TestRecordMove_FalhaNoInsertPropagaErro(t *testing.T) {
	uc, tx := buildUseCase(testProduct("10"))
	tx.moveRepo.createErr = errors.New("conexão perdida")

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeIn,
		Quantity:  decimal.RequireFromString("1"),
	})
	require.Error(t, err)
	assert.Empty(t, tx.productRepo.updatedQuantities,
		"a quantidade não deve ser atualizada quando o insert falha")
}

// Falha no update da quantidade propaga o erro para o runner reverter.
func TestRecordMove_FalhaNoUpdatePropagaErro(t *testing.T) {
	uc, tx := buildUseCase(testProduct("10"))
	tx.productRepo.updateQuantityErr = errors.New("conexão perdida")

	_, err := uc.RecordMove(context.Background(), inventory.MoveInput{
		ProductID: testProductID,
		UserID:    testUserID,
		Type:      entity.MoveTypeIn,
		Quantity:  decimal.RequireFromString("1"),
	})
	require.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMoves
// ──────────────────────────────────────────────────────────────────────────────

func TestListMoves_AplicaDefaultsDePaginacao(t *testing.T) {
	uc, tx := buildUseCase(nil)

	_, err := uc.ListMoves(context.Background(), dto.ListMovesQuery{})
	require.NoError(t, err)

	assert.Equal(t, 0, tx.moveRepo.lastFilter.Offset)
	assert.Equal(t, 10, tx.moveRepo.lastFilter.Limit, "o limit padrão é 10")
}

func TestListMoves_RepassaFiltroProduto(t *testing.T) {
	uc, tx := buildUseCase(nil)
	tx.moveRepo.listRows = []repository.MoveWithProduct{
		{Move: entity.Move{ID: "m1", ProductID: testProductID, Type: entity.MoveTypeOut}},
	}

	out, err := uc.ListMoves(context.Background(), dto.ListMovesQuery{
		ProductID: testProductID,
		PageQuery: dto.PageQuery{Offset: 20, Limit: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, testProductID, tx.moveRepo.lastFilter.ProductID)
	assert.Equal(t, 20, tx.moveRepo.lastFilter.Offset)
	assert.Equal(t, 5, tx.moveRepo.lastFilter.Limit)
	require.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)
}
