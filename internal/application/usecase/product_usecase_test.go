package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/application/usecase"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   map[string]*entity.Product
	lastName   string
	lastOffset int
	lastLimit  int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*repository.ProductWithCategory, error) {
	p, ok := f.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return &repository.ProductWithCategory{Product: *p}, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return f.Get(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context, name string, offset, limit int) ([]repository.ProductWithCategory, error) {
	f.lastName, f.lastOffset, f.lastLimit = name, offset, limit
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedAt time.Time) error {
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.DeletedAt != nil {
		return false, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return true, nil
}

const testProductID = "00000000-0000-0000-0000-000000000010"

func createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:            "Arroz branco",
		CategoryID:      testCategoryID,
		UnitPrice:       500,
		UnitType:        entity.UnitTypeKg,
		Quantity:        decimal.RequireFromString("10"),
		MinimumQuantity: decimal.RequireFromString("2"),
		MaximumQuantity: decimal.RequireFromString("50"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CategoriaInexistente404(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), createRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Categoria não encontrada", appErr.Message)
}

func TestProductCreate_MaximoMenorQueMinimo400(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(activeCategory("Alimentos")))

	in := createRequest()
	in.MinimumQuantity = decimal.RequireFromString("50")
	in.MaximumQuantity = decimal.RequireFromString("10")

	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestProductCreate_MaximoIgualAoMinimoPermitido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(activeCategory("Alimentos")))

	in := createRequest()
	in.MinimumQuantity = decimal.RequireFromString("10")
	in.MaximumQuantity = decimal.RequireFromString("10")

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	require.NotNil(t, out.CategoryName)
	assert.Equal(t, "Alimentos", *out.CategoryName)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_AplicaDefaultsDePaginacao(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, newFakeCategoryRepo())

	_, err := uc.List(context.Background(), dto.ListProductsQuery{Name: "arroz"})
	require.NoError(t, err)

	assert.Equal(t, "arroz", repo.lastName)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 10, repo.lastLimit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_Parcial(t *testing.T) {
	product := &entity.Product{
		ID:         testProductID,
		Name:       "Arroz branco",
		CategoryID: testCategoryID,
		UnitPrice:  500,
		UnitType:   entity.UnitTypeKg,
		Quantity:   decimal.RequireFromString("10"),
	}
	repo := newFakeProductRepo(product)
	uc := usecase.NewProductUseCase(repo, newFakeCategoryRepo(activeCategory("Alimentos")))

	newPrice := int64(750)
	out, err := uc.Update(context.Background(), testProductID, dto.UpdateProductRequest{UnitPrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, int64(750), out.UnitPrice)
	assert.Equal(t, "Arroz branco", out.Name, "campos não informados devem ser preservados")
}

func TestProductUpdate_Inexistente404(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	newName := "Outro nome"
	_, err := uc.Update(context.Background(), testProductID, dto.UpdateProductRequest{Name: &newName})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_SoftDelete(t *testing.T) {
	product := &entity.Product{ID: testProductID, Name: "Arroz branco"}
	repo := newFakeProductRepo(product)
	uc := usecase.NewProductUseCase(repo, newFakeCategoryRepo())

	require.NoError(t, uc.Delete(context.Background(), testProductID))
	assert.NotNil(t, product.DeletedAt)

	// depois do soft delete, GetByID não encontra mais
	_, err := uc.GetByID(context.Background(), testProductID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Inexistente404(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	err := uc.Delete(context.Background(), testProductID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
