package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

// ProductUseCase CRUD de produtos. A quantidade criada aqui é o saldo
// inicial; depois disso ela só muda pelo registro de movimentações.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create valida a categoria e a faixa mínimo/máximo e persiste o produto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Categoria não encontrada", domain.ErrNotFound)
	}
	if in.MaximumQuantity.LessThan(in.MinimumQuantity) {
		return nil, apperr.Wrap(http.StatusBadRequest,
			"Quantidade máxima deve ser maior ou igual a quantidade mínima", domain.ErrInvalidInput)
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            in.Name,
		CategoryID:      in.CategoryID,
		UnitPrice:       in.UnitPrice,
		UnitType:        in.UnitType,
		Quantity:        in.Quantity,
		MinimumQuantity: in.MinimumQuantity,
		MaximumQuantity: in.MaximumQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(&repository.ProductWithCategory{
		Product:      *product,
		CategoryName: &category.Name,
	}), nil
}

// List lista produtos ativos com filtro opcional por nome (ILIKE).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ListProductsQuery) ([]dto.ProductResponse, error) {
	q.Defaults()
	rows, err := uc.productRepo.List(ctx, q.Name, q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(rows), nil
}

// GetByID devolve um produto ativo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	row, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Produto não encontrado", domain.ErrNotFound)
	}
	return dto.ToProductResponse(row), nil
}

// Update atualização parcial. Como na origem, não filtra soft delete no
// alvo; a categoria informada precisa existir e estar ativa.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperr.Wrap(http.StatusNotFound, "Categoria não encontrada", domain.ErrNotFound)
		}
	}

	product, err := uc.productRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Produto não encontrado", domain.ErrNotFound)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.UnitType != nil {
		product.UnitType = *in.UnitType
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.MinimumQuantity != nil {
		product.MinimumQuantity = *in.MinimumQuantity
	}
	if in.MaximumQuantity != nil {
		product.MaximumQuantity = *in.MaximumQuantity
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	var categoryName *string
	if category, err := uc.categoryRepo.GetByID(ctx, product.CategoryID); err == nil && category != nil {
		categoryName = &category.Name
	}
	return dto.ToProductResponse(&repository.ProductWithCategory{
		Product:      *product,
		CategoryName: categoryName,
	}), nil
}

// Delete marca o produto como excluído (soft delete); o histórico de
// movimentações permanece referenciando o registro.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.productRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.Wrap(http.StatusNotFound, "Produto não encontrado", domain.ErrNotFound)
	}
	return nil
}
