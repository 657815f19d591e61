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

// CategoryUseCase CRUD de categorias.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create rejeita nome duplicado entre categorias ativas.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categoryRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Wrap(http.StatusBadRequest, "Categoria já existe", domain.ErrDuplicate)
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// List lista categorias ativas, opcionalmente com contagem de produtos.
func (uc *CategoryUseCase) List(ctx context.Context, includeProductCount bool) (any, error) {
	if includeProductCount {
		rows, err := uc.categoryRepo.ListWithProductCount(ctx)
		if err != nil {
			return nil, err
		}
		return dto.ToCategoryWithCountResponses(rows), nil
	}
	list, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponses(list), nil
}

// GetByID devolve uma categoria ativa.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Categoria não encontrada", domain.ErrNotFound)
	}
	return dto.ToCategoryResponse(category), nil
}

// Update renomeia uma categoria ativa.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Categoria não encontrada", domain.ErrNotFound)
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Delete soft delete; falha enquanto houver produtos ativos na categoria.
// O status 404 da regra de produtos vinculados vem da aplicação original.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	hasProducts, err := uc.categoryRepo.HasActiveProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return apperr.Wrap(http.StatusNotFound,
			"Não é possivel excluir uma categoria com produtos", domain.ErrConflict)
	}

	found, err := uc.categoryRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.Wrap(http.StatusNotFound, "Categoria não encontrada", domain.ErrNotFound)
	}
	return nil
}
