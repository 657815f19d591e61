package dto

import (
	"time"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// CreateCategoryRequest entrada para criar uma categoria.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// UpdateCategoryRequest entrada para renomear uma categoria.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
}

// ListCategoriesQuery filtros de GET /categories.
type ListCategoriesQuery struct {
	IncludeProductCount bool `query:"includeProductCount"`
}

// CategoryResponse categoria ativa.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryWithCountResponse categoria com contagem de produtos.
type CategoryWithCountResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int       `json:"productCount"`
}

// ToCategoryResponse converte a entidade para o DTO.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponses converte uma lista de entidades.
func ToCategoryResponses(list []entity.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(list))
	for i := range list {
		items = append(items, *ToCategoryResponse(&list[i]))
	}
	return items
}

// ToCategoryWithCountResponses converte o resultado do join de contagem.
func ToCategoryWithCountResponses(rows []repository.CategoryWithCount) []CategoryWithCountResponse {
	items := make([]CategoryWithCountResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, CategoryWithCountResponse{
			ID:           r.ID,
			Name:         r.Name,
			CreatedAt:    r.CreatedAt,
			ProductCount: r.ProductCount,
		})
	}
	return items
}
