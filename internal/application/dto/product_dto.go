package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// CreateProductRequest entrada para criar um produto.
// Quantidades são decimais não negativas; unitPrice em centavos.
type CreateProductRequest struct {
	Name            string          `json:"name" validate:"required,min=2"`
	CategoryID      string          `json:"categoryId" validate:"required,uuid4"`
	UnitPrice       int64           `json:"unitPrice" validate:"gte=0"`
	UnitType        string          `json:"unitType" validate:"required,oneof=kg g l ml un"`
	Quantity        decimal.Decimal `json:"quantity"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	MaximumQuantity decimal.Decimal `json:"maximumQuantity"`
}

// UpdateProductRequest entrada para atualização parcial de um produto.
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=2"`
	CategoryID      *string          `json:"categoryId" validate:"omitempty,uuid4"`
	UnitPrice       *int64           `json:"unitPrice" validate:"omitempty,gte=0"`
	UnitType        *string          `json:"unitType" validate:"omitempty,oneof=kg g l ml un"`
	Quantity        *decimal.Decimal `json:"quantity"`
	MinimumQuantity *decimal.Decimal `json:"minimumQuantity"`
	MaximumQuantity *decimal.Decimal `json:"maximumQuantity"`
}

// ListProductsQuery filtros de GET /products.
type ListProductsQuery struct {
	Name string `query:"name" validate:"omitempty,min=2"`
	PageQuery
}

// ProductResponse produto com o nome da categoria.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    *string         `json:"categoryName"`
	UnitPrice       int64           `json:"unitPrice"`
	UnitType        string          `json:"unitType"`
	Quantity        decimal.Decimal `json:"quantity"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	MaximumQuantity decimal.Decimal `json:"maximumQuantity"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToProductResponse converte o resultado do join para o DTO.
func ToProductResponse(p *repository.ProductWithCategory) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
		UnitPrice:       p.UnitPrice,
		UnitType:        p.UnitType,
		Quantity:        p.Quantity,
		MinimumQuantity: p.MinimumQuantity,
		MaximumQuantity: p.MaximumQuantity,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductResponses converte uma lista de resultados do join.
func ToProductResponses(rows []repository.ProductWithCategory) []ProductResponse {
	items := make([]ProductResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *ToProductResponse(&rows[i]))
	}
	return items
}
