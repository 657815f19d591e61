package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceitas para produtos.
const (
	UnitTypeKg = "kg"
	UnitTypeG  = "g"
	UnitTypeL  = "l"
	UnitTypeMl = "ml"
	UnitTypeUn = "un"
)

// Product representa um produto do estoque.
// Quantity é mutada exclusivamente pelo registro de movimentações
// (transação com bloqueio de linha); UnitPrice é em centavos.
type Product struct {
	ID              string
	Name            string
	CategoryID      string
	UnitPrice       int64 // centavos
	UnitType        string
	Quantity        decimal.Decimal
	MinimumQuantity decimal.Decimal
	MaximumQuantity decimal.Decimal
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
