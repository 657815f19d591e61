package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MoveTypeIn  = "in"  // entrada
	MoveTypeOut = "out" // saída
)

// Move representa uma movimentação de estoque: registro imutável com
// snapshot do preço unitário do produto no momento da criação.
type Move struct {
	ID        string
	ProductID string
	UserID    string
	Type      string
	Quantity  decimal.Decimal
	UnitPrice int64 // centavos, congelado na criação
	CreatedAt time.Time
}
