package entity

import "time"

// Category agrupa produtos. Soft delete via DeletedAt; uma categoria não pode
// ser excluída enquanto houver produtos ativos vinculados a ela.
type Category struct {
	ID        string
	Name      string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
