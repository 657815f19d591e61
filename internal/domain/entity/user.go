package entity

import "time"

// User usuário do sistema, ator das movimentações.
// Token é o token de sessão opaco (64 hex); nil quando deslogado.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Avatar       *string
	Token        *string
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
