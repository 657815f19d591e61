package repository

import (
	"context"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
)

// UserRepository porta de persistência de usuários.
// Métodos de leitura consideram apenas usuários ativos (deleted_at IS NULL)
// e retornam (nil, nil) quando não encontram.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByToken resolve o usuário dono do token de sessão (Bearer).
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	List(ctx context.Context, offset, limit int) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// SetToken grava o token de sessão do usuário (nil limpa).
	SetToken(ctx context.Context, id string, token *string) error
	// ClearToken invalida a sessão identificada pelo próprio token (logout).
	ClearToken(ctx context.Context, token string) error
	SoftDelete(ctx context.Context, id string) (bool, error)
}
