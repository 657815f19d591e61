// Package auth implementa login e logout com token de sessão opaco:
// 32 bytes aleatórios em hex (64 caracteres) gravados na linha do usuário.
// O logout invalida a sessão no servidor limpando o token.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

const tokenBytes = 32 // 64 caracteres hex

// AuthUseCase casos de uso de autenticação.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login verifica e-mail e senha, gera um token novo e o grava no usuário.
// Usuários soft-deleted não conseguem logar (a busca por e-mail só considera
// ativos). Credencial inválida → 401 sem distinguir e-mail de senha.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	invalid := apperr.Wrap(http.StatusUnauthorized, "Credenciais inválidas", domain.ErrUnauthorized)

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, invalid
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.SetToken(ctx, user.ID, &token); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}

// Logout limpa o token de sessão no banco; chamadas seguintes com o mesmo
// token voltam a receber 401.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.userRepo.ClearToken(ctx, token)
}

// newToken gera 32 bytes de crypto/rand em hex.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
