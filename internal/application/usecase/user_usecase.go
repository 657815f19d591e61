package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/pierrepaulo/stock-control/internal/application/dto"
	"github.com/pierrepaulo/stock-control/internal/domain"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
	"github.com/pierrepaulo/stock-control/pkg/apperr"
)

const bcryptCost = 10

// UserUseCase CRUD de usuários. Senhas com bcrypt; resposta nunca expõe
// hash nem token.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create cria um usuário (rota restrita a admins). E-mail duplicado → 400.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Wrap(http.StatusBadRequest, "E-mail já está em uso", domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperr.Wrap(http.StatusBadRequest, "E-mail já está em uso", domain.ErrDuplicate)
		}
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// List lista usuários ativos.
func (uc *UserUseCase) List(ctx context.Context, q dto.PageQuery) ([]dto.UserResponse, error) {
	q.Defaults()
	list, err := uc.userRepo.List(ctx, q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(list), nil
}

// GetByID devolve os dados públicos de um usuário ativo.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Usuário não encontrado", domain.ErrNotFound)
	}
	return dto.ToUserResponse(user), nil
}

// Update atualização por admin: nome, e-mail, senha, flag de admin e avatar.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(http.StatusNotFound, "Usuário não encontrado", domain.ErrNotFound)
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Wrap(http.StatusBadRequest, "E-mail já está em uso", domain.ErrDuplicate)
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if in.Avatar != nil {
		user.Avatar = in.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// UpdateProfile atualização do próprio perfil: apenas nome e avatar.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return uc.Update(ctx, id, dto.UpdateUserRequest{Name: in.Name, Avatar: in.Avatar})
}

// Delete soft delete de um usuário (rota restrita a admins).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.userRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.Wrap(http.StatusNotFound, "Usuário não encontrado", domain.ErrNotFound)
	}
	return nil
}
