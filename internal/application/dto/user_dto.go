package dto

import (
	"time"

	"github.com/pierrepaulo/stock-control/internal/domain/entity"
)

// CreateUserRequest entrada para criar um usuário (somente admins).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest atualização por admin: qualquer campo.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsAdmin  *bool   `json:"isAdmin"`
	Avatar   *string `json:"avatar"`
}

// UpdateProfileRequest atualização do próprio perfil: apenas nome e avatar.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2"`
	Avatar *string `json:"avatar"`
}

// UserResponse usuário sem campos sensíveis (senha e token nunca saem).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converte a entidade para o DTO público.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades.
func ToUserResponses(list []entity.User) []UserResponse {
	items := make([]UserResponse, 0, len(list))
	for i := range list {
		items = append(items, *ToUserResponse(&list[i]))
	}
	return items
}
