package dto

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token de sessão (64 hex) e dados públicos do usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
