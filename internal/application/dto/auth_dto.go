package dto

import "time"

// SignupRequest entrada para registro: cuenta + perfil con rol elegido.
// El password llega en texto y se hashea en el caso de uso.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=farmer corporate"`
	Phone    string `json:"phone" validate:"omitempty,max=15"`
	Address  string `json:"address"`
}

// ProfileResponse salida de un perfil (sin password).
type ProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el perfil autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
