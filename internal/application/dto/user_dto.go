package dto

import "time"

// RegisterRequest entrada para registro: usuario, contraseña y datos de la tienda.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=6"`
	StoreName  string `json:"storeName" validate:"required,min=1,max=200"`
	StoreImage string `json:"storeImage"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	StoreName  string    `json:"storeName"`
	StoreImage string    `json:"storeImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
