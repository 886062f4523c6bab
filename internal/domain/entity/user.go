package entity

import "time"

// User representa al dueño/operador de la tienda. Su ID identifica también la sesión de venta.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca la contraseña plana
	StoreName    string    `json:"storeName"`
	StoreImage   string    `json:"storeImage"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}
