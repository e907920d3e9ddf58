package entity

import "time"

// User representa la cuenta de acceso (credenciales). El rol y los datos de
// contacto viven en Profile (relación uno a uno).
type User struct {
	ID           string
	Username     string // único en toda la plataforma
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
