package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, seller
	CreatedAt    time.Time
}
