package repository

import "github.com/jhoicas/farmacia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve nil (sin error) si el usuario no existe.
	GetByID(id string) (*entity.User, error)
	// GetByUsername devuelve nil (sin error) si el usuario no existe.
	GetByUsername(username string) (*entity.User, error)
}
