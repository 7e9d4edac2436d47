package memory

import (
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

// NewUserRepo construye el repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       map[string]*entity.User{},
		byUsername: map[string]*entity.User{},
	}
}

// Create guarda el usuario. Devuelve ErrUsernameTaken si el username ya existe,
// igual que el constraint único de la tabla.
func (r *UserRepo) Create(user *entity.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *user
	r.byID[cp.ID] = &cp
	r.byUsername[cp.Username] = &cp
	return nil
}

// GetByID devuelve una copia del usuario, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByUsername devuelve una copia del usuario, o nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
