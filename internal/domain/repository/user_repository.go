package repository

import "github.com/tu-usuario/healthflow-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del sistema.
// FindByEmail devuelve (nil, nil) si el email no está registrado.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
