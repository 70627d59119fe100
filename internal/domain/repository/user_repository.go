package repository

import "github.com/tax1/inventory-api/internal/domain/entity"

// UserRepository acceso a usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
