package repository

import "github.com/jhoicas/Manufactura-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios del dashboard.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
