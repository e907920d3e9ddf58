package repository

import "github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"

// UserRepository puerto de persistencia para cuentas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
