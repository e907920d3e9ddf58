package repository

import "github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"

// ProfileRepository puerto de persistencia para perfiles (rol + contacto).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByUserID(userID string) (*entity.Profile, error)
}
