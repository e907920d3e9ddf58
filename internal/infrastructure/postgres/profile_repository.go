package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un nuevo perfil (uno por cuenta).
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, role, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.UserID, string(profile.Role), profile.Phone, profile.Address, profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.getOne(`SELECT id, user_id, role, phone, address, created_at FROM profiles WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil asociado a una cuenta.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	return r.getOne(`SELECT id, user_id, role, phone, address, created_at FROM profiles WHERE user_id = $1`, userID)
}

func (r *ProfileRepo) getOne(query, arg string) (*entity.Profile, error) {
	var p entity.Profile
	var role string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.UserID, &role, &p.Phone, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Role = entity.Role(role)
	return &p, nil
}
