package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/dto"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
	"github.com/Manas-Mehakare/FarmingPlatform/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro (cuenta + perfil) y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Signup crea la cuenta y su perfil con el rol elegido (farmer o corporate),
// hashea el password con bcrypt y devuelve token + perfil (auto-login).
// El rol queda fijado aquí: no hay operación para cambiarlo después.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.LoginResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.FindByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	if existing, _ := uc.userRepo.FindByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Role:      role,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.ID, string(profile.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(user, profile),
	}, nil
}

// Login verifica username/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound // cuenta sin perfil: estado inconsistente
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.ID, string(profile.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(user, profile),
	}, nil
}

func toProfileResponse(u *entity.User, p *entity.Profile) *dto.ProfileResponse {
	if u == nil || p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(p.Role),
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}
