package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Register crea un usuario con la contraseña hasheada (bcrypt).
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = email
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario de la sesión. Un token de un usuario borrado es ErrUnauthorized.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		CreatedAt: u.CreatedAt,
	}
}
