// Package auth is a local, storage-backed stand-in for a hosted identity
// provider: bcrypt password hashes, HS256 session tokens, a single user
// table.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/ports"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Claims carries the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type Config struct {
	Secret        string
	TokenDuration time.Duration
}

type Service struct {
	cfg  Config
	repo ports.UserRepository
	log  *zap.Logger
}

func NewService(cfg Config, repo ports.UserRepository, log *zap.Logger) ports.AuthService {
	return &Service{
		cfg:  cfg,
		repo: repo,
		log:  log,
	}
}

// SignUp registers a new user. The email must be unused; the password is
// stored only as a bcrypt hash.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", user.ID))
	return user, nil
}

// SignIn verifies the password and issues a signed session token. The same
// error covers an unknown email and a wrong password.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info("User signed in", zap.String("user_id", user.ID))
	return token, user, nil
}

// ValidateToken parses and verifies a session token and resolves its user.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the user's display name and email. An empty field
// leaves the current value in place.
func (s *Service) UpdateProfile(ctx context.Context, userID string, name, email string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if email != "" && email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
