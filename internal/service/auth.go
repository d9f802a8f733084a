package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/resenia/resenia-go/internal/crypto"
	"github.com/resenia/resenia-go/internal/model"
	"github.com/resenia/resenia-go/internal/repository"
)

const minPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService handles registration and login.
type AuthService struct {
	users        *repository.UserRepository
	jwtSecret    string
	jwtAlgorithm string
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret, algorithm string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		jwtSecret:    secret,
		jwtAlgorithm: algorithm,
		tokenTTL:     ttl,
	}
}

// Register validates the request and creates a new user with a hashed
// password. A duplicate email yields ErrEmailTaken whether it is caught
// by the pre-check or by the database constraint, so a racing loser
// still gets a deterministic conflict.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if !isValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:          req.Email,
		HashedPassword: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns a signed access token. An
// unknown email and a wrong password are deliberately indistinguishable:
// both surface the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.VerifyPassword(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.Email, s.jwtSecret, s.jwtAlgorithm, s.tokenTTL)
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
