package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/auth"
	"github.com/pkordes/lodgings-api/internal/domain"
	"github.com/pkordes/lodgings-api/internal/repo"
)

// TokenIssuer mints bearer tokens for authenticated users.
// *auth.Issuer satisfies it.
type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

// UserService handles registration and login.
type UserService struct {
	users      repo.UserRepo
	tokens     TokenIssuer
	bcryptCost int
}

// NewUserService constructs a UserService. bcryptCost is the bcrypt work factor.
func NewUserService(users repo.UserRepo, tokens TokenIssuer, bcryptCost int) *UserService {
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// registration holds the raw inputs to Register for validation.
// bcrypt ignores bytes past 72, so longer passwords are rejected.
type registration struct {
	Name     string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

// Register validates the inputs, hashes the password and stores the user.
// Returns domain.ErrConflict if the email is already registered.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	in := registration{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: password,
	}
	if err := validateStruct(in); err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{Name: in.Name, Email: in.Email, PasswordHash: hash})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	return created, nil
}

// Login checks the credentials and returns a signed token.
// An unknown email and a wrong password both yield domain.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("service.UserService.Login: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("service.UserService.Login: %w", err)
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return "", fmt.Errorf("service.UserService.Login: %w", err)
	}
	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		return "", fmt.Errorf("service.UserService.Login: %w", err)
	}
	return token, nil
}

// normalizeEmail is the canonical form stored at registration and looked up at login.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
