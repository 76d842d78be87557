package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/repository"
)

// UserStore is the credential store the flows need.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
	Redirect  string
}

// Service runs the registration and login flows.
type Service struct {
	users    UserStore
	hasher   *Hasher
	throttle *Throttle
	tokens   *Tokens
}

func NewService(users UserStore, hasher *Hasher, throttle *Throttle, tokens *Tokens) *Service {
	return &Service{users: users, hasher: hasher, throttle: throttle, tokens: tokens}
}

// ParseRole maps an optional role string to a Role; empty means normal.
// Matching is exact: "Admin" is rejected.
func ParseRole(s string) (models.Role, error) {
	if s == "" {
		return models.RoleNormal, nil
	}
	role := models.Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return role, nil
}

// NormalizeEmail trims and lower-cases an email used as login identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates in, hashes the password and stores the user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrMissingData
	}
	role, err := ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the throttle, verifies the credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingData
	}

	if err := s.throttle.Check(email); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		s.throttle.Fail(email)
		return nil, ErrIncorrectPassword
	}
	s.throttle.Reset(email)

	token, expires, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expires,
		User:      u,
		Redirect:  RedirectFor(u.Role),
	}, nil
}

// RedirectFor returns the dashboard the client should open after login.
func RedirectFor(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/dashboard"
}
