package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gatorhire/internal/domain/user"
	"gatorhire/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotAdmin               = errors.New("not an admin account")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
	AdminLogin(ctx context.Context, in LoginInput) (user.User, string, error)
}

type Service struct {
	users  user.Repository
	tokens jwt.Service
}

func NewService(users user.Repository, tokens jwt.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)
	if email == "" || fullName == "" {
		return user.User{}, "", ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if exists {
		return user.User{}, "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         user.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", ErrInternal
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), token, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	return s.login(ctx, in, false)
}

// AdminLogin is Login restricted to admin accounts; a valid user credential
// against this entry point is still rejected.
func (s *Service) AdminLogin(ctx context.Context, in LoginInput) (user.User, string, error) {
	return s.login(ctx, in, true)
}

func (s *Service) login(ctx context.Context, in LoginInput, requireAdmin bool) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	if requireAdmin && u.Role != user.RoleAdmin {
		return user.User{}, "", ErrNotAdmin
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(u), token, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
