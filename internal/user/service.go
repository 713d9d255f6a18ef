package user

import (
	"context"
	"errors"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	FindOrCreateByEmail(ctx context.Context, email string) (*User, error)
	Me(ctx context.Context) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, email, password string) (*User, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email during registration")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "employee",
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to look up user for login")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// FindOrCreateByEmail backs the Google sign-in path, where the identity
// provider has already proven ownership of the address.
func (s *userService) FindOrCreateByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &User{
		ID:    uuid.New(),
		Email: email,
		Role:  "employee",
	}
	if err := s.repo.Create(u); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to provision user from Google sign-in")
		return nil, err
	}
	return u, nil
}

func (s *userService) Me(ctx context.Context) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(uuid.MustParse(claims.UserID))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
