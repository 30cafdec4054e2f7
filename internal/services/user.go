package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/apiserver/internal/auth"
	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.User, error)
	GetByID(ctx context.Context, id int) (types.User, bool, error)
	GetByEmail(ctx context.Context, email string) (types.User, bool, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, id int, patch types.UserPatch) (types.User, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// UserService encapsulates account use-cases: registration, login,
// token refresh and account lookups.
type UserService struct {
	repo     UserRepository
	codec    *auth.Codec
	maxLimit int
}

func NewUserService(repo UserRepository, codec *auth.Codec, maxLimit int) *UserService {
	return &UserService{repo: repo, codec: codec, maxLimit: maxLimit}
}

// Register creates a new account with a hashed password. The lookup
// before the insert is a best-effort check; the unique index on email
// is the real arbiter, so a racing duplicate insert still comes back
// as ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (types.User, error) {
	_, exists, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return types.User{}, err
	}
	if exists {
		return types.User{}, fmt.Errorf("user %q: %w", email, ErrAlreadyExists)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.User{}, fmt.Errorf("user %q: %w", email, ErrAlreadyExists)
		}
		return types.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *UserService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, exists, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !exists {
		return auth.TokenPair{}, ErrUserNotRegistered
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return auth.TokenPair{}, ErrInvalidCredentials
	}

	return s.codec.IssuePair(user.ID)
}

// Refresh exchanges a valid refresh token for a new token pair. Access
// tokens are rejected: the refresh marker claim is required here even
// though the codec itself does not care.
func (s *UserService) Refresh(tokenString string) (auth.TokenPair, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !auth.IsRefresh(claims) {
		return auth.TokenPair{}, fmt.Errorf("%w: not a refresh token", auth.ErrInvalidToken)
	}
	userID, err := auth.UserID(claims)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}
	return s.codec.IssuePair(userID)
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]types.User, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	user, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.User{}, err
	}
	if !exists {
		return types.User{}, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	return user, nil
}
