package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
	repo "github.com/oksasatya/go-chat-memory/internal/domain/repository"
	"github.com/oksasatya/go-chat-memory/pkg/helpers"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrEmptyUserID        = errors.New("user id is required")
	ErrEmptyPassword      = errors.New("password is required")

	// ErrPersistence wraps storage failures on the primary read/write path.
	ErrPersistence = errors.New("persistence error")
)

// CredentialService owns principal registration, password verification and
// API-key issuance/resolution. The API key is the sole credential for
// memory-bearing requests; there is no rotation path.
type CredentialService struct {
	Repo       repo.UserRepository
	BcryptCost int
	Logger     *logrus.Logger
}

func NewCredentialService(r repo.UserRepository, bcryptCost int, logger *logrus.Logger) *CredentialService {
	return &CredentialService{Repo: r, BcryptCost: bcryptCost, Logger: logger}
}

// Register creates a user and returns the plaintext API key exactly once.
// The key is never retrievable again; login only returns the stored copy.
func (s *CredentialService) Register(ctx context.Context, userID, password string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	if _, err := s.Repo.GetByUserID(ctx, userID); err == nil {
		return "", ErrUserAlreadyExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	apiKey, err := helpers.NewAPIKey()
	if err != nil {
		return "", fmt.Errorf("generating api key: %w", err)
	}
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	u := &entity.User{UserID: userID, PasswordHash: hash, APIKey: apiKey}
	if err := s.Repo.Create(ctx, u); err != nil {
		// unique constraint backstops the existence check above under races
		if errors.Is(err, repo.ErrDuplicate) {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", userID).Info("new user registered")
	}
	return apiKey, nil
}

// Login verifies the password and returns the stored API key. It never
// issues a new key.
func (s *CredentialService) Login(ctx context.Context, userID, password string) (string, error) {
	u, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return u.APIKey, nil
}

// Resolve maps an API key back to its owning user. Called on every
// authenticated request.
func (s *CredentialService) Resolve(ctx context.Context, apiKey string) (*entity.User, error) {
	if apiKey == "" {
		return nil, ErrUnauthenticated
	}
	u, err := s.Repo.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return u, nil
}
