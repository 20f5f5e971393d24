package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
	repo "github.com/oksasatya/go-chat-memory/internal/domain/repository"
)

var ErrInvalidRole = errors.New("invalid role")

// MemoryService owns the append-only log of conversation turns. Every append
// also runs an eviction sweep that deletes entries older than the retention
// window, across all users. There is no background sweeper: an idle store
// only evicts when the next write happens anywhere in the system.
type MemoryService struct {
	Repo      repo.MemoryRepository
	Retention time.Duration
	Logger    *logrus.Logger

	now func() time.Time // test hook
}

func NewMemoryService(r repo.MemoryRepository, retention time.Duration, logger *logrus.Logger) *MemoryService {
	return &MemoryService{Repo: r, Retention: retention, Logger: logger, now: time.Now}
}

// Append inserts one turn and then sweeps expired entries. A sweep failure
// is logged and swallowed; it must never fail the append that triggered it.
func (s *MemoryService) Append(ctx context.Context, userID string, role entity.Role, content string) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	e := &entity.MemoryEntry{UserID: userID, Role: role, Content: content}
	if err := s.Repo.Insert(ctx, e); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	cutoff := s.now().Add(-s.Retention)
	if evicted, err := s.Repo.DeleteOlderThan(ctx, cutoff); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("cutoff", cutoff).Warn("memory eviction sweep failed")
		}
	} else if evicted > 0 && s.Logger != nil {
		s.Logger.WithField("evicted", evicted).Debug("memory entries evicted")
	}

	return nil
}

// History returns the surviving turns for a user in chronological order,
// shaped to seed a new assistant session. A user with no entries gets an
// empty slice, not an error.
func (s *MemoryService) History(ctx context.Context, userID string) ([]entity.Turn, error) {
	entries, err := s.Repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	turns := make([]entity.Turn, 0, len(entries))
	for _, e := range entries {
		turns = append(turns, entity.Turn{Role: e.Role, Content: e.Content})
	}
	return turns, nil
}
