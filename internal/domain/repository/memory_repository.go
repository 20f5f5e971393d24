package repository

import (
	"context"
	"time"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
)

// MemoryRepository defines the interface for short-term memory persistence.
// Insert assigns SequenceID and CreatedAt on the entry. DeleteOlderThan is
// the eviction sweep and spans all users. ListByUserID returns surviving
// entries ordered by (created_at, sequence_id) ascending.
type MemoryRepository interface {
	Insert(ctx context.Context, e *entity.MemoryEntry) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	ListByUserID(ctx context.Context, userID string) ([]entity.MemoryEntry, error)
}
