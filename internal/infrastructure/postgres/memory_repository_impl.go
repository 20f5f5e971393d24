package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
	"github.com/oksasatya/go-chat-memory/internal/domain/repository"
)

type MemoryRepository struct {
	pool *pgxpool.Pool
}

func NewMemoryRepository(pool *pgxpool.Pool) *MemoryRepository {
	return &MemoryRepository{pool: pool}
}

func (r *MemoryRepository) Insert(ctx context.Context, e *entity.MemoryEntry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO memory_entries (user_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING sequence_id, created_at
	`, e.UserID, e.Role, e.Content)

	return row.Scan(&e.SequenceID, &e.CreatedAt)
}

func (r *MemoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM memory_entries
		WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *MemoryRepository) ListByUserID(ctx context.Context, userID string) ([]entity.MemoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sequence_id, user_id, role, content, created_at
		FROM memory_entries
		WHERE user_id = $1
		ORDER BY created_at ASC, sequence_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.MemoryEntry, 0)
	for rows.Next() {
		var e entity.MemoryEntry
		if err := rows.Scan(&e.SequenceID, &e.UserID, &e.Role, &e.Content, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ repository.MemoryRepository = (*MemoryRepository)(nil)
