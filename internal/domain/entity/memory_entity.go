package entity

import "time"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// MemoryEntry is one turn of conversation in the short-term store.
// Entries are immutable once created and removed only by age-based eviction.
// SequenceID is assigned by the database and breaks created_at ties.
type MemoryEntry struct {
	SequenceID int64
	UserID     string
	Role       Role
	Content    string
	CreatedAt  time.Time
}

// Turn is the role/content shape handed to the assistant as prior context.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
