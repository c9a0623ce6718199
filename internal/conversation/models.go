package conversation

import (
	"context"
	"time"
)

// Turn is one user message event. Turns are immutable once written and only
// user messages are stored; model replies never enter the table, so the
// context window a later request sees contains no assistant output. That is
// a deliberate constraint of the product, not an oversight.
type Turn struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	TurnID    string    `gorm:"type:varchar(26);not null;index:uniq_turn_user_turn,unique,priority:2" json:"turn_id"`
	UserID    string    `gorm:"type:varchar(64);not null;index:idx_turn_user_id,priority:1;index:uniq_turn_user_turn,unique,priority:1" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (Turn) TableName() string { return "conversation_turns" }

// Store is the persistent conversation log. ListRecent returns turns newest
// first; Append must be idempotent on (user_id, turn_id).
type Store interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]Turn, error)
	Append(ctx context.Context, t *Turn) error
}

// Cache is an optional read-through cache of the recent-context window.
// It is best effort: a failing cache must never fail a request.
type Cache interface {
	GetRecent(ctx context.Context, userID string) ([]Turn, bool, error)
	SetRecent(ctx context.Context, userID string, turns []Turn) error
	Invalidate(ctx context.Context, userID string) error
}
