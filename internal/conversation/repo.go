package conversation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// ListRecent returns the most recent turns in DESC id order (newest -> oldest).
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 3
	}
	var turns []Turn
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&turns).Error; err != nil {
		return nil, err
	}
	return turns, nil
}

// Append inserts a turn. If (user_id, turn_id) already exists the original
// row wins and t is overwritten with it, so replayed writes are no-ops.
func (r *Repo) Append(ctx context.Context, t *Turn) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if err == nil {
		return nil
	}

	var existing Turn
	getErr := r.db.WithContext(ctx).
		Where("user_id = ? AND turn_id = ?", t.UserID, t.TurnID).
		First(&existing).Error
	if getErr == nil {
		*t = existing
		return nil
	}
	if errors.Is(getErr, gorm.ErrRecordNotFound) {
		return err
	}
	return getErr
}
