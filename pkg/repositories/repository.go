package repositories

import (
	"context"

	"github.com/cbodonnell/snake/pkg/repositories/models"
)

// Repository persists high scores by key.
type Repository interface {
	Close(ctx context.Context) error
	// GetHighScore returns ErrNotFound when nothing was saved under key.
	GetHighScore(ctx context.Context, key string) (*models.HighScore, error)
	// SetHighScore stores score under key, replacing any previous value.
	SetHighScore(ctx context.Context, key string, score int, timestamp int64) error
}
