package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/snake/pkg/repositories/models"
)

type MemoryRepository struct {
	lock       sync.RWMutex
	highScores map[string]models.HighScore
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		highScores: make(map[string]models.HighScore),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) GetHighScore(ctx context.Context, key string) (*models.HighScore, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	highScore, ok := r.highScores[key]
	if !ok {
		return nil, &ErrNotFound{}
	}
	return &highScore, nil
}

func (r *MemoryRepository) SetHighScore(ctx context.Context, key string, score int, timestamp int64) error {
	if err := validateHighScore(key, score); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.highScores[key] = models.HighScore{
		Key:       key,
		Score:     score,
		UpdatedAt: timestamp,
	}
	return nil
}
