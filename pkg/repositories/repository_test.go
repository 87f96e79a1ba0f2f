package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.db")
	r, err := NewSQLiteRepository(context.Background(), path, "../../migrations/sqlite")
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close(context.Background())
	})
	return r
}

// newTestPostgresRepository runs against SNAKE_TEST_POSTGRES_URL and is
// skipped when it is not set.
func newTestPostgresRepository(t *testing.T) Repository {
	t.Helper()
	connStr := os.Getenv("SNAKE_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("SNAKE_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	r, err := NewPostgresRepository(ctx, connStr, "../../migrations/postgres")
	require.NoError(t, err)
	conn := r.(*PostgresRepository).conn
	cleanup := func() {
		_, err := conn.Exec(ctx, "DELETE FROM high_scores WHERE key IN ('snakeHighScore', 'other')")
		require.NoError(t, err)
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		r.Close(ctx)
	})
	return r
}

func TestRepositories_HighScore(t *testing.T) {
	tests := []struct {
		name string
		repo func(t *testing.T) Repository
	}{
		{
			name: "memory",
			repo: func(t *testing.T) Repository { return NewMemoryRepository() },
		},
		{
			name: "sqlite",
			repo: newTestSQLiteRepository,
		},
		{
			name: "postgres",
			repo: newTestPostgresRepository,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r := tt.repo(t)

			_, err := r.GetHighScore(ctx, "snakeHighScore")
			assert.True(t, IsNotFound(err), "expected not found, got %v", err)

			require.NoError(t, r.SetHighScore(ctx, "snakeHighScore", 12, 1000))
			highScore, err := r.GetHighScore(ctx, "snakeHighScore")
			require.NoError(t, err)
			assert.Equal(t, 12, highScore.Score)
			assert.Equal(t, int64(1000), highScore.UpdatedAt)

			require.NoError(t, r.SetHighScore(ctx, "snakeHighScore", 20, 2000))
			highScore, err = r.GetHighScore(ctx, "snakeHighScore")
			require.NoError(t, err)
			assert.Equal(t, 20, highScore.Score)

			_, err = r.GetHighScore(ctx, "other")
			assert.True(t, IsNotFound(err))

			err = r.SetHighScore(ctx, "snakeHighScore", -1, 3000)
			assert.True(t, IsInvalidHighScore(err), "expected invalid high score, got %v", err)
			err = r.SetHighScore(ctx, "", 5, 3000)
			assert.True(t, IsInvalidHighScore(err), "expected invalid high score, got %v", err)
			highScore, err = r.GetHighScore(ctx, "snakeHighScore")
			require.NoError(t, err)
			assert.Equal(t, 20, highScore.Score)
		})
	}
}

func TestNewSQLiteRepository_MissingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "snake.db"), "does-not-exist")
	assert.Error(t, err)
}
