package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(migrations, func(migrationPath string, migration string) error {
		_, err := conn.Exec(ctx, migration)
		return err
	}); err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) GetHighScore(ctx context.Context, key string) (*models.HighScore, error) {
	q := `
	SELECT score, updated_at FROM high_scores WHERE key = $1;
	`
	highScore := &models.HighScore{Key: key}
	if err := r.conn.QueryRow(ctx, q, key).Scan(&highScore.Score, &highScore.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return highScore, nil
}

func (r *PostgresRepository) SetHighScore(ctx context.Context, key string, score int, timestamp int64) error {
	if err := validateHighScore(key, score); err != nil {
		return err
	}

	q := `
	INSERT INTO high_scores (key, score, updated_at) VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET score = $2, updated_at = $3;
	`
	if _, err := r.conn.Exec(ctx, q, key, score, timestamp); err != nil {
		return fmt.Errorf("failed to upsert high score: %v", err)
	}

	return nil
}
