package config

import (
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameConfig_RegisterFlags(t *testing.T) {
	c := DefaultGameConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-grid-size", "20", "-policy", "walled", "-speed", "200ms", "-seed", "3"}))

	assert.Equal(t, 20, c.GridSize)
	assert.Equal(t, "walled", c.Policy)
	assert.Equal(t, 200*time.Millisecond, c.InitialSpeed)
	assert.Equal(t, 50*time.Millisecond, c.MinSpeed)
	assert.Equal(t, int64(3), c.Seed)

	e, err := c.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, game.Board{Size: 20, Policy: game.BoundaryWalled}, e.Board())
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *GameConfig)
		wantErr bool
	}{
		{name: "defaults", modify: func(c *GameConfig) {}},
		{name: "grid too small", modify: func(c *GameConfig) { c.GridSize = 2 }, wantErr: true},
		{name: "unknown policy", modify: func(c *GameConfig) { c.Policy = "bounce" }, wantErr: true},
		{name: "floor above start", modify: func(c *GameConfig) { c.MinSpeed = time.Second }, wantErr: true},
		{name: "no speed up interval", modify: func(c *GameConfig) { c.SpeedUpEvery = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultGameConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				_, err = c.NewEngine()
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv(DatabaseURLEnv, "")
	assert.Equal(t, DefaultDatabaseURL, DatabaseURL())

	t.Setenv(DatabaseURLEnv, "memory://")
	assert.Equal(t, "memory://", DatabaseURL())
}

func TestTLSFiles(t *testing.T) {
	t.Setenv(TLSCertFileEnv, "cert.pem")
	t.Setenv(TLSKeyFileEnv, "")
	_, _, ok := TLSFiles()
	assert.False(t, ok)

	t.Setenv(TLSKeyFileEnv, "key.pem")
	certFile, keyFile, ok := TLSFiles()
	assert.True(t, ok)
	assert.Equal(t, "cert.pem", certFile)
	assert.Equal(t, "key.pem", keyFile)
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	r, err := NewRepository(ctx, "memory://", "../../migrations")
	require.NoError(t, err)
	assert.IsType(t, &repositories.MemoryRepository{}, r)

	r, err = NewRepository(ctx, "sqlite://"+filepath.Join(t.TempDir(), "snake.db"), "../../migrations")
	require.NoError(t, err)
	defer r.Close(ctx)
	require.NoError(t, r.SetHighScore(ctx, "snakeHighScore", 5, 1))

	_, err = NewRepository(ctx, "mysql://localhost", "../../migrations")
	assert.Error(t, err)

	_, err = NewRepository(ctx, "sqlite://", "../../migrations")
	assert.Error(t, err)
}
