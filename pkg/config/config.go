package config

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/repositories"
)

const (
	// DatabaseURLEnv selects the high score store
	DatabaseURLEnv = "SNAKE_DATABASE_URL"
	// DefaultDatabaseURL is used when DatabaseURLEnv is not set
	DefaultDatabaseURL = "sqlite://snake.db"
	// TLSCertFileEnv and TLSKeyFileEnv enable TLS on the API server when both are set
	TLSCertFileEnv = "SNAKE_TLS_CERT_FILE"
	TLSKeyFileEnv  = "SNAKE_TLS_KEY_FILE"
)

// GameConfig holds the tunables of one game engine.
type GameConfig struct {
	GridSize       int
	Policy         string
	InitialSpeed   time.Duration
	MinSpeed       time.Duration
	SpeedDecrement time.Duration
	SpeedUpEvery   int
	// Seed fixes food placement; zero seeds from the clock
	Seed int64
}

func DefaultGameConfig() GameConfig {
	rules := game.DefaultRules()
	return GameConfig{
		GridSize:       constants.GridSize,
		Policy:         game.BoundaryWrap.String(),
		InitialSpeed:   rules.InitialSpeed,
		MinSpeed:       rules.MinSpeed,
		SpeedDecrement: rules.SpeedDecrement,
		SpeedUpEvery:   rules.SpeedUpEvery,
	}
}

// RegisterFlags binds the config to command line flags, using the current
// values as defaults.
func (c *GameConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "Number of cells per side")
	fs.StringVar(&c.Policy, "policy", c.Policy, "Boundary policy: wrap or walled")
	fs.DurationVar(&c.InitialSpeed, "speed", c.InitialSpeed, "Initial tick interval")
	fs.DurationVar(&c.MinSpeed, "min-speed", c.MinSpeed, "Fastest tick interval")
	fs.DurationVar(&c.SpeedDecrement, "speed-decrement", c.SpeedDecrement, "Interval reduction on every speed up")
	fs.IntVar(&c.SpeedUpEvery, "speed-up-every", c.SpeedUpEvery, "Speed up every time the score is a multiple of this")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for food placement (0 for a random seed)")
}

func (c GameConfig) Rules() game.Rules {
	return game.Rules{
		InitialSpeed:   c.InitialSpeed,
		MinSpeed:       c.MinSpeed,
		SpeedDecrement: c.SpeedDecrement,
		SpeedUpEvery:   c.SpeedUpEvery,
	}
}

// Board validates the grid size and policy.
func (c GameConfig) Board() (game.Board, error) {
	policy, err := game.ParseBoundaryPolicy(c.Policy)
	if err != nil {
		return game.Board{}, err
	}
	board, err := game.NewBoard(c.GridSize, policy)
	if err != nil {
		return game.Board{}, fmt.Errorf("invalid board: %v", err)
	}
	return board, nil
}

func (c GameConfig) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid rules: %v", err)
	}
	return nil
}

// NewEngine builds an engine from a validated config.
func (c GameConfig) NewEngine() (*game.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	board, _ := c.Board()
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("Using %s board of size %d with seed %d", board.Policy, board.Size, seed)
	return game.NewEngine(board, c.Rules(), rand.New(rand.NewSource(seed))), nil
}

// DatabaseURL returns the store URL from the environment.
func DatabaseURL() string {
	connStr := os.Getenv(DatabaseURLEnv)
	if connStr == "" {
		connStr = DefaultDatabaseURL
	}
	return connStr
}

// TLSFiles returns the certificate and key files when both are configured.
func TLSFiles() (certFile string, keyFile string, ok bool) {
	certFile = os.Getenv(TLSCertFileEnv)
	keyFile = os.Getenv(TLSKeyFileEnv)
	return certFile, keyFile, certFile != "" && keyFile != ""
}

// NewRepository opens the store named by connStr: memory://, sqlite://<file>
// or postgresql://... The migrations directory holds one subdirectory per
// database type.
func NewRepository(ctx context.Context, connStr string, migrations string) (repositories.Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "memory":
		return repositories.NewMemoryRepository(), nil
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("sqlite connection string has no path: %s", connStr)
		}
		repository, err := repositories.NewSQLiteRepository(ctx, path, filepath.Join(migrations, "sqlite"))
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := repositories.NewPostgresRepository(ctx, u.String(), filepath.Join(migrations, "postgres"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
