package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/snake/pkg/api/handlers"
	"github.com/cbodonnell/snake/pkg/api/middleware"
	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/network"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port           int
	TLS            *TLSConfig
	Repository     repositories.Repository
	StateManager   state.StateManager
	CommandQueue   queue.Queue
	NetworkManager *network.NetworkManager
	// HighScoreKey defaults to constants.HighScoreKey
	HighScoreKey string
}

// NewAPIServer creates a new http.Server for controlling and watching the game
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter registers every API route.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	highScoreKey := opts.HighScoreKey
	if highScoreKey == "" {
		highScoreKey = constants.HighScoreKey
	}

	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)

	r.HandleFunc("/state", handlers.HandleGetState(opts.StateManager)).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", handlers.HandleGetSnapshot(opts.StateManager)).Methods(http.MethodGet)
	r.HandleFunc("/highscore", handlers.HandleGetHighScore(opts.Repository, highScoreKey)).Methods(http.MethodGet)

	commands := map[string]func() interface{}{
		"/start":   func() interface{} { return &types.StartCommand{} },
		"/pause":   func() interface{} { return &types.PauseCommand{} },
		"/resume":  func() interface{} { return &types.ResumeCommand{} },
		"/toggle":  func() interface{} { return &types.TogglePauseCommand{} },
		"/restart": func() interface{} { return &types.RestartCommand{} },
	}
	for path, newCommand := range commands {
		r.HandleFunc(path, handlers.HandleCommand(opts.CommandQueue, newCommand)).Methods(http.MethodPost, http.MethodOptions)
	}
	r.HandleFunc("/direction/{direction}", handlers.HandleDirection(opts.CommandQueue)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/input", handlers.HandleInput(opts.CommandQueue)).Methods(http.MethodPost, http.MethodOptions)

	if opts.NetworkManager != nil {
		r.HandleFunc("/ws", opts.NetworkManager.HandleWebSocket()).Methods(http.MethodGet)
	}

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
