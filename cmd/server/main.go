package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/snake/pkg/api"
	"github.com/cbodonnell/snake/pkg/config"
	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/network"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/cbodonnell/snake/pkg/version"
	"github.com/cbodonnell/snake/pkg/workers"
)

func main() {
	port := flag.Int("port", 9090, "Port to listen on")
	migrations := flag.String("migrations", "./migrations", "Directory containing database migrations")
	logLevel := flag.String("log-level", "info", "Log level")
	gameConfig := config.DefaultGameConfig()
	gameConfig.RegisterFlags(flag.CommandLine)
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting snake server version %s", version.Get())
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := gameConfig.NewEngine()
	if err != nil {
		panic(fmt.Sprintf("Failed to create game engine: %v", err))
	}

	repository, err := config.NewRepository(ctx, config.DatabaseURL(), *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	commandQueue := queue.NewInMemoryQueue(queue.QueueBufferSize)
	stateManager := state.NewInMemoryStateManager()

	clientManager := network.NewClientManager()
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: clientManager,
		CommandQueue:  commandQueue,
	})

	saveHighScoreChannelSize := 100
	saveHighScoreChan := make(chan workers.SaveHighScoreRequest, saveHighScoreChannelSize)
	saveHighScoreWorker := workers.NewSaveHighScoreWorker(workers.NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})
	go saveHighScoreWorker.Start(ctx)

	snapshotChannelSize := 16
	snapshotChan := make(chan *types.Snapshot, snapshotChannelSize)
	broadcastSnapshotWorker := workers.NewBroadcastSnapshotWorker(workers.NewBroadcastSnapshotWorkerOptions{
		NetworkManager: networkManager,
		SnapshotChan:   snapshotChan,
	})
	go broadcastSnapshotWorker.Start(ctx)

	connectionEventWorker := workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		NetworkManager:      networkManager,
		ConnectionEventChan: clientManager.GetClientEventChan(),
		StateManager:        stateManager,
	})
	go connectionEventWorker.Start(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:           *port,
		Repository:     repository,
		StateManager:   stateManager,
		CommandQueue:   commandQueue,
		NetworkManager: networkManager,
	}
	if certFile, keyFile, ok := config.TLSFiles(); ok {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: certFile,
			KeyFile:  keyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Engine:            engine,
		CommandQueue:      commandQueue,
		Repository:        repository,
		StateManager:      stateManager,
		SaveHighScoreChan: saveHighScoreChan,
		SnapshotChan:      snapshotChan,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start game manager: %v", err))
	}

	// the repository is closed by a deferred call; queued records go first
	<-saveHighScoreWorker.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
	log.Info("Server stopped")
}
