package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/snake/client/game"
	"github.com/cbodonnell/snake/client/network"
	"github.com/cbodonnell/snake/client/session"
	"github.com/cbodonnell/snake/client/sound"
	"github.com/cbodonnell/snake/pkg/config"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	serverURL := flag.String("server", "", "Websocket URL of a snake server, e.g. ws://localhost:9090/ws (empty runs the game locally)")
	migrations := flag.String("migrations", "./migrations", "Directory containing database migrations")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1 (0 disables sound)")
	debug := flag.Bool("debug", false, "Show debug overlay")
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

	log.Info("Starting client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var player *sound.Player
	if *volume > 0 {
		player, err = sound.NewPlayer(*volume)
		if err != nil {
			log.Warn("Sound disabled: %v", err)
		}
		defer player.Close()
	}

	gameOpts := game.NewGameOptions{
		Debug:  *debug,
		Player: player,
	}
	if *serverURL != "" {
		gameOpts.NetworkManager = network.NewNetworkManager(*serverURL)
		defer gameOpts.NetworkManager.Stop()
	} else {
		repository, err := config.NewRepository(ctx, config.DatabaseURL(), *migrations)
		if err != nil {
			log.Warn("High scores will not be saved: %v", err)
			repository = repositories.NewMemoryRepository()
		}
		defer repository.Close(context.Background())

		engine, err := gameConfig.NewEngine()
		if err != nil {
			panic(fmt.Sprintf("Failed to create game engine: %v", err))
		}
		localSession := session.NewLocalSession(session.NewLocalSessionOptions{
			Engine:     engine,
			Repository: repository,
		})
		go func() {
			if err := localSession.Start(ctx); err != nil {
				panic(fmt.Sprintf("Failed to start game manager: %v", err))
			}
		}()
		gameOpts.Session = localSession
	}

	g, err := game.NewGame(gameOpts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Snake")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
