package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/snake/client/session"
	"github.com/cbodonnell/snake/client/sound"
	"github.com/cbodonnell/snake/client/terminal"
	"github.com/cbodonnell/snake/pkg/config"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/version"
	"github.com/gdamore/tcell/v2"
)

func main() {
	migrations := flag.String("migrations", "./migrations", "Directory containing database migrations")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1 (0 disables sound)")
	logFile := flag.String("log-file", "snake.log", "File to write logs to, since the terminal is used for the game")
	logLevel := flag.String("log-level", "info", "Log level")
	gameConfig := config.DefaultGameConfig()
	gameConfig.RegisterFlags(flag.CommandLine)
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file: %v", err))
	}
	defer f.Close()

	logger := log.New(f, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting terminal client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, err := gameConfig.NewEngine()
	if err != nil {
		panic(fmt.Sprintf("Failed to create game engine: %v", err))
	}

	repository, err := config.NewRepository(ctx, config.DatabaseURL(), *migrations)
	if err != nil {
		log.Warn("High scores will not be saved: %v", err)
		repository = repositories.NewMemoryRepository()
	}
	defer repository.Close(context.Background())

	localSession := session.NewLocalSession(session.NewLocalSessionOptions{
		Engine:     engine,
		Repository: repository,
	})
	gameErrChan := make(chan error, 1)
	go func() {
		gameErrChan <- localSession.Start(ctx)
	}()

	var player *sound.Player
	if *volume > 0 {
		player, err = sound.NewPlayer(*volume)
		if err != nil {
			log.Warn("Sound disabled: %v", err)
		}
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()

	term := terminal.NewTerminal(terminal.NewTerminalOptions{
		Screen:  screen,
		Session: localSession,
		Player:  player,
	})

	runCtx, runCancel := context.WithCancel(ctx)
	go func() {
		if err := <-gameErrChan; err != nil {
			log.Error("Game manager stopped: %v", err)
		}
		runCancel()
	}()

	if err := term.Run(runCtx); err != nil {
		log.Error("Terminal stopped: %v", err)
	}
}
