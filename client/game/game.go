package game

import (
	"fmt"

	"github.com/cbodonnell/snake/client/input"
	"github.com/cbodonnell/snake/client/network"
	"github.com/cbodonnell/snake/client/scenes"
	"github.com/cbodonnell/snake/client/session"
	"github.com/cbodonnell/snake/client/sound"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 740
)

// Mode is what the window is currently showing.
type Mode int

const (
	ModeBoard Mode = iota
	ModeDisconnected
)

func (m Mode) String() string {
	switch m {
	case ModeBoard:
		return "Board"
	case ModeDisconnected:
		return "Disconnected"
	}
	return "Unknown"
}

// Game is the ebiten.Game of the desktop client. It shows the board of a
// session, which is either in-process or a remote server.
type Game struct {
	debug  bool
	player *sound.Player

	session session.Session
	// remote is set when session is a server connection
	remote  *network.NetworkManager

	mode  Mode
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug          bool
	// Session is an in-process game. Ignored when NetworkManager is set.
	Session        session.Session
	// NetworkManager connects to a remote server
	NetworkManager *network.NetworkManager
	// Player is optional; a nil player is silent
	Player         *sound.Player
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:   opts.Debug,
		player:  opts.Player,
		session: opts.Session,
	}
	if opts.NetworkManager != nil {
		g.remote = opts.NetworkManager
		g.session = opts.NetworkManager
	}
	if g.session == nil {
		return nil, fmt.Errorf("a session or network manager is required")
	}

	if err := g.connect(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setScene(scene scenes.Scene, mode Mode) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy %s scene: %v", g.mode, err)
		}
	}
	if err := scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s scene: %v", mode, err)
	}
	g.scene = scene
	g.mode = mode
	log.Debug("Showing %s", mode)
	return nil
}

// connect dials the server when remote, then shows the board.
func (g *Game) connect() error {
	if g.remote != nil {
		if err := g.remote.Start(); err != nil {
			log.Error("Failed to connect: %v", err)
			return g.showDisconnected(err)
		}
	}

	board, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Session: g.session,
		Player:  g.player,
		Width:   DefaultScreenWidth,
		Height:  DefaultScreenHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	return g.setScene(board, ModeBoard)
}

func (g *Game) showDisconnected(cause error) error {
	if g.remote != nil && g.remote.IsConnected() {
		if err := g.remote.Stop(); err != nil {
			log.Error("Failed to stop network manager: %v", err)
		}
	}
	scene, err := scenes.NewErrorScene("Disconnected", cause)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	return g.setScene(scene, ModeDisconnected)
}

// checkConnection swaps to the error scene when the server connection drops.
func (g *Game) checkConnection() error {
	if g.remote == nil || !g.remote.IsConnected() {
		return nil
	}
	select {
	case err := <-g.remote.ClientErrChan():
		log.Error("Lost connection to server: %v", err)
		return g.showDisconnected(err)
	default:
		return nil
	}
}

func (g *Game) Update() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}

	if err := g.checkConnection(); err != nil {
		return err
	}
	if g.mode == ModeDisconnected && input.IsPositiveJustPressed() {
		if err := g.connect(); err != nil {
			return fmt.Errorf("failed to reconnect: %v", err)
		}
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update %s scene: %v", g.mode, err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %0.1f\nTPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if g.remote != nil && g.remote.IsConnected() {
		msg += fmt.Sprintf("\nPing: %0.1fms", g.remote.Ping())
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
