package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/snake/client/session"
	"github.com/cbodonnell/snake/client/sound"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval is how often the terminal checks for a new snapshot.
const FrameInterval = 16 * time.Millisecond

// Terminal is a tcell display and keyboard input for a session.
type Terminal struct {
	screen   tcell.Screen
	renderer *Renderer
	session  session.Session
	player   *sound.Player
	last     *types.Snapshot
	dirty    bool
}

type NewTerminalOptions struct {
	Screen  tcell.Screen
	Session session.Session
	// Player is optional; a nil player is silent
	Player *sound.Player
}

func NewTerminal(opts NewTerminalOptions) *Terminal {
	return &Terminal{
		screen:   opts.Screen,
		renderer: NewRenderer(opts.Screen),
		session:  opts.Session,
		player:   opts.Player,
		dirty:    true,
	}
}

// Run draws snapshots and forwards keys until the user quits or the
// context is cancelled. The screen must already be initialized.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)
	go pollEvents(t.screen, events, stop)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("terminal event stream closed")
			}
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// pollEvents feeds screen events into events until the screen is finalized
// or stop is closed. events is closed only when the screen runs out.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
		t.dirty = true
	}
	return true
}

// handleKey forwards a key to the session and reports whether to keep running.
func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	if isQuit(key, r) {
		return false
	}
	event, ok := keyEvent(key, r)
	if !ok {
		return true
	}
	if err := t.session.Send(event); err != nil {
		log.Error("Failed to send input: %v", err)
	}
	return true
}

// frame redraws when the snapshot changed since the last frame.
func (t *Terminal) frame() {
	snapshot := t.session.Snapshot()
	if !t.dirty && sameFrame(t.last, snapshot) {
		return
	}
	t.player.Observe(snapshot)
	t.renderer.Draw(snapshot)
	t.last = snapshot
	t.dirty = false
}

func sameFrame(a, b *types.Snapshot) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.SessionID == b.SessionID && a.Tick == b.Tick && a.Phase == b.Phase && a.HighScore == b.HighScore
}
