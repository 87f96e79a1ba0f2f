package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues through the speaker. A nil Player is silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	last   *types.Snapshot
}

// NewPlayer initializes the speaker. Volume is linear in [0, 1].
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %v", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &Player{
		mixer:  mixer,
		volume: volume,
	}, nil
}

// Play queues a cue on the mixer.
func (p *Player) Play(cue Cue) {
	if p == nil {
		return
	}
	s, err := Streamer(cue, p.volume)
	if err != nil {
		log.Error("Failed to create %s sound: %v", cue, err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Observe plays the cues between the last observed snapshot and this one.
func (p *Player) Observe(snapshot *types.Snapshot) {
	if p == nil || snapshot == nil {
		return
	}
	p.mu.Lock()
	prev := p.last
	if prev != nil && prev.SessionID == snapshot.SessionID && prev.Tick == snapshot.Tick && prev.Phase == snapshot.Phase {
		p.mu.Unlock()
		return
	}
	p.last = snapshot
	p.mu.Unlock()

	for _, cue := range Detect(prev, snapshot) {
		log.Trace("Playing %s cue", cue)
		p.Play(cue)
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
