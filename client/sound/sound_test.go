package sound

import (
	"testing"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	running := &types.Snapshot{SessionID: "a", Tick: 4, Score: 1, Phase: types.PhaseRunning}

	tests := []struct {
		name string
		prev *types.Snapshot
		next *types.Snapshot
		want []Cue
	}{
		{name: "nothing yet", prev: nil, next: nil},
		{name: "first board", prev: nil, next: &types.Snapshot{SessionID: "", Phase: types.PhaseNotStarted}},
		{name: "new game", prev: &types.Snapshot{SessionID: ""}, next: &types.Snapshot{SessionID: "a", Phase: types.PhaseRunning}, want: []Cue{CueStart}},
		{name: "move", prev: running, next: &types.Snapshot{SessionID: "a", Tick: 5, Score: 1, Phase: types.PhaseRunning}},
		{name: "eat", prev: running, next: &types.Snapshot{SessionID: "a", Tick: 5, Score: 2, Phase: types.PhaseRunning}, want: []Cue{CueEat}},
		{name: "collision", prev: running, next: &types.Snapshot{SessionID: "a", Tick: 4, Score: 1, Phase: types.PhaseGameOver}, want: []Cue{CueGameOver}},
		{name: "filled board", prev: running, next: &types.Snapshot{SessionID: "a", Tick: 5, Score: 2, Phase: types.PhaseGameOver, Won: true}, want: []Cue{CueEat, CueWin}},
		{name: "pause", prev: running, next: &types.Snapshot{SessionID: "a", Tick: 4, Score: 1, Phase: types.PhasePaused}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.prev, tt.next))
		})
	}
}

func TestStreamer(t *testing.T) {
	for _, cue := range []Cue{CueStart, CueEat, CueGameOver, CueWin} {
		t.Run(cue.String(), func(t *testing.T) {
			s, err := Streamer(cue, 0.5)
			require.NoError(t, err)

			total := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := s.Stream(buf)
				for i := 0; i < n; i++ {
					assert.LessOrEqual(t, buf[i][0], 1.0)
					assert.GreaterOrEqual(t, buf[i][0], -1.0)
				}
				total += n
				if !ok {
					break
				}
			}
			assert.Greater(t, total, 0)
			assert.Less(t, total, sampleRate.N(gameOverNoteDuration)*5)
			assert.NoError(t, s.Err())
		})
	}

	_, err := Streamer(Cue(42), 1)
	assert.Error(t, err)
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.Play(CueEat)
		p.Observe(&types.Snapshot{})
		p.Close()
	})
}
