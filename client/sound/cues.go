package sound

import "github.com/cbodonnell/snake/pkg/game/types"

// Cue is a sound worth playing after a change in the game.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueGameOver
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game over"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Detect compares two consecutive snapshots and returns the cues to play.
// Display layers only see snapshots, so events are recovered from the diff.
func Detect(prev, next *types.Snapshot) []Cue {
	if next == nil {
		return nil
	}
	var cues []Cue
	newSession := prev == nil || prev.SessionID != next.SessionID
	if newSession {
		if next.Phase == types.PhaseRunning {
			cues = append(cues, CueStart)
		}
		return cues
	}

	if next.Score > prev.Score {
		cues = append(cues, CueEat)
	}
	if prev.Phase != types.PhaseGameOver && next.Phase == types.PhaseGameOver {
		if next.Won {
			cues = append(cues, CueWin)
		} else {
			cues = append(cues, CueGameOver)
		}
	}
	return cues
}
