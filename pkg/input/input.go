package input

import (
	"math"
	"strings"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
)

// Source identifies the device an event came from.
type Source string

const (
	SourceKeyboard Source = "keyboard"
	SourceSwipe    Source = "swipe"
	SourceButton   Source = "button"
)

// Event is a raw input event reported by a display layer.
type Event struct {
	Source Source `json:"source"`
	// Key is a key name for keyboard events, using browser key names (ArrowUp, w, Enter, " ")
	Key string `json:"key,omitempty"`
	// DX and DY are the travel of a swipe in pixels; positive DY points down
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`
	// Button names an on-screen button
	Button string `json:"button,omitempty"`
}

// Map translates a raw event into a game loop command.
// It returns false when the event does not map to anything.
func Map(event Event) (interface{}, bool) {
	switch event.Source {
	case SourceKeyboard:
		return MapKey(event.Key)
	case SourceSwipe:
		direction, ok := MapSwipe(event.DX, event.DY)
		if !ok {
			return nil, false
		}
		return &types.DirectionCommand{Direction: direction}, true
	case SourceButton:
		return MapButton(event.Button)
	default:
		return nil, false
	}
}

// MapKey maps arrow keys, WASD, space (pause toggle), enter (start or restart),
// p (pause toggle) and r (restart).
func MapKey(key string) (interface{}, bool) {
	switch key {
	case "ArrowUp", "Up", "w", "W":
		return &types.DirectionCommand{Direction: types.DirectionUp}, true
	case "ArrowDown", "Down", "s", "S":
		return &types.DirectionCommand{Direction: types.DirectionDown}, true
	case "ArrowLeft", "Left", "a", "A":
		return &types.DirectionCommand{Direction: types.DirectionLeft}, true
	case "ArrowRight", "Right", "d", "D":
		return &types.DirectionCommand{Direction: types.DirectionRight}, true
	case " ", "Space", "p", "P":
		return &types.TogglePauseCommand{}, true
	case "Enter":
		return &types.StartCommand{}, true
	case "r", "R":
		return &types.RestartCommand{}, true
	default:
		return nil, false
	}
}

// MapSwipe maps a swipe to a direction. The swipe must travel more than
// SwipeThreshold on either axis; the axis with the larger travel wins and
// ties go to the vertical axis.
func MapSwipe(dx, dy float64) (types.Direction, bool) {
	absX, absY := math.Abs(dx), math.Abs(dy)
	if absX <= constants.SwipeThreshold && absY <= constants.SwipeThreshold {
		return types.DirectionUp, false
	}
	if absX > absY {
		if dx > 0 {
			return types.DirectionRight, true
		}
		return types.DirectionLeft, true
	}
	if dy > 0 {
		return types.DirectionDown, true
	}
	return types.DirectionUp, true
}

// MapButton maps on-screen button names.
func MapButton(name string) (interface{}, bool) {
	switch strings.ToLower(name) {
	case "up":
		return &types.DirectionCommand{Direction: types.DirectionUp}, true
	case "down":
		return &types.DirectionCommand{Direction: types.DirectionDown}, true
	case "left":
		return &types.DirectionCommand{Direction: types.DirectionLeft}, true
	case "right":
		return &types.DirectionCommand{Direction: types.DirectionRight}, true
	case "start":
		return &types.StartCommand{}, true
	case "pause":
		return &types.PauseCommand{}, true
	case "resume":
		return &types.ResumeCommand{}, true
	case "toggle":
		return &types.TogglePauseCommand{}, true
	case "restart":
		return &types.RestartCommand{}, true
	default:
		return nil, false
	}
}
