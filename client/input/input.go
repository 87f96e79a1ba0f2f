package input

import (
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames maps ebiten keys to the browser key names understood by the input mapper.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "ArrowUp",
	ebiten.KeyArrowDown:   "ArrowDown",
	ebiten.KeyArrowLeft:   "ArrowLeft",
	ebiten.KeyArrowRight:  "ArrowRight",
	ebiten.KeyW:           "w",
	ebiten.KeyA:           "a",
	ebiten.KeyS:           "s",
	ebiten.KeyD:           "d",
	ebiten.KeySpace:       " ",
	ebiten.KeyP:           "p",
	ebiten.KeyEnter:       "Enter",
	ebiten.KeyNumpadEnter: "Enter",
	ebiten.KeyR:           "r",
}

// KeyEvents returns a keyboard event for every mapped key pressed this frame.
func KeyEvents() []input.Event {
	var events []input.Event
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		name, ok := keyNames[key]
		if !ok {
			continue
		}
		events = append(events, input.Event{Source: input.SourceKeyboard, Key: name})
	}
	return events
}

// IsNegativeJustPressed reports whether the player asked to leave the current scene.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// SwipeTracker turns touch drags and mouse drags into swipe events.
// A swipe is reported once, when the finger or button is released.
type SwipeTracker struct {
	touchID  ebiten.TouchID
	tracking bool
	mouse    bool
	startX   int
	startY   int
	lastX    int
	lastY    int
}

// Update must be called once per frame.
func (t *SwipeTracker) Update() (input.Event, bool) {
	if !t.tracking {
		if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
			t.touchID = touchIDs[0]
			t.mouse = false
			t.start(ebiten.TouchPosition(t.touchID))
		} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			t.mouse = true
			t.start(ebiten.CursorPosition())
		}
		return input.Event{}, false
	}

	if t.mouse {
		t.lastX, t.lastY = ebiten.CursorPosition()
		if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			return input.Event{}, false
		}
	} else {
		if !inpututil.IsTouchJustReleased(t.touchID) {
			t.lastX, t.lastY = ebiten.TouchPosition(t.touchID)
			return input.Event{}, false
		}
	}

	t.tracking = false
	return input.Event{
		Source: input.SourceSwipe,
		DX:     float64(t.lastX - t.startX),
		DY:     float64(t.lastY - t.startY),
	}, true
}

func (t *SwipeTracker) start(x, y int) {
	t.tracking = true
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
}
