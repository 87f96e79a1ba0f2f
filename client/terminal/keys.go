package terminal

import (
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/gdamore/tcell/v2"
)

// isQuit reports whether the key leaves the terminal client.
func isQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// keyEvent translates a terminal key into a raw keyboard event using
// browser key names.
func keyEvent(key tcell.Key, r rune) (input.Event, bool) {
	var name string
	switch key {
	case tcell.KeyUp:
		name = "ArrowUp"
	case tcell.KeyDown:
		name = "ArrowDown"
	case tcell.KeyLeft:
		name = "ArrowLeft"
	case tcell.KeyRight:
		name = "ArrowRight"
	case tcell.KeyEnter:
		name = "Enter"
	case tcell.KeyRune:
		name = string(r)
	default:
		return input.Event{}, false
	}
	return input.Event{Source: input.SourceKeyboard, Key: name}, true
}
