package scenes

import (
	"github.com/cbodonnell/snake/client/objects"
)

// ErrorScene replaces the board when the server cannot be reached.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

// NewErrorScene shows title with the cause underneath and how to retry.
func NewErrorScene(title string, cause error) (Scene, error) {
	detail := "Press Enter to retry or Esc to quit"
	if cause != nil {
		detail = cause.Error() + ". " + detail
	}
	overlay := objects.NewTextOverlayObject("overlay-error", title, &objects.NewBaseObjectOpts{ZIndex: objects.LayerOverlay})
	overlay.SetText(title, detail)
	return &ErrorScene{
		BaseScene: NewBaseScene(overlay),
	}, nil
}
