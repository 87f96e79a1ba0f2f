package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUDObject shows the score and the high score above the board.
type HUDObject struct {
	*BaseObject

	x, y     int
	snapshot *types.Snapshot
}

func NewHUDObject(id string, x, y int) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: LayerHUD}),
		x:          x,
		y:          y,
	}
}

func (o *HUDObject) SetSnapshot(snapshot *types.Snapshot) {
	o.snapshot = snapshot
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	if o.snapshot == nil {
		return
	}
	t := fmt.Sprintf("Score: %d   High Score: %d", o.snapshot.Score, o.snapshot.HighScore)
	text.Draw(screen, t, fonts.TTFMonoFont, o.x, o.y, color.White)
}
