package objects

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	// popupRise is how far a popup drifts up over its life, in pixels
	popupRise = 36
)

// ScorePopup is the "+N" label that rises and fades over the cell where
// food was eaten, then removes itself.
type ScorePopup struct {
	*BaseObject

	label  string
	x      float64
	y      float64
	color  color.Color
	life   int
	frames int
}

// NewScorePopup centers a popup for points at (x, y) that lasts for d.
func NewScorePopup(id string, points int, x, y float64, clr color.Color, d time.Duration) *ScorePopup {
	life := int(d.Seconds() * float64(ebiten.TPS()))
	if life < 1 {
		life = 1
	}
	return &ScorePopup{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: LayerEffects}),
		label:      fmt.Sprintf("+%d", points),
		x:          x,
		y:          y,
		color:      clr,
		life:       life,
	}
}

// progress is the fraction of the popup's life that has passed.
func (o *ScorePopup) progress() float64 {
	return float64(o.frames) / float64(o.life)
}

func (o *ScorePopup) Update() error {
	o.frames++
	if o.frames < o.life {
		return nil
	}
	if err := o.RemoveFromParent(); err != nil {
		return fmt.Errorf("failed to remove popup %s: %v", o.GetID(), err)
	}
	return nil
}

func (o *ScorePopup) Draw(screen *ebiten.Image) {
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, o.label)
	width := float64((bounds.Max.X - bounds.Min.X).Ceil())

	p := o.progress()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-width/2, o.y-popupRise*p)
	op.ColorScale.ScaleWithColor(o.color)
	op.ColorScale.ScaleAlpha(float32(1 - p))
	text.DrawWithOptions(screen, o.label, f, op)
}
