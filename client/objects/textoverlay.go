package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and centers a message on it.
// An empty message draws nothing.
type TextOverlayObject struct {
	*BaseObject

	text    string
	subtext string
}

func NewTextOverlayObject(id string, text string, opts *NewBaseObjectOpts) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, opts),
		text:       text,
	}
}

func (o *TextOverlayObject) SetText(text string, subtext string) {
	o.text = text
	o.subtext = subtext
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 150}, false)

	drawCentered(screen, strings.ToUpper(o.text), fonts.TTFLargeFont, float64(h)/2, color.White)
	if o.subtext != "" {
		drawCentered(screen, o.subtext, fonts.TTFSmallFont, float64(h)/2+40, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	}
}

func drawCentered(screen *ebiten.Image, t string, f font.Face, y float64, clr color.Color) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
}
