package objects

import (
	"image"
	"image/color"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColorBackground = color.NRGBA{R: 20, G: 24, B: 28, A: 255}
	ColorGrid       = color.NRGBA{R: 32, G: 38, B: 44, A: 255}
	ColorHead       = color.NRGBA{R: 120, G: 230, B: 120, A: 255}
	ColorBody       = color.NRGBA{R: 60, G: 170, B: 80, A: 255}
	ColorFood       = color.NRGBA{R: 230, G: 70, B: 70, A: 255}
	ColorWall       = color.NRGBA{R: 110, G: 110, B: 120, A: 255}
)

// BoardObject draws the cells of the latest snapshot inside a square area.
type BoardObject struct {
	*BaseObject

	area     image.Rectangle
	snapshot *types.Snapshot
}

func NewBoardObject(id string, area image.Rectangle) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, nil),
		area:       area,
	}
}

func (o *BoardObject) SetSnapshot(snapshot *types.Snapshot) {
	o.snapshot = snapshot
}

// CellSize returns the side of one grid cell in pixels.
func (o *BoardObject) CellSize() float32 {
	if o.snapshot == nil || o.snapshot.Width == 0 {
		return 0
	}
	side := o.area.Dx()
	if o.area.Dy() < side {
		side = o.area.Dy()
	}
	return float32(side) / float32(o.snapshot.Width)
}

// CellCenter returns the screen coordinates of the center of a cell.
func (o *BoardObject) CellCenter(p types.Position) (float64, float64) {
	size := o.CellSize()
	return float64(float32(o.area.Min.X) + (float32(p.X)+0.5)*size),
		float64(float32(o.area.Min.Y) + (float32(p.Y)+0.5)*size)
}

func cellColor(cell types.Cell) (color.Color, bool) {
	switch cell {
	case types.CellHead:
		return ColorHead, true
	case types.CellBody:
		return ColorBody, true
	case types.CellFood:
		return ColorFood, true
	case types.CellWall:
		return ColorWall, true
	default:
		return nil, false
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	size := o.CellSize()
	if size == 0 {
		return
	}
	left, top := float32(o.area.Min.X), float32(o.area.Min.Y)
	side := size * float32(o.snapshot.Width)
	vector.DrawFilledRect(screen, left, top, side, side, ColorBackground, false)

	for y := 0; y < o.snapshot.Height; y++ {
		for x := 0; x < o.snapshot.Width; x++ {
			cx, cy := left+float32(x)*size, top+float32(y)*size
			clr, ok := cellColor(o.snapshot.CellAt(x, y))
			if !ok {
				vector.StrokeRect(screen, cx, cy, size, size, 1, ColorGrid, false)
				continue
			}
			if o.snapshot.CellAt(x, y) == types.CellFood {
				vector.DrawFilledCircle(screen, cx+size/2, cy+size/2, size*0.35, clr, true)
				continue
			}
			vector.DrawFilledRect(screen, cx+1, cy+1, size-2, size-2, clr, false)
		}
	}
}
