package terminal

import (
	"fmt"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is the number of columns per grid cell, keeping cells roughly square
	cellWidth = 2
	// hudHeight is the number of rows above the grid
	hudHeight = 2
)

var (
	styleDefault = tcell.StyleDefault
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
)

// Renderer draws snapshots onto a terminal screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func cellGlyph(cell types.Cell) (rune, tcell.Style) {
	switch cell {
	case types.CellHead:
		return '█', styleHead
	case types.CellBody:
		return '▓', styleBody
	case types.CellFood:
		return '●', styleFood
	case types.CellWall:
		return '▒', styleWall
	default:
		return '·', styleEmpty
	}
}

// Draw renders a full frame. A nil snapshot draws a waiting message.
func (r *Renderer) Draw(snapshot *types.Snapshot) {
	r.screen.Clear()
	width, height := r.screen.Size()

	if snapshot == nil {
		r.drawText(0, 0, "Waiting for game...", styleHUD)
		r.screen.Show()
		return
	}

	left := (width - snapshot.Width*cellWidth) / 2
	if left < 0 {
		left = 0
	}
	top := hudHeight

	r.drawText(left, 0, fmt.Sprintf("Score: %d  High: %d", snapshot.Score, snapshot.HighScore), styleHUD)

	for y := 0; y < snapshot.Height; y++ {
		for x := 0; x < snapshot.Width; x++ {
			glyph, style := cellGlyph(snapshot.CellAt(x, y))
			col := left + x*cellWidth
			r.screen.SetContent(col, top+y, glyph, nil, style)
			r.screen.SetContent(col+1, top+y, ' ', nil, styleDefault)
			if glyph == '█' || glyph == '▓' || glyph == '▒' {
				r.screen.SetContent(col+1, top+y, glyph, nil, style)
			}
		}
	}

	if banner := bannerText(snapshot); banner != "" {
		bannerX := left + (snapshot.Width*cellWidth-len([]rune(banner)))/2
		if bannerX < 0 {
			bannerX = 0
		}
		r.drawText(bannerX, top+snapshot.Height/2, banner, styleBanner)
	}

	helpY := top + snapshot.Height + 1
	if helpY < height {
		r.drawText(left, helpY, "arrows/wasd move  space pause  enter start  r restart  q quit", styleDefault)
	}

	r.screen.Show()
}

func bannerText(snapshot *types.Snapshot) string {
	switch snapshot.Phase {
	case types.PhaseNotStarted:
		return " Press Enter to start "
	case types.PhasePaused:
		return " Paused "
	case types.PhaseGameOver:
		if snapshot.Won {
			return fmt.Sprintf(" You win! Score %d ", snapshot.Score)
		}
		return fmt.Sprintf(" Game over! Score %d ", snapshot.Score)
	default:
		return ""
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, c := range []rune(text) {
		r.screen.SetContent(x+i, y, c, nil, style)
	}
}
