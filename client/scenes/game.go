package scenes

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/cbodonnell/snake/client/input"
	"github.com/cbodonnell/snake/client/objects"
	"github.com/cbodonnell/snake/client/session"
	"github.com/cbodonnell/snake/client/sound"
	"github.com/cbodonnell/snake/pkg/game/types"
	pkginput "github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// BoardTop leaves room for the HUD above the board
	BoardTop = 40
	// ButtonBarHeight is the space below the board for the on-screen buttons
	ButtonBarHeight = 60
	// popupDuration is how long the "+1" label floats over the head
	popupDuration = 600 * time.Millisecond
)

// GameScene draws the session's snapshots and sends keyboard, swipe and
// on-screen button input back to it.
type GameScene struct {
	*BaseScene

	session  session.Session
	player   *sound.Player
	width    int
	height   int
	ui       *ebitenui.UI
	root     *objects.LayeredObject
	board    *objects.BoardObject
	hud      *objects.HUDObject
	overlay  *objects.TextOverlayObject
	swipes   *input.SwipeTracker
	last     *types.Snapshot
	popupID  int
}

var _ Scene = &GameScene{}

type NewGameSceneOptions struct {
	Session session.Session
	// Player is optional; a nil player is silent
	Player  *sound.Player
	Width   int
	Height  int
}

func NewGameScene(opts NewGameSceneOptions) (Scene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	root := objects.NewLayeredObject("game-root")
	return &GameScene{
		BaseScene: NewBaseScene(root),
		session:   opts.Session,
		player:    opts.Player,
		width:     opts.Width,
		height:    opts.Height,
		root:      root,
		swipes:    &input.SwipeTracker{},
	}, nil
}

func (s *GameScene) Init() error {
	side := s.height - BoardTop - ButtonBarHeight
	if s.width < side {
		side = s.width
	}
	left := (s.width - side) / 2
	area := image.Rect(left, BoardTop, left+side, BoardTop+side)

	s.board = objects.NewBoardObject("board", area)
	s.hud = objects.NewHUDObject("hud", left, BoardTop-12)
	s.overlay = objects.NewTextOverlayObject("overlay", "", &objects.NewBaseObjectOpts{ZIndex: objects.LayerOverlay})

	for id, child := range map[string]objects.GameObject{"board": s.board, "hud": s.hud, "overlay": s.overlay} {
		if err := s.root.AddChild(id, child); err != nil {
			return fmt.Errorf("failed to add %s: %v", id, err)
		}
	}

	s.renderUI()
	return s.BaseScene.Init()
}

func (s *GameScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	fontFace := fonts.TTFSmallFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	buttonBar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.Insets{Bottom: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	rootContainer.AddChild(buttonBar)

	for _, label := range []string{"Start", "Pause", "Resume", "Restart"} {
		buttonName := label
		button := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   15,
				Right:  15,
				Top:    5,
				Bottom: 5,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.send(pkginput.Event{Source: pkginput.SourceButton, Button: buttonName})
			}),
		)
		buttonBar.AddChild(button)
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameScene) send(event pkginput.Event) {
	if err := s.session.Send(event); err != nil {
		log.Error("Failed to send input: %v", err)
	}
}

func (s *GameScene) Update() error {
	s.ui.Update()

	for _, event := range input.KeyEvents() {
		s.send(event)
	}
	if event, ok := s.swipes.Update(); ok {
		s.send(event)
	}

	snapshot := s.session.Snapshot()
	if snapshot != nil {
		s.applySnapshot(snapshot)
	}

	return s.BaseScene.Update()
}

func (s *GameScene) applySnapshot(snapshot *types.Snapshot) {
	prev := s.last
	s.last = snapshot
	s.board.SetSnapshot(snapshot)
	s.hud.SetSnapshot(snapshot)
	s.overlay.SetText(overlayText(snapshot))
	s.player.Observe(snapshot)

	if prev != nil && prev.SessionID == snapshot.SessionID && snapshot.Score > prev.Score {
		s.addEatEffect(snapshot, snapshot.Score-prev.Score)
	}
}

// addEatEffect floats a "+N" over the head of the snake.
func (s *GameScene) addEatEffect(snapshot *types.Snapshot, points int) {
	for y := 0; y < snapshot.Height; y++ {
		for x := 0; x < snapshot.Width; x++ {
			if snapshot.CellAt(x, y) != types.CellHead {
				continue
			}
			cx, cy := s.board.CellCenter(types.Position{X: x, Y: y})
			s.popupID++
			popup := objects.NewScorePopup(fmt.Sprintf("popup-%d", s.popupID), points, cx, cy, objects.ColorHead, popupDuration)
			if err := s.root.AddChild(popup.GetID(), popup); err != nil {
				log.Error("Failed to add score popup: %v", err)
			}
			return
		}
	}
}

func overlayText(snapshot *types.Snapshot) (string, string) {
	switch snapshot.Phase {
	case types.PhaseNotStarted:
		return "Snake", "Press Enter or Start to play"
	case types.PhasePaused:
		return "Paused", "Press Space or Resume to continue"
	case types.PhaseGameOver:
		if snapshot.Won {
			return "You win!", fmt.Sprintf("Score %d. Press Enter to play again", snapshot.Score)
		}
		return "Game Over", fmt.Sprintf("Score %d. Press Enter to play again", snapshot.Score)
	default:
		return "", ""
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
