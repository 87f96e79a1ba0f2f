package scenes

import (
	"github.com/cbodonnell/snake/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the desktop client. The game holds a single scene
// and calls Init and Destroy when it swaps to another.
type Scene interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)

	GetRoot() objects.GameObject
}

// BaseScene runs the update and draw passes over a tree of objects.
type BaseScene struct {
	root objects.GameObject
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{root: root}
}

func (s *BaseScene) GetRoot() objects.GameObject { return s.root }

func (s *BaseScene) Init() error { return objects.InitTree(s.root) }

func (s *BaseScene) Destroy() error { return objects.DestroyTree(s.root) }

func (s *BaseScene) Update() error { return objects.UpdateTree(s.root) }

func (s *BaseScene) Draw(screen *ebiten.Image) { objects.DrawTree(s.root, screen) }
