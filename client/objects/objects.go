package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is a node of a scene tree.
type GameObject interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// children keeps child objects in insertion order with lookup by ID.
type children struct {
	ordered      []GameObject
	idxIDObjects map[string]GameObject
}

func newChildren() *children {
	return &children{idxIDObjects: make(map[string]GameObject)}
}

func (c *children) Add(id string, child GameObject) {
	c.ordered = append(c.ordered, child)
	c.idxIDObjects[id] = child
}

func (c *children) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *children) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

// BaseObject implements the tree plumbing of a GameObject and draws nothing.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings inside a LayeredObject
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildren(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error                 { return nil }
func (o *BaseObject) Destroy() error              { return nil }
func (o *BaseObject) Update() error               { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image)   {}
func (o *BaseObject) GetID() string               { return o.id }
func (o *BaseObject) GetZIndex() int              { return o.zIndex }
func (o *BaseObject) GetParent() GameObject       { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// InitTree initializes an object and then its children.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of an object and then the object.
func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", root.GetID(), err)
	}
	return nil
}

// UpdateTree updates an object and then its children. Children may remove
// themselves while updating.
func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", root.GetID(), err)
	}
	current := append([]GameObject(nil), root.GetChildren()...)
	for _, child := range current {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object and then its children on top.
func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
