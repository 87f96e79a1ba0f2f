package objects

import (
	"fmt"
	"sort"
)

// Z-indexes of the game scene's layers, drawn lowest first.
const (
	LayerBoard   = 0
	LayerHUD     = 1
	LayerEffects = 5
	LayerOverlay = 10
)

// LayeredObject draws its children by layer. Children on the same layer are
// drawn in the order they were added.
type LayeredObject struct {
	*BaseObject

	drawOrder []GameObject
}

var _ GameObject = &LayeredObject{}

func NewLayeredObject(id string) *LayeredObject {
	return &LayeredObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *LayeredObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("object %s is already on a layer", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", id, err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	o.drawOrder = append(o.drawOrder, child)
	sort.SliceStable(o.drawOrder, func(i, j int) bool {
		return o.drawOrder[i].GetZIndex() < o.drawOrder[j].GetZIndex()
	})
	return nil
}

func (o *LayeredObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("object %s is not on any layer", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", id, err)
	}
	o.children.Remove(id)
	child.SetParent(nil)

	kept := o.drawOrder[:0]
	for _, obj := range o.drawOrder {
		if obj != child {
			kept = append(kept, obj)
		}
	}
	o.drawOrder = kept
	return nil
}

// GetChildren returns the children in draw order.
func (o *LayeredObject) GetChildren() []GameObject {
	return o.drawOrder
}
