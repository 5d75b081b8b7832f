package monocle

import (
	"fmt"
	"math"
	"slices"
)

// GameObject is an engine-simulated entity. The engine advances X, Y and F
// by DX, DY and DF after every PrePhysics phase and draws the sprite after
// every Render phase unless Visible is false or CustomRender is set.
type GameObject struct {
	Token Token

	X, Y   float64
	F      float64 // animation frame
	DX, DY float64
	DF     float64 // frames per tick

	// Depth orders default rendering: greater depths are drawn first.
	Depth        float64
	Visible      bool
	CustomRender bool

	Sprite *Sprite
	Kind   *Kind

	// UserData is for host code; the engine never reads it.
	UserData any
}

// Kind is an object template from the "kind" section of a resource map.
type Kind struct {
	Name         string
	DX, DY       float64
	F, DF        float64
	Depth        float64
	Sprite       *Sprite
	Visible      bool
	CustomRender bool
	Traits       []string
	Collisions   []string
}

// HasTrait reports whether the kind lists trait t.
func (k *Kind) HasTrait(t string) bool {
	return slices.Contains(k.Traits, t)
}

// CreateObject spawns an object of the named kind at (x, y) and registers it.
// An empty kind creates a bare, visible object with DF=1 and no sprite.
func (e *Engine) CreateObject(x, y float64, kind string) (*GameObject, error) {
	obj := &GameObject{X: x, Y: y, DF: 1, Visible: true}
	if kind != "" {
		k, ok := e.res.Kind(kind)
		if !ok {
			return nil, fmt.Errorf("monocle: create object: kind %q: %w", kind, ErrResourceNotFound)
		}
		obj.Kind = k
		obj.DX, obj.DY = k.DX, k.DY
		obj.F, obj.DF = k.F, k.DF
		obj.Depth = k.Depth
		obj.Sprite = k.Sprite
		obj.Visible = k.Visible
		obj.CustomRender = k.CustomRender
	}
	e.registry.Register(obj)
	return obj, nil
}

// DestroyObject unregisters obj. The engine stops producing events for it
// from the next event on.
func (e *Engine) DestroyObject(obj *GameObject) {
	if obj == nil || obj.Token == NoObject {
		return
	}
	e.registry.Unregister(obj.Token)
}

// step applies one tick of default movement and animation.
func (o *GameObject) step() {
	o.X += o.DX
	o.Y += o.DY
	o.F += o.DF
	if o.Sprite != nil && len(o.Sprite.Frames) > 0 {
		n := float64(len(o.Sprite.Frames))
		o.F = math.Mod(o.F, n)
		if o.F < 0 {
			o.F += n
		}
	}
}

// updateObjects runs the default physics step over every live object.
func updateObjects(objects []*GameObject) {
	for _, o := range objects {
		o.step()
	}
}

// renderOrder returns the objects drawn by default rendering, deepest first
// and in token order among equal depths.
func renderOrder(objects []*GameObject) []*GameObject {
	out := make([]*GameObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible && !o.CustomRender && o.Sprite != nil {
			out = append(out, o)
		}
	}
	slices.SortStableFunc(out, func(a, b *GameObject) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
	return out
}

// Hitbox returns the object's hitbox in world coordinates, or a zero Rect
// when it has no sprite.
func (o *GameObject) Hitbox() Rect {
	if o.Sprite == nil {
		return Rect{}
	}
	h := o.Sprite.Hitbox
	return Rect{
		X:      o.X - float64(o.Sprite.HotX) + h.X,
		Y:      o.Y - float64(o.Sprite.HotY) + h.Y,
		Width:  h.Width,
		Height: h.Height,
	}
}

// Overlaps reports whether the hitboxes of o and other intersect. Objects
// without sprites never overlap.
func (o *GameObject) Overlaps(other *GameObject) bool {
	if o.Sprite == nil || other.Sprite == nil {
		return false
	}
	return o.Hitbox().Intersects(other.Hitbox())
}
