package monocle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepWrapsFrames(t *testing.T) {
	sprite := &Sprite{Width: 1, Height: 1, Frames: make([]SpriteFrame, 4)}
	tests := []struct {
		name  string
		f, df float64
		want  float64
	}{
		{"forward", 0, 1, 1},
		{"wrap forward", 3.5, 1, 0.5},
		{"wrap backward", 0, -1, 3},
		{"large backward", 1, -6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &GameObject{F: tt.f, DF: tt.df, Sprite: sprite}
			o.step()
			assert.InDelta(t, tt.want, o.F, 1e-9)
		})
	}
}

func TestStepWithoutSpriteDoesNotWrap(t *testing.T) {
	o := &GameObject{X: 1, Y: 2, DX: 3, DY: -4, F: 10, DF: 2}
	o.step()
	assert.Equal(t, 4.0, o.X)
	assert.Equal(t, -2.0, o.Y)
	assert.Equal(t, 12.0, o.F)
}

func TestRenderOrder(t *testing.T) {
	sprite := &Sprite{Frames: make([]SpriteFrame, 1)}
	a := &GameObject{Token: 1, Depth: 0, Visible: true, Sprite: sprite}
	b := &GameObject{Token: 2, Depth: 5, Visible: true, Sprite: sprite}
	c := &GameObject{Token: 3, Depth: 0, Visible: true, Sprite: sprite}
	hidden := &GameObject{Token: 4, Visible: false, Sprite: sprite}
	custom := &GameObject{Token: 5, Visible: true, CustomRender: true, Sprite: sprite}
	bare := &GameObject{Token: 6, Visible: true}

	got := renderOrder([]*GameObject{a, b, c, hidden, custom, bare})
	assert.Equal(t, []*GameObject{b, a, c}, got)
}

func TestCreateAndDestroyObject(t *testing.T) {
	e := newTestEngine(t)
	obj, err := e.CreateObject(5, 6, "")
	assert.NoError(t, err)
	assert.Equal(t, Token(1), obj.Token)
	assert.True(t, obj.Visible)
	assert.Equal(t, 1.0, obj.DF)

	got, ok := e.Registry().Lookup(obj.Token)
	assert.True(t, ok)
	assert.Same(t, obj, got)

	e.DestroyObject(obj)
	_, ok = e.Registry().Lookup(obj.Token)
	assert.False(t, ok)

	e.DestroyObject(nil)
	e.DestroyObject(&GameObject{})
}

func TestHitboxAndOverlaps(t *testing.T) {
	sprite := &Sprite{
		Width: 10, Height: 10, HotX: 5, HotY: 5,
		Hitbox: Rect{X: 1, Y: 1, Width: 8, Height: 8},
	}
	a := &GameObject{X: 100, Y: 100, Sprite: sprite}
	assert.Equal(t, Rect{X: 96, Y: 96, Width: 8, Height: 8}, a.Hitbox())

	b := &GameObject{X: 107, Y: 100, Sprite: sprite}
	assert.True(t, a.Overlaps(b))
	c := &GameObject{X: 120, Y: 100, Sprite: sprite}
	assert.False(t, a.Overlaps(c))

	bare := &GameObject{X: 100, Y: 100}
	assert.Equal(t, Rect{}, bare.Hitbox())
	assert.False(t, a.Overlaps(bare))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(10, 5))
	assert.False(t, r.Contains(11, 2))
	assert.False(t, r.Contains(2, -1))
}
