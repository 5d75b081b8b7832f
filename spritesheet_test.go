package monocle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *dataNode {
	t.Helper()
	n, err := parseData([]byte(doc))
	require.NoError(t, err)
	return n
}

func fakeSheets(sheets ...*Spritesheet) sheetLookup {
	return func(name string) (*Spritesheet, bool) {
		for _, s := range sheets {
			if s.Name == name {
				return s, true
			}
		}
		return nil, false
	}
}

func TestParseSprite(t *testing.T) {
	sheet := &Spritesheet{Name: "earth", Width: 128, Height: 64}
	s, err := parseSprite("ball", mustParse(t, `{
		"width": 64, "height": 32, "hotspot-x": 32, "hotspot-y": 16,
		"hitbox-x": 2, "hitbox-width": 60,
		"frames": [{"x": 0, "y": 0, "spritesheet": "earth"}, {"x": 64, "y": 32, "spritesheet": "earth"}]
	}`), fakeSheets(sheet))
	require.NoError(t, err)

	assert.Equal(t, "ball", s.Name)
	assert.Equal(t, 64, s.Width)
	assert.Equal(t, 32, s.Height)
	assert.Equal(t, 32, s.HotX)
	assert.Equal(t, 16, s.HotY)
	assert.Equal(t, Rect{X: 2, Y: 0, Width: 60, Height: 32}, s.Hitbox)
	require.Len(t, s.Frames, 2)
	assert.Same(t, sheet, s.Frames[1].Sheet)
	assert.Equal(t, 64, s.Frames[1].X)
	assert.Equal(t, 32, s.Frames[1].Y)
}

func TestParseSpriteErrors(t *testing.T) {
	sheets := fakeSheets(&Spritesheet{Name: "s", Width: 8, Height: 8})
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[1]`},
		{"zero width", `{"width": 0, "height": 8, "frames": [{"spritesheet": "s"}]}`},
		{"no frames", `{"width": 8, "height": 8}`},
		{"empty frames", `{"width": 8, "height": 8, "frames": []}`},
		{"frame without sheet", `{"width": 8, "height": 8, "frames": [{"x": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSprite("x", mustParse(t, tt.doc), sheets)
			assert.Error(t, err)
		})
	}

	_, err := parseSprite("x", mustParse(t, `{"width": 8, "height": 8, "frames": [{"spritesheet": "other"}]}`), sheets)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestParseFont(t *testing.T) {
	sheet := &Spritesheet{Name: "glyphs", Width: 80, Height: 40}
	f, err := parseFont("mono", mustParse(t, `{
		"width": 8, "height": 10, "first-index": 32, "last-index": 127, "spritesheet": "glyphs"
	}`), fakeSheets(sheet))
	require.NoError(t, err)

	assert.Equal(t, 8, f.TileW, "tile width defaults to the advance")
	assert.Equal(t, 10, f.TileH)
	assert.Same(t, sheet, f.Sheet)

	// Ten glyphs per row.
	x, y, ok := f.glyph(' ')
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y, ok = f.glyph('*') // 42 = 32 + 10
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 10}, [2]int{x, y})
	x, y, ok = f.glyph('%') // 37
	require.True(t, ok)
	assert.Equal(t, [2]int{40, 0}, [2]int{x, y})

	_, _, ok = f.glyph('\t')
	assert.False(t, ok)
	_, _, ok = f.glyph('é')
	assert.False(t, ok)
}

func TestParseFontTileSize(t *testing.T) {
	f, err := parseFont("f", mustParse(t, `{
		"width": 6, "height": 8, "tile-width": 8, "tile-height": 12,
		"first-index": 0, "last-index": 0, "spritesheet": "s"
	}`), fakeSheets(&Spritesheet{Name: "s", Width: 8, Height: 12}))
	require.NoError(t, err)
	assert.Equal(t, 8, f.TileW)
	assert.Equal(t, 12, f.TileH)
}

func TestParseFontErrors(t *testing.T) {
	sheets := fakeSheets(&Spritesheet{Name: "s", Width: 8, Height: 8})
	for _, doc := range []string{
		`"font"`,
		`{"width": 8, "height": 0, "spritesheet": "s"}`,
		`{"width": 8, "height": 8, "first-index": 5, "last-index": 4, "spritesheet": "s"}`,
		`{"width": 8, "height": 8}`,
	} {
		_, err := parseFont("f", mustParse(t, doc), sheets)
		assert.Error(t, err, doc)
	}
	_, err := parseFont("f", mustParse(t, `{"width": 8, "height": 8, "spritesheet": "missing"}`), sheets)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestDecodeSpritesheetRejectsGarbage(t *testing.T) {
	_, err := decodeSpritesheet("junk", []byte("not an image"))
	assert.Error(t, err)
}
