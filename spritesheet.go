package monocle

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Spritesheet is a decoded image that sprites and fonts cut frames from.
type Spritesheet struct {
	Name          string
	Image         *ebiten.Image // nil until decoded; drawn as a magenta box
	Width, Height int
}

// SpriteFrame is one animation frame: the top-left corner of the frame
// inside Sheet. Every frame of a sprite has the sprite's size.
type SpriteFrame struct {
	Sheet *Spritesheet
	X, Y  int
}

// Sprite is an animated image. HotX, HotY is the point drawn at the
// requested position.
type Sprite struct {
	Name          string
	Width, Height int
	HotX, HotY    int
	Hitbox        Rect // relative to the hotspot-adjusted top-left corner
	Frames        []SpriteFrame
}

// Font is a fixed-width bitmap font: glyphs First..Last laid out in reading
// order on Sheet, each TileW x TileH, advancing Width per character.
type Font struct {
	Name          string
	Width, Height int
	First, Last   int
	TileW, TileH  int
	HotX, HotY    int
	Sheet         *Spritesheet
}

// glyph returns the source corner of character c, or false when the font
// has no glyph for it.
func (f *Font) glyph(c rune) (x, y int, ok bool) {
	if int(c) < f.First || int(c) > f.Last || f.TileW <= 0 {
		return 0, 0, false
	}
	perRow := f.Sheet.Width / f.TileW
	if perRow <= 0 {
		return 0, 0, false
	}
	i := int(c) - f.First
	return (i % perRow) * f.TileW, (i / perRow) * f.TileH, true
}

// decodeSpritesheet decodes png, jpeg, gif, bmp or webp image data.
func decodeSpritesheet(name string, data []byte) (*Spritesheet, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("monocle: decode spritesheet %q: %w", name, err)
	}
	b := img.Bounds()
	return &Spritesheet{
		Name:   name,
		Image:  ebiten.NewImageFromImage(img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

type sheetLookup func(name string) (*Spritesheet, bool)

// parseSprite builds a sprite from its resource-map entry.
func parseSprite(name string, n *dataNode, sheets sheetLookup) (*Sprite, error) {
	if n == nil || n.tag != DataObject {
		return nil, fmt.Errorf("monocle: sprite %q: entry is not an object", name)
	}
	s := &Sprite{
		Name:   name,
		Width:  int(n.number("width", 0)),
		Height: int(n.number("height", 0)),
		HotX:   int(n.number("hotspot-x", 0)),
		HotY:   int(n.number("hotspot-y", 0)),
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("monocle: sprite %q: width and height must be positive", name)
	}
	s.Hitbox = Rect{
		X:      n.number("hitbox-x", 0),
		Y:      n.number("hitbox-y", 0),
		Width:  n.number("hitbox-width", float64(s.Width)),
		Height: n.number("hitbox-height", float64(s.Height)),
	}
	frames := n.lookup("frames")
	if frames == nil || frames.tag != DataArray || len(frames.items) == 0 {
		return nil, fmt.Errorf("monocle: sprite %q: no frames", name)
	}
	s.Frames = make([]SpriteFrame, 0, len(frames.items))
	for i, f := range frames.items {
		sheetName, ok := f.str("spritesheet")
		if !ok {
			return nil, fmt.Errorf("monocle: sprite %q: frame %d has no spritesheet", name, i)
		}
		sheet, ok := sheets(sheetName)
		if !ok {
			return nil, fmt.Errorf("monocle: sprite %q: frame %d: spritesheet %q: %w", name, i, sheetName, ErrResourceNotFound)
		}
		s.Frames = append(s.Frames, SpriteFrame{
			Sheet: sheet,
			X:     int(f.number("x", 0)),
			Y:     int(f.number("y", 0)),
		})
	}
	return s, nil
}

// parseFont builds a font from its resource-map entry. The tile size
// defaults to the advance size.
func parseFont(name string, n *dataNode, sheets sheetLookup) (*Font, error) {
	if n == nil || n.tag != DataObject {
		return nil, fmt.Errorf("monocle: font %q: entry is not an object", name)
	}
	f := &Font{
		Name:   name,
		Width:  int(n.number("width", 0)),
		Height: int(n.number("height", 0)),
		First:  int(n.number("first-index", 0)),
		Last:   int(n.number("last-index", 0)),
		HotX:   int(n.number("hotspot-x", 0)),
		HotY:   int(n.number("hotspot-y", 0)),
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("monocle: font %q: width and height must be positive", name)
	}
	if f.Last < f.First {
		return nil, fmt.Errorf("monocle: font %q: last-index %d before first-index %d", name, f.Last, f.First)
	}
	f.TileW = int(n.number("tile-width", 0))
	if f.TileW <= 0 {
		f.TileW = f.Width
	}
	f.TileH = int(n.number("tile-height", float64(f.Height)))
	sheetName, ok := n.str("spritesheet")
	if !ok {
		return nil, fmt.Errorf("monocle: font %q: no spritesheet", name)
	}
	sheet, ok := sheets(sheetName)
	if !ok {
		return nil, fmt.Errorf("monocle: font %q: spritesheet %q: %w", name, sheetName, ErrResourceNotFound)
	}
	f.Sheet = sheet
	return f, nil
}

// Placeholder drawn for spritesheets without an image.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
