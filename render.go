package monocle

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandRect      CommandType = iota // solid fill via the white pixel
	CommandImage                        // sub-image of a spritesheet
	CommandDebugText                    // built-in debug font
)

// drawCommand is one queued draw. Commands are recorded while the host
// handles Render events and replayed in order when Ebitengine draws.
type drawCommand struct {
	Type  CommandType
	X, Y  float64
	W, H  int
	Color Color

	// CommandImage only. A nil sheet image draws the magenta placeholder.
	Sheet      *Spritesheet
	SrcX, SrcY int

	// CommandDebugText only.
	Text string
}

// queue appends a command. Draw calls outside a frame are dropped.
func (e *Engine) queue(cmd drawCommand) {
	if !e.drawing {
		return
	}
	e.commands = append(e.commands, cmd)
}

// DrawRect fills a rectangle in window pixels.
func (e *Engine) DrawRect(x, y, w, h int, r, g, b, a uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	e.queue(drawCommand{Type: CommandRect, X: float64(x), Y: float64(y), W: w, H: h, Color: RGBA8(r, g, b, a)})
}

// DrawFromSpritesheet copies the w x h region at (srcX, srcY) of sheet to
// (x, y).
func (e *Engine) DrawFromSpritesheet(sheet *Spritesheet, x, y, srcX, srcY, w, h int) {
	if sheet == nil || w <= 0 || h <= 0 {
		return
	}
	e.queue(drawCommand{
		Type: CommandImage, X: float64(x), Y: float64(y), W: w, H: h,
		Sheet: sheet, SrcX: srcX, SrcY: srcY,
	})
}

// DrawSprite draws one frame of s with its hotspot at (x, y). The frame
// index wraps into range.
func (e *Engine) DrawSprite(s *Sprite, x, y, frame int) {
	if s == nil || len(s.Frames) == 0 {
		return
	}
	n := len(s.Frames)
	frame %= n
	if frame < 0 {
		frame += n
	}
	f := s.Frames[frame]
	e.DrawFromSpritesheet(f.Sheet, x-s.HotX, y-s.HotY, f.X, f.Y, s.Width, s.Height)
}

// DrawString draws text with font starting at (x, y). Characters the font
// has no glyph for still advance the cursor.
func (e *Engine) DrawString(font *Font, x, y int, text string) {
	if font == nil {
		return
	}
	dx := x - font.HotX
	dy := y - font.HotY
	for _, c := range text {
		if sx, sy, ok := font.glyph(c); ok {
			e.DrawFromSpritesheet(font.Sheet, dx, dy, sx, sy, font.TileW, font.TileH)
		}
		dx += font.Width
	}
}

// DrawDebugString draws text with Ebitengine's built-in debug font. It
// needs no font resource.
func (e *Engine) DrawDebugString(x, y int, text string) {
	if text == "" {
		return
	}
	e.queue(drawCommand{Type: CommandDebugText, X: float64(x), Y: float64(y), Text: text})
}

// renderDefault queues the sprites of every object drawn by default
// rendering.
func (e *Engine) renderDefault(objects []*GameObject) {
	for _, o := range renderOrder(objects) {
		e.DrawSprite(o.Sprite, int(o.X), int(o.Y), int(o.F))
	}
}

// submit replays cmds onto dst.
func submit(dst *ebiten.Image, cmds []drawCommand) {
	var op ebiten.DrawImageOptions
	for i := range cmds {
		cmd := &cmds[i]
		op.GeoM.Reset()
		op.ColorScale.Reset()
		switch cmd.Type {
		case CommandRect:
			op.GeoM.Scale(float64(cmd.W), float64(cmd.H))
			op.GeoM.Translate(cmd.X, cmd.Y)
			op.ColorScale.ScaleWithColor(cmd.Color.toRGBA())
			dst.DrawImage(ensureWhitePixel(), &op)
		case CommandImage:
			if cmd.Sheet.Image == nil {
				op.GeoM.Scale(float64(cmd.W), float64(cmd.H))
				op.GeoM.Translate(cmd.X, cmd.Y)
				dst.DrawImage(ensureMagentaImage(), &op)
				continue
			}
			src := image.Rect(cmd.SrcX, cmd.SrcY, cmd.SrcX+cmd.W, cmd.SrcY+cmd.H)
			op.GeoM.Translate(cmd.X, cmd.Y)
			dst.DrawImage(cmd.Sheet.Image.SubImage(src).(*ebiten.Image), &op)
		case CommandDebugText:
			ebitenutil.DebugPrintAt(dst, cmd.Text, int(cmd.X), int(cmd.Y))
		}
	}
}
