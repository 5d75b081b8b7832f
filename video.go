package monocle

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = validator.New()

// Defaults applied to zero config fields.
const (
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultFrameRate     = 25 // 40 ms frames
	DefaultTitle         = "monocle"
	DefaultScreenshotDir = "screenshots"
)

// VideoConfig describes the window. The logical screen is always
// Width x Height; fullscreen scales it.
type VideoConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width" validate:"min=1,max=8192"`
	Height     int    `json:"height" validate:"min=1,max=8192"`
	Fullscreen bool   `json:"fullscreen"`
	FrameRate  int    `json:"frame_rate" validate:"min=1,max=240"`
}

// Config configures an Engine.
type Config struct {
	Video VideoConfig `json:"video"`

	// ResourceDirs and ResourceZips are added as search roots in order,
	// directories first.
	ResourceDirs []string `json:"resource_dirs" validate:"dive,required"`
	ResourceZips []string `json:"resource_zips" validate:"dive,required"`

	ShowFPS       bool   `json:"show_fps"`
	Debug         bool   `json:"debug"`
	ScreenshotDir string `json:"screenshot_dir"`
}

func (v *VideoConfig) applyDefaults() {
	if v.Title == "" {
		v.Title = DefaultTitle
	}
	if v.Width == 0 {
		v.Width = DefaultWidth
	}
	if v.Height == 0 {
		v.Height = DefaultHeight
	}
	if v.FrameRate == 0 {
		v.FrameRate = DefaultFrameRate
	}
}

func (c *Config) applyDefaults() {
	c.Video.applyDefaults()
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("monocle: %w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ConfigVideo replaces the video configuration. Zero fields take their
// defaults. While the engine runs the window is updated at once.
func (e *Engine) ConfigVideo(cfg VideoConfig) error {
	cfg.applyDefaults()
	if err := validateStruct(&cfg); err != nil {
		return err
	}
	e.cfg.Video = cfg
	e.fullscreen = cfg.Fullscreen
	if e.running {
		e.applyVideo()
	}
	Logger().Debug("video configured",
		zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen), zap.Int("frame_rate", cfg.FrameRate))
	return nil
}

// VideoConfig returns the current video configuration.
func (e *Engine) VideoConfig() VideoConfig {
	return e.cfg.Video
}

// IsFullscreen reports whether the window is fullscreen.
func (e *Engine) IsFullscreen() bool {
	return e.fullscreen
}

// ToggleFullscreen switches between windowed and fullscreen and returns
// the new state.
func (e *Engine) ToggleFullscreen() bool {
	e.fullscreen = !e.fullscreen
	if e.running {
		ebiten.SetFullscreen(e.fullscreen)
		e.applyCursor()
	}
	return e.fullscreen
}

// SetClearColor sets the color the screen is cleared to every frame.
func (e *Engine) SetClearColor(r, g, b uint8) {
	e.clearColor = RGBA8(r, g, b, 255)
}

// ClearColor returns the clear color.
func (e *Engine) ClearColor() Color {
	return e.clearColor
}

// HideMouseInFullscreen hides the cursor while the window is fullscreen.
func (e *Engine) HideMouseInFullscreen(hide bool) {
	e.hideMouse = hide
	if e.running {
		e.applyCursor()
	}
}

func (e *Engine) applyVideo() {
	v := e.cfg.Video
	ebiten.SetWindowTitle(v.Title)
	ebiten.SetWindowSize(v.Width, v.Height)
	ebiten.SetTPS(v.FrameRate)
	ebiten.SetFullscreen(e.fullscreen)
	e.applyCursor()
}

func (e *Engine) applyCursor() {
	if e.hideMouse && e.fullscreen {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
