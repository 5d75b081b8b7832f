package monocle

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Engine owns the window, resources, audio and game objects, and produces
// the frame event stream.
//
// A host drives the engine by popping events in a loop. Run starts
// Ebitengine and calls the host loop on its own goroutine; control passes
// between the two by channel handoff so engine state is only touched by one
// side at a time. Without Run, PopRawEvent steps the pump directly using
// injected input only, which is how tests drive it.
type Engine struct {
	cfg      Config
	res      *Resources
	registry *Registry
	mixer    *Mixer

	pump        pump
	input       ebitenInput
	injectQueue []RawEvent
	script      *InputScript
	sink        EventSink

	commands   []drawCommand
	drawing    bool
	clearColor Color
	fullscreen bool
	hideMouse  bool

	debug           bool
	frame           uint64
	stats           frameStats
	fps             fpsOverlay
	screenshotQueue []string

	// handoff, valid while running
	running    bool
	want       chan struct{}
	events     chan RawEvent
	hostDone   chan error
	parked     bool
	terminated bool
	hostErr    error
}

// New creates an engine. Zero config fields take their defaults; the
// resource roots in cfg are added in order.
func New(cfg Config) (*Engine, error) {
	cfg.applyDefaults()
	if err := validateStruct(&cfg); err != nil {
		return nil, err
	}
	res := NewResources()
	for _, dir := range cfg.ResourceDirs {
		if err := res.AddDirectory(dir); err != nil {
			res.Close()
			return nil, err
		}
	}
	for _, zip := range cfg.ResourceZips {
		if err := res.AddZipFile(zip); err != nil {
			res.Close()
			return nil, err
		}
	}
	e := &Engine{
		cfg:        cfg,
		res:        res,
		registry:   NewRegistry(),
		mixer:      newMixer(res),
		clearColor: ColorBlack,
		fullscreen: cfg.Video.Fullscreen,
		debug:      cfg.Debug,
	}
	e.stats.reset(0)
	return e, nil
}

// Resources returns the engine's resource table.
func (e *Engine) Resources() *Resources { return e.res }

// Registry returns the registry that resolves object tokens.
func (e *Engine) Registry() *Registry { return e.registry }

// Mixer returns the engine's audio mixer.
func (e *Engine) Mixer() *Mixer { return e.mixer }

// Frame returns the number of completed frames.
func (e *Engine) Frame() uint64 { return e.frame }

// Close stops audio and releases every resource root.
func (e *Engine) Close() error {
	e.mixer.StopMusic()
	return e.res.Close()
}

// Run opens the window and runs host on a new goroutine until it returns.
// It must be called from the main goroutine. The host's error is returned;
// closing the window only makes the event stream yield Quit.
func (e *Engine) Run(host func(*Engine) error) error {
	if e.running {
		return errors.New("monocle: engine already running")
	}
	e.want = make(chan struct{})
	e.events = make(chan RawEvent)
	e.hostDone = make(chan error, 1)
	e.parked = false
	e.terminated = false
	e.hostErr = nil
	e.running = true
	defer func() { e.running = false }()

	e.applyVideo()
	ebiten.SetWindowClosingHandled(true)

	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("monocle: host panicked: %v", r)
			}
			e.hostDone <- err
		}()
		err = host(e)
	}()

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("monocle: run: %w", err)
	}
	return e.hostErr
}

// PopRawEvent returns the next event record. While the engine runs it
// blocks until Ebitengine's next tick reaches the host.
func (e *Engine) PopRawEvent() RawEvent {
	if !e.running {
		return e.nextEvent()
	}
	e.want <- struct{}{}
	return <-e.events
}

// PopEvent pops the next event and decodes it against the engine registry.
func (e *Engine) PopEvent() (Event, error) {
	ev, err := DecodeEvent(e.PopRawEvent(), e.registry)
	if err == nil && e.sink != nil {
		e.sink.EmitEvent(ev)
	}
	return ev, err
}

func (e *Engine) nextEvent() RawEvent {
	ev := e.pump.next(e)
	e.stats.count(ev.Kind)
	return ev
}

// Update implements ebiten.Game. It serves events to the host until the
// frame's PostRender has been handled and the host asks again, so the host
// is parked whenever Draw runs.
func (e *Engine) Update() error {
	if e.terminated {
		return ebiten.Termination
	}
	for {
		if !e.parked {
			if err := e.awaitHost(); err != nil {
				return err
			}
		}
		ev := e.nextEvent()
		e.parked = false
		e.events <- ev
		if ev.Kind == EventPostRender {
			return e.awaitHost()
		}
	}
}

// awaitHost blocks until the host asks for an event or returns.
func (e *Engine) awaitHost() error {
	select {
	case <-e.want:
		e.parked = true
		return nil
	case err := <-e.hostDone:
		e.hostErr = err
		e.terminated = true
		if err != nil {
			Logger().Error("host loop failed", zap.Error(err))
		}
		return ebiten.Termination
	}
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.clearColor.toRGBA())
	submit(screen, e.commands)
	if e.cfg.ShowFPS {
		e.fps.draw(screen)
	}
	e.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen has the configured
// size regardless of the window size.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.cfg.Video.Width, e.cfg.Video.Height
}

// --- frameHost ---

func (e *Engine) liveObjects() []*GameObject {
	return e.registry.Objects()
}

func (e *Engine) alive(obj *GameObject) bool {
	cur, ok := e.registry.Lookup(obj.Token)
	return ok && cur == obj
}

func (e *Engine) pollInput(buf []RawEvent) []RawEvent {
	if e.script != nil {
		e.script.step(e)
	}
	if ev, ok := e.popInjected(); ok {
		buf = append(buf, ev)
	}
	if e.running {
		buf = e.input.poll(buf)
	}
	return buf
}

func (e *Engine) windowClosing() bool {
	return e.running && ebiten.IsWindowBeingClosed()
}

func (e *Engine) updateObjects() {
	updateObjects(e.registry.Objects())
}

func (e *Engine) beginFrame() {
	clear(e.commands)
	e.commands = e.commands[:0]
	e.drawing = true
}

func (e *Engine) renderObjects() {
	e.renderDefault(e.registry.Objects())
}

func (e *Engine) endFrame() {
	e.drawing = false
	dt := 1 / float64(e.cfg.Video.FrameRate)
	e.mixer.update(float32(dt))
	if e.running && e.cfg.ShowFPS {
		e.fps.update(dt)
	}
	e.stats.objects = e.registry.Len()
	e.stats.commands = len(e.commands)
	e.debugLog(&e.stats)
	e.frame++
	e.stats.reset(e.frame)
}
