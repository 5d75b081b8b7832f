package monocle

// frameHost is what the event pump needs from the engine.
type frameHost interface {
	liveObjects() []*GameObject
	alive(obj *GameObject) bool
	pollInput(buf []RawEvent) []RawEvent
	windowClosing() bool
	updateObjects()
	beginFrame()
	renderObjects()
	endFrame()
}

type phase uint8

const (
	phaseInit phase = iota
	phasePreInput
	phaseInput
	phasePrePhysics
	phasePreRender
	phaseRender
	phasePostRender
	phaseQuit
)

// tickKinds maps the per-object phases to the kind they emit.
var tickKinds = [...]EventKind{
	phasePreInput:   EventPreInput,
	phasePrePhysics: EventPrePhysics,
	phasePreRender:  EventPreRender,
	phaseRender:     EventRender,
}

// pump is the frame state machine. Each call to next yields exactly one
// event; one frame is
//
//	PreInput(global) PreInput(obj)... input... PrePhysics(global) PrePhysics(obj)...
//	PreRender(global) PreRender(obj)... Render(global) Render(obj)... PostRender
//
// preceded once by Init. The default physics step runs after the last
// PrePhysics event and default rendering after the last Render event.
// After Quit every call yields Quit.
type pump struct {
	phase   phase
	global  bool // the global tick of the current phase is still pending
	objects []*GameObject
	input   []RawEvent
}

// begin enters a per-object phase and snapshots the objects alive now.
// Objects created during the phase get their first tick in the next one.
func (p *pump) begin(ph phase, h frameHost) {
	p.phase = ph
	p.global = true
	p.objects = append(p.objects[:0], h.liveObjects()...)
}

// tick yields the next event of the current per-object phase, skipping
// objects destroyed since the snapshot.
func (p *pump) tick(h frameHost) (RawEvent, bool) {
	kind := tickKinds[p.phase]
	if p.global {
		p.global = false
		return RawEvent{Kind: kind}, true
	}
	for len(p.objects) > 0 {
		obj := p.objects[0]
		p.objects[0] = nil
		p.objects = p.objects[1:]
		if h.alive(obj) {
			return RawEvent{Kind: kind, Self: obj.Token}, true
		}
	}
	return RawEvent{}, false
}

func (p *pump) next(h frameHost) RawEvent {
	for {
		switch p.phase {
		case phaseInit:
			p.begin(phasePreInput, h)
			return RawEvent{Kind: EventInit}

		case phasePreInput:
			if ev, ok := p.tick(h); ok {
				return ev
			}
			p.phase = phaseInput
			p.input = h.pollInput(p.input[:0])

		case phaseInput:
			if h.windowClosing() {
				p.phase = phaseQuit
				continue
			}
			if len(p.input) == 0 {
				p.begin(phasePrePhysics, h)
				continue
			}
			ev := p.input[0]
			p.input = p.input[1:]
			if ev.Kind == EventQuit {
				p.phase = phaseQuit
				continue
			}
			return ev

		case phasePrePhysics:
			if ev, ok := p.tick(h); ok {
				return ev
			}
			h.updateObjects()
			p.begin(phasePreRender, h)

		case phasePreRender:
			if ev, ok := p.tick(h); ok {
				return ev
			}
			h.beginFrame()
			p.begin(phaseRender, h)

		case phaseRender:
			if ev, ok := p.tick(h); ok {
				return ev
			}
			h.renderObjects()
			p.phase = phasePostRender
			return RawEvent{Kind: EventPostRender}

		case phasePostRender:
			h.endFrame()
			p.begin(phasePreInput, h)

		case phaseQuit:
			p.objects = p.objects[:0]
			p.input = p.input[:0]
			return RawEvent{Kind: EventQuit}
		}
	}
}
