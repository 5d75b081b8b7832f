package monocle

// Injected events are consumed one per frame, in the input phase, ahead of
// real input. Window coordinates are used for mouse events.

func (e *Engine) inject(ev RawEvent) {
	e.injectQueue = append(e.injectQueue, ev)
}

// InjectKeyDown queues a KeyDown event.
func (e *Engine) InjectKeyDown(k Key) {
	e.inject(RawEvent{Kind: EventKeyDown, Key: k})
}

// InjectKeyUp queues a KeyUp event.
func (e *Engine) InjectKeyUp(k Key) {
	e.inject(RawEvent{Kind: EventKeyUp, Key: k})
}

// InjectKey is a convenience that queues a KeyDown followed by a KeyUp.
// Consumes two frames.
func (e *Engine) InjectKey(k Key) {
	e.InjectKeyDown(k)
	e.InjectKeyUp(k)
}

// InjectMouseMove queues a MouseMove event.
func (e *Engine) InjectMouseMove(x, y int) {
	e.inject(RawEvent{Kind: EventMouseMove, MouseX: x, MouseY: y})
}

// InjectMouseButton queues a MouseButtonDown or MouseButtonUp event.
func (e *Engine) InjectMouseButton(button int, down bool) {
	kind := EventMouseButtonUp
	if down {
		kind = EventMouseButtonDown
	}
	e.inject(RawEvent{Kind: kind, MouseButton: button})
}

// InjectClick queues a move to (x, y), a press and a release of button.
// Consumes three frames.
func (e *Engine) InjectClick(x, y, button int) {
	e.InjectMouseMove(x, y)
	e.InjectMouseButton(button, true)
	e.InjectMouseButton(button, false)
}

// InjectQuit queues a quit request. Once it is consumed every event is Quit.
func (e *Engine) InjectQuit() {
	e.inject(RawEvent{Kind: EventQuit})
}

// popInjected removes the oldest injected event.
func (e *Engine) popInjected() (RawEvent, bool) {
	if len(e.injectQueue) == 0 {
		return RawEvent{}, false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	return ev, true
}
