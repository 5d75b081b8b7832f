package monocle

// EventSink receives every event PopEvent decodes successfully, after the
// host has it.
type EventSink interface {
	EmitEvent(ev Event)
}

// SetEventSink attaches sink to PopEvent. A nil sink detaches.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}
