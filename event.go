package monocle

import "strconv"

// EventKind identifies a frame event. The order matches the engine's event
// table and is part of the raw record format.
type EventKind uint8

const (
	EventQuit            EventKind = iota // window closed or quit injected; sticky
	EventInit                             // first event ever popped
	EventPreInput                         // once globally, then once per object
	EventKeyDown                          // Key
	EventKeyUp                            // Key
	EventMouseMove                        // MouseX, MouseY
	EventMouseButtonDown                  // MouseButton
	EventMouseButtonUp                    // MouseButton
	EventJoyAxisMove                      // Stick, Index (axis), Value
	EventJoyButtonDown                    // Stick, Index (button)
	EventJoyButtonUp                      // Stick, Index (button)
	EventJoyHatMove                       // Stick, Index (hat), Value
	EventPrePhysics                       // once globally, then once per object
	EventCollision                        // not produced yet
	EventPreRender                        // once globally, then once per object
	EventRender                           // once globally, then once per object
	EventPostRender                       // frame done

	eventKindCount
)

var eventKindNames = [...]string{
	EventQuit:            "Quit",
	EventInit:            "Init",
	EventPreInput:        "PreInput",
	EventKeyDown:         "KeyDown",
	EventKeyUp:           "KeyUp",
	EventMouseMove:       "MouseMove",
	EventMouseButtonDown: "MouseButtonDown",
	EventMouseButtonUp:   "MouseButtonUp",
	EventJoyAxisMove:     "JoyAxisMove",
	EventJoyButtonDown:   "JoyButtonDown",
	EventJoyButtonUp:     "JoyButtonUp",
	EventJoyHatMove:      "JoyHatMove",
	EventPrePhysics:      "PrePhysics",
	EventCollision:       "Collision",
	EventPreRender:       "PreRender",
	EventRender:          "Render",
	EventPostRender:      "PostRender",
}

// String returns the kind name.
func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return "EventKind(" + strconv.Itoa(int(k)) + ")"
}

// RawEvent is the engine's event record. Which fields are meaningful depends
// on Kind; the rest are zero. The engine reuses its record between pops, so
// callers should decode rather than hold on to one.
type RawEvent struct {
	Kind        EventKind
	Self        Token
	Key         Key
	MouseX      int
	MouseY      int
	MouseButton int
	Stick       int
	Index       int
	Value       int
}

// Event is a decoded frame event. The concrete type is one of SystemEvent,
// ObjectEvent, KeyEvent, MouseMoveEvent, MouseButtonEvent, JoyAxisEvent,
// JoyButtonEvent or JoyHatEvent.
type Event interface {
	Kind() EventKind
	event()
}

// SystemEvent carries no payload: Quit, Init and PostRender.
type SystemEvent struct {
	Type EventKind
}

// ObjectEvent is a per-frame tick: PreInput, PrePhysics, PreRender or Render.
// Object is nil for the global tick that precedes the per-object ones.
type ObjectEvent struct {
	Type   EventKind
	Object *GameObject
}

// KeyEvent is KeyDown or KeyUp.
type KeyEvent struct {
	Type EventKind
	Key  Key
}

// MouseMoveEvent reports the cursor position in window pixels.
type MouseMoveEvent struct {
	X, Y int
}

// MouseButtonEvent is MouseButtonDown or MouseButtonUp.
type MouseButtonEvent struct {
	Type   EventKind
	Button int
}

// JoyAxisEvent reports an axis position in [-32767, 32767].
type JoyAxisEvent struct {
	Joystick int
	Axis     int
	Value    int
}

// JoyButtonEvent is JoyButtonDown or JoyButtonUp.
type JoyButtonEvent struct {
	Type     EventKind
	Joystick int
	Button   int
}

// JoyHatEvent reports a hat position as a HatUp|HatRight|HatDown|HatLeft mask.
type JoyHatEvent struct {
	Joystick int
	Hat      int
	Value    int
}

// Hat direction bits.
const (
	HatCentered = 0
	HatUp       = 1 << 0
	HatRight    = 1 << 1
	HatDown     = 1 << 2
	HatLeft     = 1 << 3
)

func (e SystemEvent) Kind() EventKind      { return e.Type }
func (e ObjectEvent) Kind() EventKind      { return e.Type }
func (e KeyEvent) Kind() EventKind         { return e.Type }
func (e MouseMoveEvent) Kind() EventKind   { return EventMouseMove }
func (e MouseButtonEvent) Kind() EventKind { return e.Type }
func (e JoyAxisEvent) Kind() EventKind     { return EventJoyAxisMove }
func (e JoyButtonEvent) Kind() EventKind   { return e.Type }
func (e JoyHatEvent) Kind() EventKind      { return EventJoyHatMove }

func (SystemEvent) event()      {}
func (ObjectEvent) event()      {}
func (KeyEvent) event()         {}
func (MouseMoveEvent) event()   {}
func (MouseButtonEvent) event() {}
func (JoyAxisEvent) event()     {}
func (JoyButtonEvent) event()   {}
func (JoyHatEvent) event()      {}

// DecodeEvent converts a raw record into its typed form, copying only the
// fields that belong to raw.Kind. Object ticks resolve raw.Self through reg;
// a nil reg resolves nothing, so any non-zero Self fails.
func DecodeEvent(raw RawEvent, reg *Registry) (Event, error) {
	switch raw.Kind {
	case EventQuit, EventInit, EventPostRender:
		return SystemEvent{Type: raw.Kind}, nil

	case EventPreInput, EventPrePhysics, EventPreRender, EventRender:
		if raw.Self == NoObject {
			return ObjectEvent{Type: raw.Kind}, nil
		}
		var obj *GameObject
		ok := false
		if reg != nil {
			obj, ok = reg.Lookup(raw.Self)
		}
		if !ok {
			return nil, &DecodeError{
				Op:     "decode event " + raw.Kind.String(),
				Detail: "token " + strconv.FormatUint(uint64(raw.Self), 10),
				Err:    ErrUnresolvedObject,
			}
		}
		return ObjectEvent{Type: raw.Kind, Object: obj}, nil

	case EventKeyDown, EventKeyUp:
		return KeyEvent{Type: raw.Kind, Key: raw.Key}, nil

	case EventMouseMove:
		return MouseMoveEvent{X: raw.MouseX, Y: raw.MouseY}, nil

	case EventMouseButtonDown, EventMouseButtonUp:
		return MouseButtonEvent{Type: raw.Kind, Button: raw.MouseButton}, nil

	case EventJoyAxisMove:
		return JoyAxisEvent{Joystick: raw.Stick, Axis: raw.Index, Value: raw.Value}, nil

	case EventJoyButtonDown, EventJoyButtonUp:
		return JoyButtonEvent{Type: raw.Kind, Joystick: raw.Stick, Button: raw.Index}, nil

	case EventJoyHatMove:
		return JoyHatEvent{Joystick: raw.Stick, Hat: raw.Index, Value: raw.Value}, nil

	case EventCollision:
		return nil, &DecodeError{Op: "decode event Collision", Err: ErrNotImplemented}

	default:
		return nil, &DecodeError{
			Op:     "decode event",
			Detail: "kind " + strconv.Itoa(int(raw.Kind)),
			Err:    ErrUnknownEventKind,
		}
	}
}
