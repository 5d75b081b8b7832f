package monocle

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Joystick axis range reported by JoyAxisMove events.
const axisMax = 32767

// --- Per-gamepad state ---

type gamepadState struct {
	axes [ebiten.StandardGamepadAxisMax + 1]int
	hat  int
}

// ebitenInput turns Ebitengine input state into raw events. Only changes
// since the previous poll are reported.
type ebitenInput struct {
	keys     []ebiten.Key
	mouseX   int
	mouseY   int
	mouseSet bool
	pads     map[ebiten.GamepadID]*gamepadState
	padIDs   []ebiten.GamepadID
}

var mouseButtons = [...]struct {
	button ebiten.MouseButton
	code   int
}{
	{ebiten.MouseButtonLeft, MouseLeft},
	{ebiten.MouseButtonMiddle, MouseMiddle},
	{ebiten.MouseButtonRight, MouseRight},
}

// hatButtons are the D-pad buttons folded into hat 0.
var hatButtons = [...]struct {
	button ebiten.StandardGamepadButton
	bit    int
}{
	{ebiten.StandardGamepadButtonLeftTop, HatUp},
	{ebiten.StandardGamepadButtonLeftRight, HatRight},
	{ebiten.StandardGamepadButtonLeftBottom, HatDown},
	{ebiten.StandardGamepadButtonLeftLeft, HatLeft},
}

func isHatButton(b ebiten.StandardGamepadButton) bool {
	for _, h := range hatButtons {
		if h.button == b {
			return true
		}
	}
	return false
}

// poll appends the input events of the current tick to buf.
func (in *ebitenInput) poll(buf []RawEvent) []RawEvent {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keyCode(k); ok {
			buf = append(buf, RawEvent{Kind: EventKeyDown, Key: code})
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keyCode(k); ok {
			buf = append(buf, RawEvent{Kind: EventKeyUp, Key: code})
		}
	}

	x, y := ebiten.CursorPosition()
	if !in.mouseSet || x != in.mouseX || y != in.mouseY {
		in.mouseX, in.mouseY, in.mouseSet = x, y, true
		buf = append(buf, RawEvent{Kind: EventMouseMove, MouseX: x, MouseY: y})
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.button) {
			buf = append(buf, RawEvent{Kind: EventMouseButtonDown, MouseButton: mb.code})
		}
		if inpututil.IsMouseButtonJustReleased(mb.button) {
			buf = append(buf, RawEvent{Kind: EventMouseButtonUp, MouseButton: mb.code})
		}
	}

	return in.pollGamepads(buf)
}

func (in *ebitenInput) pollGamepads(buf []RawEvent) []RawEvent {
	if in.pads == nil {
		in.pads = make(map[ebiten.GamepadID]*gamepadState)
	}
	in.padIDs = ebiten.AppendGamepadIDs(in.padIDs[:0])
	for _, id := range in.padIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		st := in.pads[id]
		if st == nil {
			st = &gamepadState{}
			in.pads[id] = st
		}
		stick := int(id)

		for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
			v := int(math.Round(ebiten.StandardGamepadAxisValue(id, a) * axisMax))
			if v != st.axes[a] {
				st.axes[a] = v
				buf = append(buf, RawEvent{Kind: EventJoyAxisMove, Stick: stick, Index: int(a), Value: v})
			}
		}

		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if isHatButton(b) {
				continue
			}
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				buf = append(buf, RawEvent{Kind: EventJoyButtonDown, Stick: stick, Index: int(b)})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				buf = append(buf, RawEvent{Kind: EventJoyButtonUp, Stick: stick, Index: int(b)})
			}
		}

		hat := HatCentered
		for _, h := range hatButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, h.button) {
				hat |= h.bit
			}
		}
		if hat != st.hat {
			st.hat = hat
			buf = append(buf, RawEvent{Kind: EventJoyHatMove, Stick: stick, Index: 0, Value: hat})
		}
	}
	return buf
}
