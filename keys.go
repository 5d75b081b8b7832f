package monocle

import "github.com/hajimehoshi/ebiten/v2"

// Key is a keyboard key code. Values follow the SDL keycode table, so
// printable keys equal their lower-case ASCII code and the rest carry the
// scancode bit.
type Key int

const keyScancodeMask = 1 << 30

const (
	KeyUnknown      Key = 0
	KeyBackspace    Key = 8
	KeyTab          Key = 9
	KeyReturn       Key = 13
	KeyEscape       Key = 27
	KeySpace        Key = 32
	KeyQuote        Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEquals       Key = 61
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyBackquote    Key = 96
	KeyA            Key = 'a'
	KeyB            Key = 'b'
	KeyC            Key = 'c'
	KeyD            Key = 'd'
	KeyE            Key = 'e'
	KeyF            Key = 'f'
	KeyG            Key = 'g'
	KeyH            Key = 'h'
	KeyI            Key = 'i'
	KeyJ            Key = 'j'
	KeyK            Key = 'k'
	KeyL            Key = 'l'
	KeyM            Key = 'm'
	KeyN            Key = 'n'
	KeyO            Key = 'o'
	KeyP            Key = 'p'
	KeyQ            Key = 'q'
	KeyR            Key = 'r'
	KeyS            Key = 's'
	KeyT            Key = 't'
	KeyU            Key = 'u'
	KeyV            Key = 'v'
	KeyW            Key = 'w'
	KeyX            Key = 'x'
	KeyY            Key = 'y'
	KeyZ            Key = 'z'
	KeyDelete       Key = 127

	KeyCapsLock    Key = keyScancodeMask | 0x39
	KeyF1          Key = keyScancodeMask | 0x3A
	KeyF2          Key = keyScancodeMask | 0x3B
	KeyF3          Key = keyScancodeMask | 0x3C
	KeyF4          Key = keyScancodeMask | 0x3D
	KeyF5          Key = keyScancodeMask | 0x3E
	KeyF6          Key = keyScancodeMask | 0x3F
	KeyF7          Key = keyScancodeMask | 0x40
	KeyF8          Key = keyScancodeMask | 0x41
	KeyF9          Key = keyScancodeMask | 0x42
	KeyF10         Key = keyScancodeMask | 0x43
	KeyF11         Key = keyScancodeMask | 0x44
	KeyF12         Key = keyScancodeMask | 0x45
	KeyPrintScreen Key = keyScancodeMask | 0x46
	KeyScrollLock  Key = keyScancodeMask | 0x47
	KeyPause       Key = keyScancodeMask | 0x48
	KeyInsert      Key = keyScancodeMask | 0x49
	KeyHome        Key = keyScancodeMask | 0x4A
	KeyPageUp      Key = keyScancodeMask | 0x4B
	KeyEnd         Key = keyScancodeMask | 0x4D
	KeyPageDown    Key = keyScancodeMask | 0x4E
	KeyRight       Key = keyScancodeMask | 0x4F
	KeyLeft        Key = keyScancodeMask | 0x50
	KeyDown        Key = keyScancodeMask | 0x51
	KeyUp          Key = keyScancodeMask | 0x52
	KeyNumLock     Key = keyScancodeMask | 0x53
	KeyKPDivide    Key = keyScancodeMask | 0x54
	KeyKPMultiply  Key = keyScancodeMask | 0x55
	KeyKPMinus     Key = keyScancodeMask | 0x56
	KeyKPPlus      Key = keyScancodeMask | 0x57
	KeyKPEnter     Key = keyScancodeMask | 0x58
	KeyKP1         Key = keyScancodeMask | 0x59
	KeyKP2         Key = keyScancodeMask | 0x5A
	KeyKP3         Key = keyScancodeMask | 0x5B
	KeyKP4         Key = keyScancodeMask | 0x5C
	KeyKP5         Key = keyScancodeMask | 0x5D
	KeyKP6         Key = keyScancodeMask | 0x5E
	KeyKP7         Key = keyScancodeMask | 0x5F
	KeyKP8         Key = keyScancodeMask | 0x60
	KeyKP9         Key = keyScancodeMask | 0x61
	KeyKP0         Key = keyScancodeMask | 0x62
	KeyKPPeriod    Key = keyScancodeMask | 0x63
	KeyLCtrl       Key = keyScancodeMask | 0xE0
	KeyLShift      Key = keyScancodeMask | 0xE1
	KeyLAlt        Key = keyScancodeMask | 0xE2
	KeyLGUI        Key = keyScancodeMask | 0xE3
	KeyRCtrl       Key = keyScancodeMask | 0xE4
	KeyRShift      Key = keyScancodeMask | 0xE5
	KeyRAlt        Key = keyScancodeMask | 0xE6
	KeyRGUI        Key = keyScancodeMask | 0xE7
)

// ebitenKeys maps Ebitengine physical keys to key codes. Keys missing here
// are not reported.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyBackspace:    KeyBackspace,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyEnter:        KeyReturn,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyQuote:        KeyQuote,
	ebiten.KeyComma:        KeyComma,
	ebiten.KeyMinus:        KeyMinus,
	ebiten.KeyPeriod:       KeyPeriod,
	ebiten.KeySlash:        KeySlash,
	ebiten.KeyDigit0:       Key0,
	ebiten.KeyDigit1:       Key1,
	ebiten.KeyDigit2:       Key2,
	ebiten.KeyDigit3:       Key3,
	ebiten.KeyDigit4:       Key4,
	ebiten.KeyDigit5:       Key5,
	ebiten.KeyDigit6:       Key6,
	ebiten.KeyDigit7:       Key7,
	ebiten.KeyDigit8:       Key8,
	ebiten.KeyDigit9:       Key9,
	ebiten.KeySemicolon:    KeySemicolon,
	ebiten.KeyEqual:        KeyEquals,
	ebiten.KeyBracketLeft:  KeyLeftBracket,
	ebiten.KeyBackslash:    KeyBackslash,
	ebiten.KeyBracketRight: KeyRightBracket,
	ebiten.KeyBackquote:    KeyBackquote,
	ebiten.KeyA:            KeyA,
	ebiten.KeyB:            KeyB,
	ebiten.KeyC:            KeyC,
	ebiten.KeyD:            KeyD,
	ebiten.KeyE:            KeyE,
	ebiten.KeyF:            KeyF,
	ebiten.KeyG:            KeyG,
	ebiten.KeyH:            KeyH,
	ebiten.KeyI:            KeyI,
	ebiten.KeyJ:            KeyJ,
	ebiten.KeyK:            KeyK,
	ebiten.KeyL:            KeyL,
	ebiten.KeyM:            KeyM,
	ebiten.KeyN:            KeyN,
	ebiten.KeyO:            KeyO,
	ebiten.KeyP:            KeyP,
	ebiten.KeyQ:            KeyQ,
	ebiten.KeyR:            KeyR,
	ebiten.KeyS:            KeyS,
	ebiten.KeyT:            KeyT,
	ebiten.KeyU:            KeyU,
	ebiten.KeyV:            KeyV,
	ebiten.KeyW:            KeyW,
	ebiten.KeyX:            KeyX,
	ebiten.KeyY:            KeyY,
	ebiten.KeyZ:            KeyZ,
	ebiten.KeyDelete:       KeyDelete,

	ebiten.KeyCapsLock:    KeyCapsLock,
	ebiten.KeyF1:          KeyF1,
	ebiten.KeyF2:          KeyF2,
	ebiten.KeyF3:          KeyF3,
	ebiten.KeyF4:          KeyF4,
	ebiten.KeyF5:          KeyF5,
	ebiten.KeyF6:          KeyF6,
	ebiten.KeyF7:          KeyF7,
	ebiten.KeyF8:          KeyF8,
	ebiten.KeyF9:          KeyF9,
	ebiten.KeyF10:         KeyF10,
	ebiten.KeyF11:         KeyF11,
	ebiten.KeyF12:         KeyF12,
	ebiten.KeyPrintScreen: KeyPrintScreen,
	ebiten.KeyScrollLock:  KeyScrollLock,
	ebiten.KeyPause:       KeyPause,
	ebiten.KeyInsert:      KeyInsert,
	ebiten.KeyHome:        KeyHome,
	ebiten.KeyPageUp:      KeyPageUp,
	ebiten.KeyEnd:         KeyEnd,
	ebiten.KeyPageDown:    KeyPageDown,
	ebiten.KeyArrowRight:  KeyRight,
	ebiten.KeyArrowLeft:   KeyLeft,
	ebiten.KeyArrowDown:   KeyDown,
	ebiten.KeyArrowUp:     KeyUp,

	ebiten.KeyNumLock:        KeyNumLock,
	ebiten.KeyNumpadDivide:   KeyKPDivide,
	ebiten.KeyNumpadMultiply: KeyKPMultiply,
	ebiten.KeyNumpadSubtract: KeyKPMinus,
	ebiten.KeyNumpadAdd:      KeyKPPlus,
	ebiten.KeyNumpadEnter:    KeyKPEnter,
	ebiten.KeyNumpad1:        KeyKP1,
	ebiten.KeyNumpad2:        KeyKP2,
	ebiten.KeyNumpad3:        KeyKP3,
	ebiten.KeyNumpad4:        KeyKP4,
	ebiten.KeyNumpad5:        KeyKP5,
	ebiten.KeyNumpad6:        KeyKP6,
	ebiten.KeyNumpad7:        KeyKP7,
	ebiten.KeyNumpad8:        KeyKP8,
	ebiten.KeyNumpad9:        KeyKP9,
	ebiten.KeyNumpad0:        KeyKP0,
	ebiten.KeyNumpadDecimal:  KeyKPPeriod,
	ebiten.KeyControlLeft:    KeyLCtrl,
	ebiten.KeyShiftLeft:      KeyLShift,
	ebiten.KeyAltLeft:        KeyLAlt,
	ebiten.KeyMetaLeft:       KeyLGUI,
	ebiten.KeyControlRight:   KeyRCtrl,
	ebiten.KeyShiftRight:     KeyRShift,
	ebiten.KeyAltRight:       KeyRAlt,
	ebiten.KeyMetaRight:      KeyRGUI,
}

// keyCode translates an Ebitengine key.
func keyCode(k ebiten.Key) (Key, bool) {
	code, ok := ebitenKeys[k]
	return code, ok
}

// Mouse button codes carried by MouseButton events.
const (
	MouseLeft   = 1
	MouseMiddle = 2
	MouseRight  = 3
)
