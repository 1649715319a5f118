package input

// Key is an engine-owned keyboard key index. Drivers translate their native
// scancodes into these; the engine never sees backend key codes.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyTab
	KeyCapsLock
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeySpace
	KeyEnter
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyPrintScreen
	KeyScrollLock
	KeyPause

	KeyGrave
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash

	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadMinus
	KeyNumpadPlus
	KeyNumpadEnter
	KeyNumpadPeriod

	// KeyCount is the size of keyboard snapshots.
	KeyCount
)

var keyNames = [...]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "D0", Key1: "D1", Key2: "D2", Key3: "D3", Key4: "D4",
	Key5: "D5", Key6: "D6", Key7: "D7", Key8: "D8", Key9: "D9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",

	KeyEscape:       "Escape",
	KeyTab:          "Tab",
	KeyCapsLock:     "CapsLock",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",

	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",

	KeyInsert:      "Insert",
	KeyDelete:      "Delete",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",

	KeyGrave:        "Grave",
	KeyMinus:        "Minus",
	KeyEquals:       "Equals",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",

	KeyNumLock:        "NumLock",
	KeyNumpad0:        "Numpad0",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadMinus:    "NumpadMinus",
	KeyNumpadPlus:     "NumpadPlus",
	KeyNumpadEnter:    "NumpadEnter",
	KeyNumpadPeriod:   "NumpadPeriod",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return ""
	}
	return keyNames[k]
}

// Valid reports whether k indexes a known key.
func (k Key) Valid() bool { return k >= 0 && k < KeyCount }

// ParseKey resolves a key from its symbolic name (case-insensitive) or its
// decimal index.
func ParseKey(s string) (Key, error) {
	i, err := parseNamed(s, keyNames[:], "key")
	return Key(i), err
}
