package input

import "github.com/Faultbox/inputkit/pkg/input/driver"

// keyboardSnapshot is the captured keyboard state at one instant. Snapshots
// are value types; a fresh one replaces the old on every update, they are
// never mutated after capture.
type keyboardSnapshot struct {
	keys [KeyCount]bool
}

func captureKeyboard(drv driver.Driver) keyboardSnapshot {
	var snap keyboardSnapshot
	state := drv.PollKeyboard()
	n := len(state.Keys)
	if n > int(KeyCount) {
		n = int(KeyCount)
	}
	copy(snap.keys[:n], state.Keys[:n])
	return snap
}

// KeyboardManager owns the current/previous keyboard snapshot pair and
// answers press and edge queries against it.
type KeyboardManager struct {
	drv      driver.Driver
	current  keyboardSnapshot
	previous keyboardSnapshot
}

func NewKeyboardManager(drv driver.Driver) *KeyboardManager {
	return &KeyboardManager{drv: drv}
}

// Update advances the snapshot pair: previous takes what current was,
// current takes a fresh poll.
func (m *KeyboardManager) Update() {
	m.previous = m.current
	m.current = captureKeyboard(m.drv)
}

func (m *KeyboardManager) IsPressed(k Key) bool {
	return k.Valid() && m.current.keys[k]
}

func (m *KeyboardManager) JustPressed(k Key) bool {
	return k.Valid() && m.current.keys[k] && !m.previous.keys[k]
}

func (m *KeyboardManager) JustReleased(k Key) bool {
	return k.Valid() && !m.current.keys[k] && m.previous.keys[k]
}

// Name variants resolve a symbolic name or decimal index; a string that
// fails to parse reports false rather than an error.

func (m *KeyboardManager) IsPressedName(s string) bool {
	k, err := ParseKey(s)
	return err == nil && m.IsPressed(k)
}

func (m *KeyboardManager) JustPressedName(s string) bool {
	k, err := ParseKey(s)
	return err == nil && m.JustPressed(k)
}

func (m *KeyboardManager) JustReleasedName(s string) bool {
	k, err := ParseKey(s)
	return err == nil && m.JustReleased(k)
}

// AnyEdge reports whether any key changed state this frame. Feeds the
// facade's last-device inference.
func (m *KeyboardManager) AnyEdge() bool {
	return m.current.keys != m.previous.keys
}
