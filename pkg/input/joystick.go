package input

import (
	"math"

	"github.com/Faultbox/inputkit/pkg/input/driver"
)

// JoyButton is a logical joystick button index, following the standard
// gamepad layout.
type JoyButton int

const (
	JoyA JoyButton = iota
	JoyB
	JoyX
	JoyY
	JoyLeftShoulder
	JoyRightShoulder
	JoyBack
	JoyStart
	JoyGuide
	JoyLeftStick
	JoyRightStick
	JoyDPadUp
	JoyDPadDown
	JoyDPadLeft
	JoyDPadRight

	JoyButtonCount
)

var joyButtonNames = [...]string{
	JoyA:             "A",
	JoyB:             "B",
	JoyX:             "X",
	JoyY:             "Y",
	JoyLeftShoulder:  "LeftShoulder",
	JoyRightShoulder: "RightShoulder",
	JoyBack:          "Back",
	JoyStart:         "Start",
	JoyGuide:         "Guide",
	JoyLeftStick:     "LeftStick",
	JoyRightStick:    "RightStick",
	JoyDPadUp:        "DPadUp",
	JoyDPadDown:      "DPadDown",
	JoyDPadLeft:      "DPadLeft",
	JoyDPadRight:     "DPadRight",
}

func (b JoyButton) String() string {
	if b < 0 || b >= JoyButtonCount {
		return ""
	}
	return joyButtonNames[b]
}

// Valid reports whether b indexes a known joystick button.
func (b JoyButton) Valid() bool { return b >= 0 && b < JoyButtonCount }

// ParseJoyButton resolves a joystick button from its symbolic name
// (case-insensitive) or its decimal index.
func ParseJoyButton(s string) (JoyButton, error) {
	i, err := parseNamed(s, joyButtonNames[:], "joystick button")
	return JoyButton(i), err
}

// JoyAxis is a logical joystick axis index. Stick axes read [-1, 1],
// triggers [0, 1].
type JoyAxis int

const (
	JoyLeftStickX JoyAxis = iota
	JoyLeftStickY
	JoyRightStickX
	JoyRightStickY
	JoyLeftTrigger
	JoyRightTrigger

	JoyAxisCount
)

var joyAxisNames = [...]string{
	JoyLeftStickX:   "LeftStickX",
	JoyLeftStickY:   "LeftStickY",
	JoyRightStickX:  "RightStickX",
	JoyRightStickY:  "RightStickY",
	JoyLeftTrigger:  "LeftTrigger",
	JoyRightTrigger: "RightTrigger",
}

func (a JoyAxis) String() string {
	if a < 0 || a >= JoyAxisCount {
		return ""
	}
	return joyAxisNames[a]
}

// Valid reports whether a indexes a known joystick axis.
func (a JoyAxis) Valid() bool { return a >= 0 && a < JoyAxisCount }

// ParseJoyAxis resolves a joystick axis from its symbolic name
// (case-insensitive) or its decimal index.
func ParseJoyAxis(s string) (JoyAxis, error) {
	i, err := parseNamed(s, joyAxisNames[:], "joystick axis")
	return JoyAxis(i), err
}

// joyMoveEpsilon filters analog noise out of the facade's "joystick just
// moved" inference.
const joyMoveEpsilon = 0.05

// joystickSnapshot is the captured joystick state at one instant. A
// disconnected joystick captures as all-zero, never as an error.
type joystickSnapshot struct {
	connected bool
	buttons   [JoyButtonCount]bool
	axes      [JoyAxisCount]float64
}

func captureJoystick(drv driver.Driver) joystickSnapshot {
	var snap joystickSnapshot
	state := drv.PollJoystick()
	if !state.Connected {
		return snap
	}
	snap.connected = true
	n := len(state.Buttons)
	if n > int(JoyButtonCount) {
		n = int(JoyButtonCount)
	}
	copy(snap.buttons[:n], state.Buttons[:n])
	n = len(state.Axes)
	if n > int(JoyAxisCount) {
		n = int(JoyAxisCount)
	}
	copy(snap.axes[:n], state.Axes[:n])
	return snap
}

// JoystickManager owns the current/previous joystick snapshot pair. Only the
// first connected physical joystick is polled; failover to the next one on
// disconnect is the driver's job.
type JoystickManager struct {
	drv      driver.Driver
	current  joystickSnapshot
	previous joystickSnapshot
}

func NewJoystickManager(drv driver.Driver) *JoystickManager {
	return &JoystickManager{drv: drv}
}

// Update advances the snapshot pair.
func (m *JoystickManager) Update() {
	m.previous = m.current
	m.current = captureJoystick(m.drv)
}

// Connected reports whether a joystick was attached at the last update.
func (m *JoystickManager) Connected() bool {
	return m.current.connected
}

func (m *JoystickManager) IsPressed(b JoyButton) bool {
	return b.Valid() && m.current.buttons[b]
}

func (m *JoystickManager) JustPressed(b JoyButton) bool {
	return b.Valid() && m.current.buttons[b] && !m.previous.buttons[b]
}

func (m *JoystickManager) JustReleased(b JoyButton) bool {
	return b.Valid() && !m.current.buttons[b] && m.previous.buttons[b]
}

func (m *JoystickManager) IsPressedName(s string) bool {
	b, err := ParseJoyButton(s)
	return err == nil && m.IsPressed(b)
}

func (m *JoystickManager) JustPressedName(s string) bool {
	b, err := ParseJoyButton(s)
	return err == nil && m.JustPressed(b)
}

func (m *JoystickManager) JustReleasedName(s string) bool {
	b, err := ParseJoyButton(s)
	return err == nil && m.JustReleased(b)
}

// Axis returns the current reading of a, or 0 for an invalid axis.
func (m *JoystickManager) Axis(a JoyAxis) float64 {
	if !a.Valid() {
		return 0
	}
	return m.current.axes[a]
}

// LastAxis returns the previous frame's reading of a.
func (m *JoystickManager) LastAxis(a JoyAxis) float64 {
	if !a.Valid() {
		return 0
	}
	return m.previous.axes[a]
}

// AxisDelta returns how far a moved since the previous frame.
func (m *JoystickManager) AxisDelta(a JoyAxis) float64 {
	return m.Axis(a) - m.LastAxis(a)
}

// AxisPressed reports whether the axis reading clears PressThreshold.
// Bidirectional tests the magnitude, otherwise the raw value.
func (m *JoystickManager) AxisPressed(a JoyAxis, bidirectional bool) bool {
	v := m.Axis(a)
	if bidirectional {
		v = math.Abs(v)
	}
	return v >= PressThreshold
}

// AnyEdge reports whether any button changed state or any axis moved beyond
// the noise floor this frame.
func (m *JoystickManager) AnyEdge() bool {
	if m.current.buttons != m.previous.buttons {
		return true
	}
	for i := range m.current.axes {
		if math.Abs(m.current.axes[i]-m.previous.axes[i]) > joyMoveEpsilon {
			return true
		}
	}
	return false
}
