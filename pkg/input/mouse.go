package input

import (
	"math"

	"github.com/Faultbox/inputkit/pkg/input/driver"
)

// MouseButton is a mouse button index.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2

	MouseButtonCount
)

var mouseButtonNames = [...]string{
	MouseLeft:   "Left",
	MouseMiddle: "Middle",
	MouseRight:  "Right",
	MouseX1:     "X1",
	MouseX2:     "X2",
}

func (b MouseButton) String() string {
	if b < 0 || b >= MouseButtonCount {
		return ""
	}
	return mouseButtonNames[b]
}

// Valid reports whether b indexes a known mouse button.
func (b MouseButton) Valid() bool { return b >= 0 && b < MouseButtonCount }

// ParseMouseButton resolves a mouse button from its symbolic name
// (case-insensitive) or its decimal index.
func ParseMouseButton(s string) (MouseButton, error) {
	i, err := parseNamed(s, mouseButtonNames[:], "mouse button")
	return MouseButton(i), err
}

// MouseAxis is a mouse axis index. X and Y carry the window-relative cursor
// position, ScrollWheel a running total of vertical scroll.
type MouseAxis int

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseAxisWheel

	MouseAxisCount
)

var mouseAxisNames = [...]string{
	MouseAxisX:     "X",
	MouseAxisY:     "Y",
	MouseAxisWheel: "ScrollWheel",
}

func (a MouseAxis) String() string {
	if a < 0 || a >= MouseAxisCount {
		return ""
	}
	return mouseAxisNames[a]
}

// Valid reports whether a indexes a known mouse axis.
func (a MouseAxis) Valid() bool { return a >= 0 && a < MouseAxisCount }

// ParseMouseAxis resolves a mouse axis from its symbolic name
// (case-insensitive) or its decimal index.
func ParseMouseAxis(s string) (MouseAxis, error) {
	i, err := parseNamed(s, mouseAxisNames[:], "mouse axis")
	return MouseAxis(i), err
}

// mouseSnapshot is the captured mouse state at one instant, including the
// desktop cursor position as a device-specific extra.
type mouseSnapshot struct {
	buttons  [MouseButtonCount]bool
	axes     [MouseAxisCount]float64
	desktopX float64
	desktopY float64
}

func captureMouse(drv driver.Driver) mouseSnapshot {
	var snap mouseSnapshot
	state := drv.PollMouse()
	n := len(state.Buttons)
	if n > int(MouseButtonCount) {
		n = int(MouseButtonCount)
	}
	copy(snap.buttons[:n], state.Buttons[:n])
	snap.axes[MouseAxisX] = state.X
	snap.axes[MouseAxisY] = state.Y
	snap.axes[MouseAxisWheel] = state.Wheel
	snap.desktopX = state.DesktopX
	snap.desktopY = state.DesktopY
	return snap
}

// MouseManager owns the current/previous mouse snapshot pair.
type MouseManager struct {
	drv      driver.Driver
	current  mouseSnapshot
	previous mouseSnapshot
}

func NewMouseManager(drv driver.Driver) *MouseManager {
	return &MouseManager{drv: drv}
}

// Update advances the snapshot pair.
func (m *MouseManager) Update() {
	m.previous = m.current
	m.current = captureMouse(m.drv)
}

func (m *MouseManager) IsPressed(b MouseButton) bool {
	return b.Valid() && m.current.buttons[b]
}

func (m *MouseManager) JustPressed(b MouseButton) bool {
	return b.Valid() && m.current.buttons[b] && !m.previous.buttons[b]
}

func (m *MouseManager) JustReleased(b MouseButton) bool {
	return b.Valid() && !m.current.buttons[b] && m.previous.buttons[b]
}

func (m *MouseManager) IsPressedName(s string) bool {
	b, err := ParseMouseButton(s)
	return err == nil && m.IsPressed(b)
}

func (m *MouseManager) JustPressedName(s string) bool {
	b, err := ParseMouseButton(s)
	return err == nil && m.JustPressed(b)
}

func (m *MouseManager) JustReleasedName(s string) bool {
	b, err := ParseMouseButton(s)
	return err == nil && m.JustReleased(b)
}

// Axis returns the current reading of a, or 0 for an invalid axis.
func (m *MouseManager) Axis(a MouseAxis) float64 {
	if !a.Valid() {
		return 0
	}
	return m.current.axes[a]
}

// LastAxis returns the previous frame's reading of a.
func (m *MouseManager) LastAxis(a MouseAxis) float64 {
	if !a.Valid() {
		return 0
	}
	return m.previous.axes[a]
}

// AxisDelta returns how far a moved since the previous frame.
func (m *MouseManager) AxisDelta(a MouseAxis) float64 {
	return m.Axis(a) - m.LastAxis(a)
}

// AxisPressed reports whether the axis reading clears PressThreshold.
// Bidirectional tests the magnitude, otherwise the raw value.
func (m *MouseManager) AxisPressed(a MouseAxis, bidirectional bool) bool {
	v := m.Axis(a)
	if bidirectional {
		v = math.Abs(v)
	}
	return v >= PressThreshold
}

// Position returns the window-relative cursor position.
func (m *MouseManager) Position() (x, y float64) {
	return m.current.axes[MouseAxisX], m.current.axes[MouseAxisY]
}

// PositionDelta returns the cursor movement since the previous frame.
func (m *MouseManager) PositionDelta() (dx, dy float64) {
	return m.AxisDelta(MouseAxisX), m.AxisDelta(MouseAxisY)
}

// DesktopPosition returns the cursor position in desktop coordinates.
func (m *MouseManager) DesktopPosition() (x, y float64) {
	return m.current.desktopX, m.current.desktopY
}

// WheelDelta returns the scroll amount since the previous frame.
func (m *MouseManager) WheelDelta() float64 {
	return m.AxisDelta(MouseAxisWheel)
}

// AnyEdge reports whether any button changed state or the cursor or wheel
// moved this frame.
func (m *MouseManager) AnyEdge() bool {
	if m.current.buttons != m.previous.buttons {
		return true
	}
	return m.current.axes != m.previous.axes
}
