// Package driver defines the raw-device boundary of the input engine.
//
// A Driver is whatever can report the instantaneous hardware state of a
// keyboard, mouse and joystick. The engine polls it once per frame and keeps
// its own snapshot pairs; drivers never need to track history. The production
// implementation lives in the sdldriver subpackage, a scriptable one for
// tests and headless runs in the headless subpackage.
package driver

// KeyboardState is the instantaneous pressed state of every keyboard key,
// indexed by the engine's key indices. Slices shorter than the engine's key
// count are treated as all-released beyond their length.
type KeyboardState struct {
	Keys []bool
}

// MouseState is the instantaneous mouse state. X and Y are window-relative,
// DesktopX and DesktopY are desktop coordinates. Wheel is a running total of
// vertical scroll; the engine derives per-frame deltas itself.
type MouseState struct {
	Buttons  []bool
	X, Y     float64
	DesktopX float64
	DesktopY float64
	Wheel    float64
}

// JoystickState is the instantaneous state of the active joystick. Axes are
// normalized to [-1, 1] (triggers [0, 1]). A disconnected joystick reports
// Connected=false with zeroed buttons and axes, never an error.
type JoystickState struct {
	Connected bool
	Buttons   []bool
	Axes      []float64
}

// Driver polls raw hardware state. Implementations return fresh value
// snapshots on every call; callers own the returned slices.
type Driver interface {
	PollKeyboard() KeyboardState
	PollMouse() MouseState
	PollJoystick() JoystickState
}
