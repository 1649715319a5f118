// Package headless provides a scriptable in-memory Driver for tests and
// headless runs. Callers set the state they want and the engine polls it
// like real hardware.
package headless

import "github.com/Faultbox/inputkit/pkg/input/driver"

// Driver holds scripted device state. The zero value is usable: everything
// released, joystick disconnected. Indices use the engine's key, button and
// axis indices.
type Driver struct {
	keys       map[int]bool
	mouseBtns  map[int]bool
	mouseX     float64
	mouseY     float64
	desktopX   float64
	desktopY   float64
	wheel      float64
	joyOn      bool
	joyButtons map[int]bool
	joyAxes    map[int]float64
}

func New() *Driver {
	return &Driver{
		keys:       make(map[int]bool),
		mouseBtns:  make(map[int]bool),
		joyButtons: make(map[int]bool),
		joyAxes:    make(map[int]float64),
	}
}

// SetKey scripts a keyboard key as held or released.
func (d *Driver) SetKey(key int, down bool) { d.keys[key] = down }

// ReleaseAllKeys clears all scripted key state.
func (d *Driver) ReleaseAllKeys() { d.keys = make(map[int]bool) }

// SetMouseButton scripts a mouse button as held or released.
func (d *Driver) SetMouseButton(button int, down bool) { d.mouseBtns[button] = down }

// MoveMouse scripts the window-relative cursor position.
func (d *Driver) MoveMouse(x, y float64) { d.mouseX, d.mouseY = x, y }

// MoveMouseDesktop scripts the desktop cursor position.
func (d *Driver) MoveMouseDesktop(x, y float64) { d.desktopX, d.desktopY = x, y }

// Scroll adds to the running wheel total.
func (d *Driver) Scroll(amount float64) { d.wheel += amount }

// SetJoystickConnected scripts joystick presence.
func (d *Driver) SetJoystickConnected(connected bool) { d.joyOn = connected }

// SetJoyButton scripts a joystick button as held or released.
func (d *Driver) SetJoyButton(button int, down bool) { d.joyButtons[button] = down }

// SetJoyAxis scripts a joystick axis reading.
func (d *Driver) SetJoyAxis(axis int, value float64) { d.joyAxes[axis] = value }

func (d *Driver) PollKeyboard() driver.KeyboardState {
	keys := make([]bool, maxIndex(d.keys)+1)
	for i, down := range d.keys {
		if i >= 0 && down {
			keys[i] = true
		}
	}
	return driver.KeyboardState{Keys: keys}
}

func (d *Driver) PollMouse() driver.MouseState {
	buttons := make([]bool, maxIndex(d.mouseBtns)+1)
	for i, down := range d.mouseBtns {
		if i >= 0 && down {
			buttons[i] = true
		}
	}
	return driver.MouseState{
		Buttons:  buttons,
		X:        d.mouseX,
		Y:        d.mouseY,
		DesktopX: d.desktopX,
		DesktopY: d.desktopY,
		Wheel:    d.wheel,
	}
}

func (d *Driver) PollJoystick() driver.JoystickState {
	if !d.joyOn {
		return driver.JoystickState{}
	}
	buttons := make([]bool, maxIndex(d.joyButtons)+1)
	for i, down := range d.joyButtons {
		if i >= 0 && down {
			buttons[i] = true
		}
	}
	axes := make([]float64, maxFloatIndex(d.joyAxes)+1)
	for i, v := range d.joyAxes {
		if i >= 0 {
			axes[i] = v
		}
	}
	return driver.JoystickState{Connected: true, Buttons: buttons, Axes: axes}
}

func maxIndex(m map[int]bool) int {
	max := -1
	for i := range m {
		if i > max {
			max = i
		}
	}
	return max
}

func maxFloatIndex(m map[int]float64) int {
	max := -1
	for i := range m {
		if i > max {
			max = i
		}
	}
	return max
}
