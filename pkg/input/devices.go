package input

import "github.com/Faultbox/inputkit/pkg/input/driver"

// Devices bundles the three device managers. Actions evaluate against a
// Devices handle so nothing in the package depends on global state.
type Devices struct {
	Keyboard *KeyboardManager
	Mouse    *MouseManager
	Joystick *JoystickManager
}

func NewDevices(drv driver.Driver) *Devices {
	return &Devices{
		Keyboard: NewKeyboardManager(drv),
		Mouse:    NewMouseManager(drv),
		Joystick: NewJoystickManager(drv),
	}
}

// Update polls all three managers, keyboard first, then mouse, then
// joystick. Call exactly once per frame.
func (d *Devices) Update() {
	d.Keyboard.Update()
	d.Mouse.Update()
	d.Joystick.Update()
}

// Pressed reports whether the named button on dev is held. Unknown devices
// or names report false.
func (d *Devices) Pressed(dev Device, name string) bool {
	switch dev {
	case DeviceKeyboard:
		return d.Keyboard.IsPressedName(name)
	case DeviceMouse:
		return d.Mouse.IsPressedName(name)
	case DeviceJoystick:
		return d.Joystick.IsPressedName(name)
	}
	return false
}

// JustPressed reports whether the named button on dev fired a press edge
// this frame.
func (d *Devices) JustPressed(dev Device, name string) bool {
	switch dev {
	case DeviceKeyboard:
		return d.Keyboard.JustPressedName(name)
	case DeviceMouse:
		return d.Mouse.JustPressedName(name)
	case DeviceJoystick:
		return d.Joystick.JustPressedName(name)
	}
	return false
}

// JustReleased reports whether the named button on dev fired a release edge
// this frame.
func (d *Devices) JustReleased(dev Device, name string) bool {
	switch dev {
	case DeviceKeyboard:
		return d.Keyboard.JustReleasedName(name)
	case DeviceMouse:
		return d.Mouse.JustReleasedName(name)
	case DeviceJoystick:
		return d.Joystick.JustReleasedName(name)
	}
	return false
}

// Axis returns the current reading of the named axis on dev. Keyboards have
// no axes; unknown names read 0.
func (d *Devices) Axis(dev Device, name string) float64 {
	switch dev {
	case DeviceMouse:
		if a, err := ParseMouseAxis(name); err == nil {
			return d.Mouse.Axis(a)
		}
	case DeviceJoystick:
		if a, err := ParseJoyAxis(name); err == nil {
			return d.Joystick.Axis(a)
		}
	}
	return 0
}

// LastAxis returns the previous frame's reading of the named axis on dev.
func (d *Devices) LastAxis(dev Device, name string) float64 {
	switch dev {
	case DeviceMouse:
		if a, err := ParseMouseAxis(name); err == nil {
			return d.Mouse.LastAxis(a)
		}
	case DeviceJoystick:
		if a, err := ParseJoyAxis(name); err == nil {
			return d.Joystick.LastAxis(a)
		}
	}
	return 0
}

// AxisDelta returns how far the named axis on dev moved since the previous
// frame.
func (d *Devices) AxisDelta(dev Device, name string) float64 {
	return d.Axis(dev, name) - d.LastAxis(dev, name)
}
