package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/inputkit/pkg/input/driver/headless"
)

func newTestDevices() (*Devices, *headless.Driver) {
	drv := headless.New()
	return NewDevices(drv), drv
}

func TestKeyboardEdgeDetection(t *testing.T) {
	d, drv := newTestDevices()

	d.Update()
	assert.False(t, d.Keyboard.IsPressed(KeySpace))

	drv.SetKey(int(KeySpace), true)
	d.Update()
	assert.True(t, d.Keyboard.IsPressed(KeySpace))
	assert.True(t, d.Keyboard.JustPressed(KeySpace))
	assert.False(t, d.Keyboard.JustReleased(KeySpace))

	// no change: both edges clear
	d.Update()
	assert.True(t, d.Keyboard.IsPressed(KeySpace))
	assert.False(t, d.Keyboard.JustPressed(KeySpace))
	assert.False(t, d.Keyboard.JustReleased(KeySpace))

	drv.SetKey(int(KeySpace), false)
	d.Update()
	assert.False(t, d.Keyboard.IsPressed(KeySpace))
	assert.False(t, d.Keyboard.JustPressed(KeySpace))
	assert.True(t, d.Keyboard.JustReleased(KeySpace))
}

func TestKeyboardNameQueries(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetKey(int(KeyD), true)
	d.Update()

	assert.True(t, d.Keyboard.IsPressedName("D"))
	assert.True(t, d.Keyboard.IsPressedName("d"))
	assert.True(t, d.Keyboard.IsPressedName("3")) // KeyD by index
	assert.False(t, d.Keyboard.IsPressedName("A"))
	assert.False(t, d.Keyboard.IsPressedName("NotAKey"))
	assert.False(t, d.Keyboard.IsPressedName(""))
}

func TestMouseAxes(t *testing.T) {
	d, drv := newTestDevices()

	drv.MoveMouse(100, 50)
	d.Update()
	drv.MoveMouse(130, 40)
	drv.Scroll(2)
	d.Update()

	assert.Equal(t, 130.0, d.Mouse.Axis(MouseAxisX))
	assert.Equal(t, 100.0, d.Mouse.LastAxis(MouseAxisX))
	assert.Equal(t, 30.0, d.Mouse.AxisDelta(MouseAxisX))
	assert.Equal(t, -10.0, d.Mouse.AxisDelta(MouseAxisY))
	assert.Equal(t, 2.0, d.Mouse.WheelDelta())

	dx, dy := d.Mouse.PositionDelta()
	assert.Equal(t, 30.0, dx)
	assert.Equal(t, -10.0, dy)

	// invalid axis reads zero
	assert.Equal(t, 0.0, d.Mouse.Axis(MouseAxis(99)))
	assert.Equal(t, 0.0, d.Mouse.AxisDelta(MouseAxis(-1)))
}

func TestMouseButtons(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetMouseButton(int(MouseLeft), true)
	d.Update()

	assert.True(t, d.Mouse.IsPressed(MouseLeft))
	assert.True(t, d.Mouse.JustPressed(MouseLeft))
	assert.True(t, d.Mouse.IsPressedName("Left"))
	assert.False(t, d.Mouse.IsPressed(MouseRight))
}

func TestJoystickDisconnectedReadsZero(t *testing.T) {
	d, drv := newTestDevices()

	drv.SetJoystickConnected(true)
	drv.SetJoyButton(int(JoyA), true)
	drv.SetJoyAxis(int(JoyLeftStickX), 0.8)
	d.Update()
	assert.True(t, d.Joystick.Connected())
	assert.True(t, d.Joystick.IsPressed(JoyA))
	assert.Equal(t, 0.8, d.Joystick.Axis(JoyLeftStickX))

	// disconnect: everything reads zero, no error
	drv.SetJoystickConnected(false)
	d.Update()
	assert.False(t, d.Joystick.Connected())
	assert.False(t, d.Joystick.IsPressed(JoyA))
	assert.Equal(t, 0.0, d.Joystick.Axis(JoyLeftStickX))
	assert.True(t, d.Joystick.JustReleased(JoyA))
}

func TestJoystickAxisPressed(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	drv.SetJoyAxis(int(JoyLeftStickX), -0.6)
	d.Update()
	assert.False(t, d.Joystick.AxisPressed(JoyLeftStickX, false))
	assert.True(t, d.Joystick.AxisPressed(JoyLeftStickX, true))

	drv.SetJoyAxis(int(JoyLeftStickX), 0.39)
	d.Update()
	assert.False(t, d.Joystick.AxisPressed(JoyLeftStickX, false))

	drv.SetJoyAxis(int(JoyLeftStickX), 0.4)
	d.Update()
	assert.True(t, d.Joystick.AxisPressed(JoyLeftStickX, false))
}

func TestAnyEdge(t *testing.T) {
	d, drv := newTestDevices()
	d.Update()
	assert.False(t, d.Keyboard.AnyEdge())
	assert.False(t, d.Mouse.AnyEdge())
	assert.False(t, d.Joystick.AnyEdge())

	drv.SetKey(int(KeyW), true)
	d.Update()
	assert.True(t, d.Keyboard.AnyEdge())
	assert.False(t, d.Mouse.AnyEdge())

	d.Update()
	assert.False(t, d.Keyboard.AnyEdge())

	drv.MoveMouse(5, 0)
	d.Update()
	assert.True(t, d.Mouse.AnyEdge())

	drv.SetJoystickConnected(true)
	drv.SetJoyAxis(int(JoyRightStickY), 0.5)
	d.Update()
	assert.True(t, d.Joystick.AnyEdge())
}

func TestDevicesDispatch(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetKey(int(KeyQ), true)
	drv.SetJoystickConnected(true)
	drv.SetJoyAxis(int(JoyRightTrigger), 0.7)
	d.Update()

	assert.True(t, d.Pressed(DeviceKeyboard, "Q"))
	assert.False(t, d.Pressed(DeviceMouse, "Q"))
	assert.Equal(t, 0.7, d.Axis(DeviceJoystick, "RightTrigger"))
	assert.Equal(t, 0.0, d.Axis(DeviceKeyboard, "RightTrigger"))
	assert.Equal(t, 0.0, d.Axis(DeviceJoystick, "NotAnAxis"))
	assert.False(t, d.Pressed(Device(77), "Q"))
}
