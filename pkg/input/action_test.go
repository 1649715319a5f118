package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidActionName(t *testing.T) {
	assert.True(t, ValidActionName("jump"))
	assert.True(t, ValidActionName("move_left"))
	assert.True(t, ValidActionName("_debug"))
	assert.True(t, ValidActionName("slot-2"))
	assert.False(t, ValidActionName(""))
	assert.False(t, ValidActionName("2fast"))
	assert.False(t, ValidActionName("has space"))
	assert.False(t, ValidActionName("-lead"))
}

func TestActionAddRejectsCollisions(t *testing.T) {
	a := NewAction("horizontal")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "D", "A")))

	// "a" serves as push-left above; it cannot also push right
	assert.False(t, a.Add(ButtonBinding(DeviceKeyboard, "a", "S")))
	assert.Equal(t, 1, a.Len())

	assert.False(t, a.Add(ButtonBinding(DeviceKeyboard, "", "")))
	assert.False(t, a.Add(ButtonBinding(DeviceKeyboard, "NotAKey", "")))

	// different device, same names: fine
	assert.True(t, a.Add(ButtonBinding(DeviceJoystick, "A", "B")))
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.IsValid())
}

func TestActionSetRechecksOthers(t *testing.T) {
	a := NewAction("move")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "D", "A")))
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "Right", "Left")))

	// replacing index 1 must not collide with index 0
	assert.False(t, a.Set(1, ButtonBinding(DeviceKeyboard, "A", "W")))
	assert.Equal(t, "Right", a.Binding(1).Positive)

	// replacing index 0 with something colliding only with itself is fine
	assert.True(t, a.Set(0, ButtonBinding(DeviceKeyboard, "E", "Q")))
	assert.Equal(t, "E", a.Binding(0).Positive)
}

func TestActionValuePriority(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	a := NewAction("horizontal")
	require.True(t, a.Add(AxisBinding(DeviceJoystick, "LeftStickX")))
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "D", "A")))

	// stick neutral, D pressed: keyboard binding resolves
	drv.SetKey(int(KeyD), true)
	d.Update()
	assert.Equal(t, 1.0, a.Value(d))
	assert.True(t, a.IsPressed(d))

	// stick deflected: axis wins, keyboard never consulted
	drv.SetJoyAxis(int(JoyLeftStickX), 0.6)
	d.Update()
	assert.Equal(t, 0.6, a.Value(d))

	// negative side of the keyboard pair
	drv.SetJoyAxis(int(JoyLeftStickX), 0)
	drv.SetKey(int(KeyD), false)
	drv.SetKey(int(KeyA), true)
	d.Update()
	assert.Equal(t, -1.0, a.Value(d))
	assert.False(t, a.IsPressed(d))
}

func TestActionAmbiguousBindingIsSkipped(t *testing.T) {
	d, drv := newTestDevices()

	a := NewAction("horizontal")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "D", "A")))
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "Right", "Left")))

	// both sides of the first binding held: ambiguous, falls through
	drv.SetKey(int(KeyD), true)
	drv.SetKey(int(KeyA), true)
	drv.SetKey(int(KeyRight), true)
	d.Update()
	assert.Equal(t, 1.0, a.Value(d))
	assert.True(t, a.IsPressed(d))

	drv.SetKey(int(KeyRight), false)
	d.Update()
	assert.Equal(t, 0.0, a.Value(d))
	assert.False(t, a.IsPressed(d))
}

func TestActionInvert(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	button := NewAction("reverse")
	b := ButtonBinding(DeviceKeyboard, "D", "A")
	b.Invert = true
	require.True(t, button.Add(b))

	drv.SetKey(int(KeyD), true)
	d.Update()
	assert.Equal(t, -1.0, button.Value(d))
	assert.False(t, button.IsPressed(d))

	axis := NewAction("pull")
	ab := AxisBinding(DeviceJoystick, "LeftStickY")
	ab.Invert = true
	require.True(t, axis.Add(ab))

	drv.SetJoyAxis(int(JoyLeftStickY), 0.5)
	d.Update()
	assert.Equal(t, -0.5, axis.Value(d))
}

func TestActionAxisIsPressedUsesThreshold(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	a := NewAction("aim")
	require.True(t, a.Add(AxisBinding(DeviceJoystick, "RightTrigger")))

	drv.SetJoyAxis(int(JoyRightTrigger), 0.3)
	d.Update()
	assert.False(t, a.IsPressed(d))
	assert.Equal(t, 0.3, a.Value(d))

	drv.SetJoyAxis(int(JoyRightTrigger), 0.5)
	d.Update()
	assert.True(t, a.IsPressed(d))
}

func TestActionEdgesAreORAcrossBindings(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	a := NewAction("jump")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "Space", "")))
	require.True(t, a.Add(ButtonBinding(DeviceJoystick, "A", "")))

	// hold the first binding; edges from the second must still surface even
	// though the first already resolves the value
	drv.SetKey(int(KeySpace), true)
	d.Update()
	d.Update()
	assert.True(t, a.IsPressed(d))
	assert.False(t, a.JustPressed(d))

	drv.SetJoyButton(int(JoyA), true)
	d.Update()
	assert.True(t, a.JustPressed(d))

	drv.SetJoyButton(int(JoyA), false)
	d.Update()
	assert.True(t, a.JustReleased(d))
	assert.True(t, a.IsPressed(d)) // space still held
}

func TestActionAxisEdges(t *testing.T) {
	d, drv := newTestDevices()
	drv.SetJoystickConnected(true)

	a := NewAction("boost")
	require.True(t, a.Add(AxisBinding(DeviceJoystick, "LeftTrigger")))

	drv.SetJoyAxis(int(JoyLeftTrigger), 0.2)
	d.Update()
	assert.False(t, a.JustPressed(d))

	// crossing the threshold fires a press edge exactly once
	drv.SetJoyAxis(int(JoyLeftTrigger), 0.9)
	d.Update()
	assert.True(t, a.JustPressed(d))
	d.Update()
	assert.False(t, a.JustPressed(d))

	drv.SetJoyAxis(int(JoyLeftTrigger), 0.1)
	d.Update()
	assert.True(t, a.JustReleased(d))
}

func TestActionClone(t *testing.T) {
	a := NewAction("jump")
	require.True(t, a.Add(ButtonBinding(DeviceKeyboard, "Space", "")))

	c := a.Clone()
	require.True(t, c.Add(ButtonBinding(DeviceJoystick, "A", "")))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, a.Name(), c.Name())
}

func TestActionEmptyIsNeutral(t *testing.T) {
	d, _ := newTestDevices()
	d.Update()

	a := NewAction("unbound")
	assert.True(t, a.IsValid())
	assert.Equal(t, 0.0, a.Value(d))
	assert.False(t, a.IsPressed(d))
	assert.False(t, a.JustPressed(d))
	assert.False(t, a.JustReleased(d))
}
