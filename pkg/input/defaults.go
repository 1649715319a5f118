package input

import "go.uber.org/zap"

// DefaultBindings returns a starter action set: stick/WASD movement, face
// buttons for jump and fire, Escape/Start for pause.
func DefaultBindings(log *zap.Logger) *ActionSet {
	set := NewActionSet(log)

	horizontal := NewAction("horizontal")
	horizontal.Add(AxisBinding(DeviceJoystick, JoyLeftStickX.String()))
	horizontal.Add(ButtonBinding(DeviceKeyboard, KeyD.String(), KeyA.String()))
	horizontal.Add(ButtonBinding(DeviceKeyboard, KeyRight.String(), KeyLeft.String()))
	set.Add(horizontal, false)

	vertical := NewAction("vertical")
	vertical.Add(AxisBinding(DeviceJoystick, JoyLeftStickY.String()))
	vertical.Add(ButtonBinding(DeviceKeyboard, KeyS.String(), KeyW.String()))
	vertical.Add(ButtonBinding(DeviceKeyboard, KeyDown.String(), KeyUp.String()))
	set.Add(vertical, false)

	jump := NewAction("jump")
	jump.Add(ButtonBinding(DeviceKeyboard, KeySpace.String(), ""))
	jump.Add(ButtonBinding(DeviceJoystick, JoyA.String(), ""))
	set.Add(jump, false)

	fire := NewAction("fire")
	fire.Add(ButtonBinding(DeviceMouse, MouseLeft.String(), ""))
	fire.Add(ButtonBinding(DeviceJoystick, JoyX.String(), ""))
	fire.Add(AxisBinding(DeviceJoystick, JoyRightTrigger.String()))
	set.Add(fire, false)

	pause := NewAction("pause")
	pause.Add(ButtonBinding(DeviceKeyboard, KeyEscape.String(), ""))
	pause.Add(ButtonBinding(DeviceJoystick, JoyStart.String(), ""))
	set.Add(pause, false)

	return set
}
