// Package input implements an action-based input layer: game code queries
// named logical actions ("jump", "horizontal") that resolve against
// configurable bindings to keyboard keys, mouse buttons/axes or joystick
// buttons/axes. Device state is captured as per-frame snapshot pairs that
// drive edge detection, and binding sets persist to an XML file.
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// PressThreshold is the axis magnitude at which an axis counts as a pressed
// button in action evaluation.
const PressThreshold = 0.4

// Device identifies a device class a binding targets.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceMouse
	DeviceJoystick

	deviceCount
)

var deviceNames = [...]string{
	DeviceKeyboard: "Keyboard",
	DeviceMouse:    "Mouse",
	DeviceJoystick: "Joystick",
}

func (d Device) String() string {
	if d < 0 || d >= deviceCount {
		return fmt.Sprintf("Device(%d)", int(d))
	}
	return deviceNames[d]
}

// Valid reports whether d is one of the known device classes.
func (d Device) Valid() bool { return d >= 0 && d < deviceCount }

// ParseDevice parses a device name, case-insensitively.
func ParseDevice(s string) (Device, error) {
	for i, name := range deviceNames {
		if strings.EqualFold(s, name) {
			return Device(i), nil
		}
	}
	return 0, fmt.Errorf("%w: device %q", ErrUnknownName, s)
}

// Kind distinguishes button bindings from axis bindings.
type Kind int

const (
	KindButton Kind = iota
	KindAxis

	kindCount
)

var kindNames = [...]string{
	KindButton: "Button",
	KindAxis:   "Axis",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known binding kind.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// ParseKind parses a binding kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownName, s)
}

// parseNamed resolves an identifier string against a symbolic name table,
// accepting either the symbolic name (case-insensitive) or the raw decimal
// index. Both forms are accepted so serialized files can round-trip symbolic
// names while runtime code may use indices.
func parseNamed(s string, names []string, what string) (int, error) {
	for i, name := range names {
		if name != "" && strings.EqualFold(s, name) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(names) {
			return n, nil
		}
		return 0, fmt.Errorf("%w: %s index %d out of range [0, %d)", ErrUnknownName, what, n, len(names))
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, what, s)
}

// ValidName reports whether s names a valid identifier for the given device
// class and binding kind. Keyboards have no axes.
func ValidName(dev Device, kind Kind, s string) bool {
	_, err := parseName(dev, kind, s)
	return err == nil
}

func parseName(dev Device, kind Kind, s string) (int, error) {
	switch dev {
	case DeviceKeyboard:
		if kind != KindButton {
			return 0, fmt.Errorf("%w: keyboard has no axes", ErrUnknownName)
		}
		k, err := ParseKey(s)
		return int(k), err
	case DeviceMouse:
		if kind == KindAxis {
			a, err := ParseMouseAxis(s)
			return int(a), err
		}
		b, err := ParseMouseButton(s)
		return int(b), err
	case DeviceJoystick:
		if kind == KindAxis {
			a, err := ParseJoyAxis(s)
			return int(a), err
		}
		b, err := ParseJoyButton(s)
		return int(b), err
	default:
		return 0, fmt.Errorf("%w: device %d", ErrUnknownDevice, int(dev))
	}
}

// canonicalName returns the canonical symbolic spelling of an identifier,
// or s unchanged when it does not parse.
func canonicalName(dev Device, kind Kind, s string) string {
	idx, err := parseName(dev, kind, s)
	if err != nil {
		return s
	}
	switch dev {
	case DeviceKeyboard:
		return Key(idx).String()
	case DeviceMouse:
		if kind == KindAxis {
			return MouseAxis(idx).String()
		}
		return MouseButton(idx).String()
	case DeviceJoystick:
		if kind == KindAxis {
			return JoyAxis(idx).String()
		}
		return JoyButton(idx).String()
	}
	return s
}
