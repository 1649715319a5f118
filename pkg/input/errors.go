package input

import "errors"

var (
	// ErrUnknownName is returned when an identifier string names no button,
	// axis, device or kind.
	ErrUnknownName = errors.New("input: unknown name")

	// ErrUnknownDevice is returned when a device enum value is out of range.
	ErrUnknownDevice = errors.New("input: unknown device")

	// ErrInvalidBinding is returned when a binding fails validation.
	ErrInvalidBinding = errors.New("input: invalid binding")
)
