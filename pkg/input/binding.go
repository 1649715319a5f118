package input

import "strings"

// Binding is one rule mapping a logical positive/negative pair onto physical
// device identifiers. Button bindings name a key/button per side; axis
// bindings name an axis per side (usually only the positive one). Invert
// flips the binding's sign.
//
// Identifiers stay as strings so bindings round-trip through persisted files
// verbatim; they are resolved against the device name tables on every query.
type Binding struct {
	Device   Device
	Kind     Kind
	Positive string
	Negative string
	Invert   bool
}

// ButtonBinding builds a button binding. Either side may be empty.
func ButtonBinding(dev Device, positive, negative string) Binding {
	return Binding{Device: dev, Kind: KindButton, Positive: positive, Negative: negative}
}

// AxisBinding builds a single-axis binding.
func AxisBinding(dev Device, axis string) Binding {
	return Binding{Device: dev, Kind: KindAxis, Positive: axis}
}

// IsValid checks the binding structurally and semantically: known device and
// kind, at least one side named, every named side a valid identifier for the
// device and kind. Keyboards only support button bindings.
func (b Binding) IsValid() bool {
	if !b.Device.Valid() || !b.Kind.Valid() {
		return false
	}
	if b.Device == DeviceKeyboard && b.Kind != KindButton {
		return false
	}
	if b.Positive == "" && b.Negative == "" {
		return false
	}
	if b.Positive != "" && !ValidName(b.Device, b.Kind, b.Positive) {
		return false
	}
	if b.Negative != "" && !ValidName(b.Device, b.Kind, b.Negative) {
		return false
	}
	return true
}

// Collides reports whether two bindings contradict each other: same device
// and kind, with one binding's positive identifier serving as the other's
// negative (case-insensitive). A key cannot push right in one binding and
// left in another within the same action.
func Collides(a, b Binding) bool {
	if a.Device != b.Device || a.Kind != b.Kind {
		return false
	}
	if a.Positive != "" && b.Negative != "" && strings.EqualFold(a.Positive, b.Negative) {
		return true
	}
	if b.Positive != "" && a.Negative != "" && strings.EqualFold(b.Positive, a.Negative) {
		return true
	}
	return false
}

// buttonSides returns the identifiers serving as the positive and negative
// side; Invert swaps the roles.
func (b Binding) buttonSides() (pos, neg string) {
	if b.Invert {
		return b.Negative, b.Positive
	}
	return b.Positive, b.Negative
}

// axisReadings returns the current readings of the positive and negative
// axes, sign-flipped when Invert is set. A missing side reads 0.
func (b Binding) axisReadings(d *Devices) (pos, neg float64) {
	if b.Positive != "" {
		pos = d.Axis(b.Device, b.Positive)
	}
	if b.Negative != "" {
		neg = d.Axis(b.Device, b.Negative)
	}
	if b.Invert {
		pos, neg = -pos, -neg
	}
	return pos, neg
}

// lastAxisReadings is axisReadings against the previous frame's snapshot.
func (b Binding) lastAxisReadings(d *Devices) (pos, neg float64) {
	if b.Positive != "" {
		pos = d.LastAxis(b.Device, b.Positive)
	}
	if b.Negative != "" {
		neg = d.LastAxis(b.Device, b.Negative)
	}
	if b.Invert {
		pos, neg = -pos, -neg
	}
	return pos, neg
}

// value returns the binding's scalar reading, 0 when neutral. An axis
// binding reads positive minus negative; a button binding reads +1/-1 for
// the pressed side and is neutral when both or neither side is held.
func (b Binding) value(d *Devices) float64 {
	switch b.Kind {
	case KindAxis:
		pos, neg := b.axisReadings(d)
		return pos - neg
	case KindButton:
		posName, negName := b.buttonSides()
		pp := posName != "" && d.Pressed(b.Device, posName)
		np := negName != "" && d.Pressed(b.Device, negName)
		if pp == np {
			return 0
		}
		if pp {
			return 1
		}
		return -1
	}
	return 0
}

// sides reports which side of the binding is currently active. Axis sides
// test their reading against PressThreshold.
func (b Binding) sides(d *Devices) (positive, negative bool) {
	switch b.Kind {
	case KindAxis:
		pos, neg := b.axisReadings(d)
		return pos >= PressThreshold, neg >= PressThreshold
	case KindButton:
		posName, negName := b.buttonSides()
		return posName != "" && d.Pressed(b.Device, posName),
			negName != "" && d.Pressed(b.Device, negName)
	}
	return false, false
}

// pressEdges reports whether each side became active this frame.
func (b Binding) pressEdges(d *Devices) (positive, negative bool) {
	switch b.Kind {
	case KindAxis:
		pos, neg := b.axisReadings(d)
		lastPos, lastNeg := b.lastAxisReadings(d)
		return pos >= PressThreshold && lastPos < PressThreshold,
			neg >= PressThreshold && lastNeg < PressThreshold
	case KindButton:
		posName, negName := b.buttonSides()
		return posName != "" && d.JustPressed(b.Device, posName),
			negName != "" && d.JustPressed(b.Device, negName)
	}
	return false, false
}

// releaseEdges reports whether each side became inactive this frame.
func (b Binding) releaseEdges(d *Devices) (positive, negative bool) {
	switch b.Kind {
	case KindAxis:
		pos, neg := b.axisReadings(d)
		lastPos, lastNeg := b.lastAxisReadings(d)
		return pos < PressThreshold && lastPos >= PressThreshold,
			neg < PressThreshold && lastNeg >= PressThreshold
	case KindButton:
		posName, negName := b.buttonSides()
		return posName != "" && d.JustReleased(b.Device, posName),
			negName != "" && d.JustReleased(b.Device, negName)
	}
	return false, false
}
