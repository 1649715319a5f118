package input

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/inputkit/pkg/input/driver"
)

// DefaultBindingsPath is where bindings persist when no explicit path is
// configured.
const DefaultBindingsPath = "bindings.xml"

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used for validation and persistence warnings.
func WithLogger(log *zap.Logger) Option {
	return func(s *System) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBindingsPath overrides the default bindings file path.
func WithBindingsPath(path string) Option {
	return func(s *System) {
		if path != "" {
			s.path = path
		}
	}
}

// System is the input composition root: the three device managers plus one
// action set. One Update per frame advances every device's snapshot pair and
// infers which device class produced the most recent input.
//
// After construction a System expects a single calling thread; concurrent
// Update or query calls are not supported.
type System struct {
	log     *zap.Logger
	devices *Devices
	actions *ActionSet
	path    string
	last    Device
}

// New builds a System polling drv.
func New(drv driver.Driver, opts ...Option) *System {
	s := &System{
		log:  zap.NewNop(),
		path: DefaultBindingsPath,
		last: DeviceKeyboard,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.devices = NewDevices(drv)
	s.actions = NewActionSet(s.log)
	return s
}

// Update polls keyboard, mouse and joystick in that order, then updates the
// last-device inference. When several devices fire edges in the same frame
// the keyboard wins, then the mouse.
func (s *System) Update() {
	s.devices.Update()
	switch {
	case s.devices.Keyboard.AnyEdge():
		s.last = DeviceKeyboard
	case s.devices.Mouse.AnyEdge():
		s.last = DeviceMouse
	case s.devices.Joystick.AnyEdge():
		s.last = DeviceJoystick
	}
}

// LastDevice returns the device class that most recently produced input.
func (s *System) LastDevice() Device { return s.last }

// Devices returns the device managers.
func (s *System) Devices() *Devices { return s.devices }

// Keyboard returns the keyboard manager.
func (s *System) Keyboard() *KeyboardManager { return s.devices.Keyboard }

// Mouse returns the mouse manager.
func (s *System) Mouse() *MouseManager { return s.devices.Mouse }

// Joystick returns the joystick manager.
func (s *System) Joystick() *JoystickManager { return s.devices.Joystick }

// Actions returns the action set.
func (s *System) Actions() *ActionSet { return s.actions }

// UseBindings replaces the action set's contents wholesale, e.g. with
// DefaultBindings when no file exists yet.
func (s *System) UseBindings(set *ActionSet) {
	if set != nil {
		s.actions.replaceContents(set)
	}
}

// Action queries resolve by name; an absent action reads neutral.

func (s *System) IsPressed(action string) bool {
	a := s.actions.Get(action)
	return a != nil && a.IsPressed(s.devices)
}

func (s *System) JustPressed(action string) bool {
	a := s.actions.Get(action)
	return a != nil && a.JustPressed(s.devices)
}

func (s *System) JustReleased(action string) bool {
	a := s.actions.Get(action)
	return a != nil && a.JustReleased(s.devices)
}

func (s *System) Value(action string) float64 {
	a := s.actions.Get(action)
	if a == nil {
		return 0
	}
	return a.Value(s.devices)
}

// Device queries dispatch to the matching manager by name.

func (s *System) DevicePressed(dev Device, name string) bool {
	return s.devices.Pressed(dev, name)
}

func (s *System) DeviceJustPressed(dev Device, name string) bool {
	return s.devices.JustPressed(dev, name)
}

func (s *System) DeviceJustReleased(dev Device, name string) bool {
	return s.devices.JustReleased(dev, name)
}

func (s *System) DeviceAxis(dev Device, name string) float64 {
	return s.devices.Axis(dev, name)
}

func (s *System) DeviceAxisDelta(dev Device, name string) float64 {
	return s.devices.AxisDelta(dev, name)
}

// BindingsPath returns the configured bindings file path.
func (s *System) BindingsPath() string { return s.path }

// LoadBindings loads from the configured path. A failed load logs the reason
// and leaves the current bindings active.
func (s *System) LoadBindings() bool { return s.LoadBindingsFrom(s.path) }

// LoadBindingsFrom loads from an explicit path.
func (s *System) LoadBindingsFrom(path string) bool {
	if err := s.actions.LoadFile(path); err != nil {
		s.log.Warn("bindings load failed", zap.String("path", path), zap.Error(err))
		return false
	}
	s.log.Info("bindings loaded", zap.String("path", path), zap.Int("actions", s.actions.Len()))
	return true
}

// SaveBindings writes to the configured path, overwriting.
func (s *System) SaveBindings() bool { return s.SaveBindingsTo(s.path, true) }

// SaveBindingsTo writes to an explicit path. With overwrite unset an
// existing file fails the save.
func (s *System) SaveBindingsTo(path string, overwrite bool) bool {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			s.log.Warn("bindings save refused, file exists", zap.String("path", path))
			return false
		}
	}
	if err := s.actions.SaveFile(path); err != nil {
		s.log.Warn("bindings save failed", zap.String("path", path), zap.Error(err))
		return false
	}
	s.log.Info("bindings saved", zap.String("path", path), zap.Int("actions", s.actions.Len()))
	return true
}

var (
	sharedMu sync.Mutex
	shared   atomic.Pointer[System]
)

// Shared returns the process-wide System, constructing it on first call.
// Construction is guarded so concurrent first access from several goroutines
// yields exactly one instance; later calls ignore the arguments.
func Shared(drv driver.Driver, opts ...Option) *System {
	if s := shared.Load(); s != nil {
		return s
	}
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if s := shared.Load(); s != nil {
		return s
	}
	s := New(drv, opts...)
	shared.Store(s)
	return s
}
